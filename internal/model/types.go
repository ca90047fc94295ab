package model

import (
	"strings"
	"sync"
)

// Record is one demo row. Values are never mutated after generation, so two
// Records compare equal with == exactly when nothing about the row changed.
type Record struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Color  string `json:"color"`
	Toy    string `json:"favoriteToy"`
	Food   string `json:"favoriteFood"`
	Rating int    `json:"behaviorRating"` // 1..5
	Emoji  string `json:"emoji"`
}

const (
	MinRating = 1
	MaxRating = 5
)

// Bones renders the rating as a row of bone markers.
func (r Record) Bones() string {
	n := r.Rating
	if n < 0 {
		n = 0
	}
	return strings.Repeat("🦴", n)
}

type SortKey int

const (
	SortName SortKey = iota
	SortBreed
	SortRating
)

func (k SortKey) String() string {
	switch k {
	case SortBreed:
		return "breed"
	case SortRating:
		return "rating"
	default:
		return "name"
	}
}

func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortName, true
	case "breed":
		return SortBreed, true
	case "rating", "behavior", "behaviorrating":
		return SortRating, true
	}
	return SortName, false
}

// Snapshot is the record collection as handed to a table. Rev identifies the
// collection: it changes whenever the owner replaces the slice.
type Snapshot struct {
	Rev     uint64
	Records []Record
}

// Ring is a bounded FIFO that drops the oldest element when full.
type Ring[T any] struct {
	mu      sync.RWMutex
	buf     []T
	cap     int
	start   int
	size    int
	total   uint64 // total pushed
	dropped uint64
}

func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{cap: capacity, buf: make([]T, capacity)}
}

func (r *Ring[T]) Push(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.size < r.cap {
		r.buf[(r.start+r.size)%r.cap] = v
		r.size++
	} else {
		// overwrite oldest
		r.buf[r.start] = v
		r.start = (r.start + 1) % r.cap
		r.dropped++
	}
	r.total++
}

// Snapshot returns the retained values, oldest first.
func (r *Ring[T]) Snapshot() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(r.start+i)%r.cap]
	}
	return out
}

// Clear empties the ring; counters are kept.
func (r *Ring[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.size = 0
	r.start = 0
}

func (r *Ring[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

func (r *Ring[T]) Cap() int { return r.cap }

func (r *Ring[T]) Total() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total
}

func (r *Ring[T]) Dropped() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dropped
}
