// Package page holds one demo page: the record collection, the table variant
// that renders it, the console panel and the page's explanatory panels.
package page

import (
	"slices"

	"github.com/rs/xid"

	"perfplayground/internal/console"
	"perfplayground/internal/filter"
	"perfplayground/internal/generate"
	"perfplayground/internal/grid"
	"perfplayground/internal/model"
	"perfplayground/internal/util/logx"
)

type Tone string

const (
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
)

type InfoPanel struct {
	Tone        Tone
	Title       string
	Description string
}

// Variant is the static copy and table kind of a page.
type Variant struct {
	Table  grid.Variant
	Title  string
	Banner string
	// Before is shown above the console, After below it.
	Before InfoPanel
	After  InfoPanel
}

var (
	Unoptimized = Variant{
		Table:  grid.VariantUnoptimized,
		Title:  "🐕 Unoptimized Table (no memoization)",
		Banner: "📚 Learning project: this page does every render step on every pass. The optimized page shows the manual memoization techniques.",
		Before: InfoPanel{
			Tone:  ToneWarning,
			Title: "⚠️ Watch the console below!",
			Description: "The simulated DevTools console shows what happens behind the scenes. " +
				"EVERY row re-renders when you add or remove a dog, even the ones that did not change.",
		},
		After: InfoPanel{
			Tone:  ToneInfo,
			Title: "📊 What's happening here?",
			Description: "This page has NO render optimizations. Every state change (adding, removing, sorting) re-renders everything. " +
				"The sort runs on every pass and every row re-renders even if its data did not change.",
		},
	}
	Optimized = Variant{
		Table:  grid.VariantOptimized,
		Title:  "✨ Optimized Table (memoized rows, sorted view and callbacks)",
		Banner: "📚 Manual memoization: rows, the sorted view and the remove callback are cached and reused while their inputs are unchanged.",
		Before: InfoPanel{
			Tone:  ToneSuccess,
			Title: "✅ Try sorting to see the difference!",
			Description: "Sort by name, breed or behavior and watch the console. Rows do NOT re-render because their data has not changed. " +
				"Adding dogs still re-renders rows (the collection and its callback change), but sorting is now free.",
		},
		After: InfoPanel{
			Tone:  ToneInfo,
			Title: "🚀 Optimizations applied",
			Description: "1) Memoized rows: a row is skipped when its record and callback are unchanged. " +
				"2) Memoized sort: the sorted view is recomputed only when the records, sort key or filter change. " +
				"3) Stable callback: the remove callback keeps its identity so memoized rows can be skipped.",
		},
	}
)

// Shell owns the record collection of a mounted page.
type Shell struct {
	MountID xid.ID
	Variant Variant

	gen     *generate.Generator
	log     *logx.Logger
	records []model.Record
	rev     uint64

	table    grid.Table
	console  *console.Panel
	onRemove *grid.Handler

	dirty bool
	view  grid.View
}

type Options struct {
	Initial int
	MaxLogs int
	// Generator defaults to the process-wide one.
	Generator *generate.Generator
}

// New builds a page. Nothing is captured until Mount.
func New(v Variant, log *logx.Logger, opt Options) *Shell {
	gen := opt.Generator
	var records []model.Record
	if gen != nil {
		records = gen.Batch(opt.Initial)
	} else {
		records = generate.Records(opt.Initial)
	}
	s := &Shell{
		MountID: xid.New(),
		Variant: v,
		gen:     gen,
		log:     log,
		records: records,
		rev:     1,
		table:   grid.New(v.Table, log),
		console: console.New(opt.MaxLogs),
		dirty:   true,
	}
	s.rebuildHandler()
	return s
}

// the page's callback is rebuilt on each of its own state changes
func (s *Shell) rebuildHandler() {
	s.onRemove = grid.NewHandler(func(id int) { s.Remove(id) })
}

func (s *Shell) next() model.Record {
	if s.gen != nil {
		return s.gen.Next()
	}
	return generate.Record()
}

// Add appends one freshly generated record and returns it.
func (s *Shell) Add() model.Record {
	r := s.next()
	s.records = append(slices.Clip(s.records), r)
	s.changed()
	return r
}

// Remove drops the first record with the given id. Absent ids leave the
// collection untouched.
func (s *Shell) Remove(id int) bool {
	i := slices.IndexFunc(s.records, func(r model.Record) bool { return r.ID == id })
	if i < 0 {
		return false
	}
	s.records = slices.Delete(slices.Clone(s.records), i, i+1)
	s.changed()
	return true
}

func (s *Shell) changed() {
	s.rev++
	s.rebuildHandler()
	s.dirty = true
}

// Records returns a copy of the collection in insertion order.
func (s *Shell) Records() []model.Record { return slices.Clone(s.records) }

func (s *Shell) Len() int { return len(s.records) }

func (s *Shell) Snapshot() model.Snapshot { return model.Snapshot{Rev: s.rev, Records: s.records} }

func (s *Shell) Sort(k model.SortKey) bool {
	if !s.table.SetSortKey(k) {
		return false
	}
	s.dirty = true
	return true
}

func (s *Shell) SortKey() model.SortKey { return s.table.SortKey() }

func (s *Shell) SetFilter(ev *filter.Evaluator) {
	s.table.SetFilter(ev)
	s.dirty = true
}

func (s *Shell) Filter() *filter.Evaluator { return s.table.Filter() }

func (s *Shell) Console() *console.Panel { return s.console }

func (s *Shell) Table() grid.Table { return s.table }

func (s *Shell) Dirty() bool { return s.dirty }

// Render runs the table's render pass if anything changed since the last
// one and returns the current view.
func (s *Shell) Render() grid.View {
	if s.dirty {
		s.view = s.table.Render(s.Snapshot(), s.onRemove)
		s.dirty = false
	}
	return s.view
}

// Mount attaches the console panel to the page's logger.
func (s *Shell) Mount() {
	s.console.Mount(s.log)
	logx.Infof("page: mounted %s (mount=%s records=%d)", s.Variant.Table, s.MountID, len(s.records))
}

func (s *Shell) Unmount() {
	s.console.Unmount()
	logx.Infof("page: unmounted %s (mount=%s)", s.Variant.Table, s.MountID)
}
