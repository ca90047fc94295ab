// Package generate produces random demo records from fixed value pools.
package generate

import (
	"math/rand"
	"sync/atomic"

	"perfplayground/internal/model"
)

var (
	Names = []string{
		"Buddy", "Max", "Charlie", "Luna", "Bella", "Cooper", "Daisy", "Rocky",
		"Sadie", "Tucker", "Molly", "Bear", "Maggie", "Duke", "Lucy", "Zeus",
		"Bailey", "Bentley", "Stella", "Oliver", "Penny", "Winston", "Chloe", "Milo",
	}
	Breeds = []string{
		"Golden Retriever", "Labrador", "German Shepherd", "Beagle", "Poodle",
		"Bulldog", "Corgi", "Husky", "Dachshund", "Border Collie",
		"Australian Shepherd", "Pug", "Shiba Inu", "Rottweiler", "Boxer",
	}
	Colors = []string{
		"Golden", "Black", "Brown", "White", "Spotted", "Tan",
		"Gray", "Cream", "Chocolate", "Brindle", "Merle",
	}
	Toys = []string{
		"🎾 Tennis Ball", "🦴 Squeaky Bone", "🥏 Frisbee", "🧸 Teddy Bear",
		"🪢 Rope Toy", "⚾ Baseball", "🎈 Balloon", "🥾 Old Shoe",
		"🦆 Rubber Ducky", "🎪 Ring Toy",
	}
	Foods = []string{
		"🥩 Steak", "🍗 Chicken", "🥓 Bacon", "🧀 Cheese", "🥕 Carrots",
		"🍎 Apple Slices", "🥜 Peanut Butter", "🍕 Pizza Crusts",
		"🌭 Hot Dogs", "🍖 Lamb Chops",
	}
	Emojis = []string{"🐕", "🐶", "🦮", "🐕‍🦺", "🐩"}
)

// Generator hands out records with strictly increasing ids.
type Generator struct {
	counter atomic.Int64
}

func New() *Generator { return &Generator{} }

func (g *Generator) Next() model.Record {
	id := int(g.counter.Add(1))
	return model.Record{
		ID:     id,
		Name:   pick(Names),
		Breed:  pick(Breeds),
		Color:  pick(Colors),
		Toy:    pick(Toys),
		Food:   pick(Foods),
		Rating: rand.Intn(model.MaxRating-model.MinRating+1) + model.MinRating,
		Emoji:  pick(Emojis),
	}
}

func (g *Generator) Batch(n int) []model.Record {
	if n < 0 {
		n = 0
	}
	out := make([]model.Record, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// Last returns the most recently assigned id (0 before the first record).
func (g *Generator) Last() int { return int(g.counter.Load()) }

func pick(pool []string) string { return pool[rand.Intn(len(pool))] }

// the process-wide counter
var std = New()

func Record() model.Record { return std.Next() }

func Records(n int) []model.Record { return std.Batch(n) }
