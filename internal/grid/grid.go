// Package grid renders a record collection as sortable table rows, in an
// unmemoized and a memoized variant. Both announce each render pass and each
// row they re-render on a logger, which is what the console panel shows.
package grid

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"perfplayground/internal/filter"
	"perfplayground/internal/model"
	"perfplayground/internal/util/logx"
)

type Variant string

const (
	VariantUnoptimized Variant = "unoptimized"
	VariantOptimized   Variant = "optimized"
)

// Handler is a removal callback. Its identity is the pointer: two renders
// received the same callback exactly when they received the same *Handler.
type Handler struct {
	fn func(id int)
}

func NewHandler(fn func(id int)) *Handler { return &Handler{fn: fn} }

func (h *Handler) Invoke(id int) {
	if h != nil && h.fn != nil {
		h.fn(id)
	}
}

// View is the output of one render pass.
type View struct {
	Rows    []table.Row
	IDs     []int
	Handler *Handler
}

// Remove invokes the handler the rows were rendered with for row i.
func (v View) Remove(i int) bool {
	if i < 0 || i >= len(v.IDs) {
		return false
	}
	v.Handler.Invoke(v.IDs[i])
	return true
}

// Stats describes the last render pass.
type Stats struct {
	Passes     int  // render passes so far
	RowRenders int  // rows re-rendered in the last pass
	Resorted   bool // whether the last pass recomputed the sorted view
	Rows       int  // rows in the last pass
}

type Table interface {
	Variant() Variant
	SortKey() model.SortKey
	// SetSortKey reports whether the key changed.
	SetSortKey(model.SortKey) bool
	Filter() *filter.Evaluator
	SetFilter(*filter.Evaluator)
	Render(snap model.Snapshot, onRemove *Handler) View
	Stats() Stats
}

func New(v Variant, log *logx.Logger) Table {
	if v == VariantOptimized {
		return NewOptimized(log)
	}
	return NewUnoptimized(log)
}

func Columns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 14},
		{Title: "Breed", Width: 20},
		{Title: "Color", Width: 10},
		{Title: "Favorite Toy", Width: 17},
		{Title: "Favorite Food", Width: 17},
		{Title: "Behavior", Width: 11},
	}
}

func renderRow(r model.Record) table.Row {
	return table.Row{r.Emoji + " " + r.Name, r.Breed, r.Color, r.Toy, r.Food, r.Bones()}
}

// sorter orders records by key: rating descending, text fields ascending
// with case ignored. Ties keep collection order.
type sorter struct {
	col *collate.Collator
}

func newSorter() *sorter {
	return &sorter{col: collate.New(language.English, collate.IgnoreCase)}
}

func (s *sorter) sorted(records []model.Record, key model.SortKey, ev *filter.Evaluator) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if ev.Match(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case model.SortRating:
			return out[i].Rating > out[j].Rating
		case model.SortBreed:
			return s.col.CompareString(out[i].Breed, out[j].Breed) < 0
		default:
			return s.col.CompareString(out[i].Name, out[j].Name) < 0
		}
	})
	return out
}

// Sort returns a sorted copy of records using the table ordering rules.
func Sort(records []model.Record, key model.SortKey) []model.Record {
	return newSorter().sorted(records, key, nil)
}
