package grid

import (
	"github.com/charmbracelet/bubbles/table"

	"perfplayground/internal/filter"
	"perfplayground/internal/model"
	"perfplayground/internal/util/logx"
)

// Unoptimized redoes everything on every pass: it filters and sorts a fresh
// copy, builds a new removal callback and re-renders every row.
type Unoptimized struct {
	log    *logx.Logger
	sort   *sorter
	key    model.SortKey
	filter *filter.Evaluator
	stats  Stats
}

func NewUnoptimized(log *logx.Logger) *Unoptimized {
	return &Unoptimized{log: log, sort: newSorter()}
}

func (t *Unoptimized) Variant() Variant          { return VariantUnoptimized }
func (t *Unoptimized) SortKey() model.SortKey    { return t.key }
func (t *Unoptimized) Filter() *filter.Evaluator { return t.filter }
func (t *Unoptimized) Stats() Stats              { return t.stats }

func (t *Unoptimized) SetSortKey(k model.SortKey) bool {
	if k == t.key {
		return false
	}
	t.key = k
	return true
}

func (t *Unoptimized) SetFilter(ev *filter.Evaluator) { t.filter = ev }

func (t *Unoptimized) Render(snap model.Snapshot, onRemove *Handler) View {
	t.log.Logf("🔴 UNOPTIMIZED: table rendered")
	sorted := t.sort.sorted(snap.Records, t.key, t.filter)
	h := NewHandler(onRemove.Invoke)

	v := View{Rows: make([]table.Row, 0, len(sorted)), IDs: make([]int, 0, len(sorted)), Handler: h}
	for _, r := range sorted {
		t.log.Logf("🔴 UNOPTIMIZED: row %s (ID: %d) rendered", r.Name, r.ID)
		v.Rows = append(v.Rows, renderRow(r))
		v.IDs = append(v.IDs, r.ID)
	}
	t.stats = Stats{Passes: t.stats.Passes + 1, RowRenders: len(sorted), Resorted: true, Rows: len(sorted)}
	return v
}
