package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfplayground/internal/filter"
	"perfplayground/internal/generate"
	"perfplayground/internal/grid"
	"perfplayground/internal/model"
	"perfplayground/internal/util/logx"
)

func newShell(t *testing.T, v Variant) *Shell {
	t.Helper()
	s := New(v, logx.New("page-test"), Options{Initial: 3, MaxLogs: 50})
	s.Mount()
	t.Cleanup(s.Unmount)
	return s
}

func TestAddThenRemove(t *testing.T) {
	for _, v := range []Variant{Unoptimized, Optimized} {
		t.Run(string(v.Table), func(t *testing.T) {
			s := newShell(t, v)
			original := s.Records()
			require.Len(t, original, 3)

			added := s.Add()
			require.Equal(t, 4, s.Len())
			for _, r := range original {
				assert.Greater(t, added.ID, r.ID)
			}
			assert.Equal(t, added, s.Records()[3])

			second := original[1].ID
			require.True(t, s.Remove(second))
			assert.Equal(t, 3, s.Len())
			for _, r := range s.Records() {
				assert.NotEqual(t, second, r.ID)
			}
			assert.Equal(t, []model.Record{original[0], original[2], added}, s.Records())
		})
	}
}

func TestRemoveMissingIsNoop(t *testing.T) {
	s := newShell(t, Unoptimized)
	before := s.Records()
	rev := s.Snapshot().Rev
	s.Render()

	assert.False(t, s.Remove(-42))
	assert.Equal(t, before, s.Records())
	assert.Equal(t, rev, s.Snapshot().Rev)
	assert.False(t, s.Dirty())
}

func TestRecordsReturnsCopy(t *testing.T) {
	s := newShell(t, Optimized)
	rs := s.Records()
	rs[0].Name = "changed"
	assert.NotEqual(t, "changed", s.Records()[0].Name)
}

func TestRemoveThroughRenderedView(t *testing.T) {
	s := newShell(t, Optimized)
	v := s.Render()
	id := v.IDs[0]
	require.True(t, v.Remove(0))
	assert.Equal(t, 2, s.Len())
	for _, r := range s.Records() {
		assert.NotEqual(t, id, r.ID)
	}
	assert.True(t, s.Dirty())
}

func TestRenderOnlyWhenDirty(t *testing.T) {
	s := newShell(t, Unoptimized)
	s.Render()
	passes := s.Table().Stats().Passes
	s.Render()
	assert.Equal(t, passes, s.Table().Stats().Passes)

	assert.False(t, s.Sort(model.SortName))
	assert.True(t, s.Sort(model.SortBreed))
	s.Render()
	assert.Equal(t, passes+1, s.Table().Stats().Passes)
	assert.Equal(t, model.SortBreed, s.SortKey())
}

func TestConsoleSeesRenderMarkersAfterDrain(t *testing.T) {
	s := newShell(t, Unoptimized)
	s.Render()
	assert.Equal(t, 0, s.Console().Len())
	s.Console().Drain()
	// table marker + three rows
	assert.Equal(t, 4, s.Console().Len())
}

func TestSortOnOptimizedPageRendersNoRows(t *testing.T) {
	s := newShell(t, Optimized)
	s.Render()
	s.Console().Drain()
	s.Console().Clear()

	s.Sort(model.SortRating)
	s.Render()
	s.Console().Drain()
	for _, e := range s.Console().Entries() {
		assert.NotContains(t, e.Message, "OPTIMIZED: row")
	}
	assert.Equal(t, 0, s.Table().Stats().RowRenders)
}

func TestAddOnOptimizedPageRerendersRows(t *testing.T) {
	s := newShell(t, Optimized)
	s.Render()
	s.Add()
	s.Render()
	// the page rebuilt its callback, so every row sees a new handler
	assert.Equal(t, 4, s.Table().Stats().RowRenders)
}

func TestFilterMarksDirty(t *testing.T) {
	s := newShell(t, Optimized)
	s.Render()
	ev, err := filter.NewEvaluator(filter.Criteria{Expr: "rating > 10"})
	require.NoError(t, err)
	s.SetFilter(ev)
	assert.True(t, s.Dirty())
	assert.Empty(t, s.Render().Rows)
	assert.Same(t, ev, s.Filter())
}

func TestOwnGenerator(t *testing.T) {
	gen := generate.New()
	s := New(Optimized, logx.New("x"), Options{Initial: 2, Generator: gen})
	assert.Equal(t, 1, s.Records()[0].ID)
	assert.Equal(t, 3, s.Add().ID)
	assert.Equal(t, grid.VariantOptimized, s.Table().Variant())
}

func TestUnmountDetachesConsole(t *testing.T) {
	l := logx.New("mount")
	s := New(Unoptimized, l, Options{Initial: 1})
	s.Mount()
	assert.Equal(t, 1, l.Subscribers())
	s.Unmount()
	assert.Equal(t, 0, l.Subscribers())
	assert.False(t, s.Console().Mounted())
}
