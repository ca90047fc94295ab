package generate

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfplayground/internal/model"
)

func TestRecordsStayInsidePools(t *testing.T) {
	for _, r := range Records(500) {
		require.GreaterOrEqual(t, r.Rating, model.MinRating)
		require.LessOrEqual(t, r.Rating, model.MaxRating)
		assert.Contains(t, Names, r.Name)
		assert.Contains(t, Breeds, r.Breed)
		assert.Contains(t, Colors, r.Color)
		assert.Contains(t, Toys, r.Toy)
		assert.Contains(t, Foods, r.Food)
		assert.Contains(t, Emojis, r.Emoji)
	}
}

func TestIDsStrictlyIncrease(t *testing.T) {
	prev := Record().ID
	for i := 0; i < 100; i++ {
		r := Record()
		require.Greater(t, r.ID, prev)
		prev = r.ID
	}
	batch := Records(5)
	require.Greater(t, batch[0].ID, prev)
	for i := 1; i < len(batch); i++ {
		require.Greater(t, batch[i].ID, batch[i-1].ID)
	}
}

func TestGeneratorConcurrentIDsAreUnique(t *testing.T) {
	g := New()
	var (
		mu  sync.Mutex
		ids []int
		wg  sync.WaitGroup
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := g.Batch(50)
			mu.Lock()
			for _, r := range local {
				ids = append(ids, r.ID)
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	slices.Sort(ids)
	require.Len(t, ids, 400)
	for i, id := range ids {
		require.Equal(t, i+1, id)
	}
	assert.Equal(t, 400, g.Last())
}

func TestBatchNegative(t *testing.T) {
	assert.Empty(t, New().Batch(-3))
}
