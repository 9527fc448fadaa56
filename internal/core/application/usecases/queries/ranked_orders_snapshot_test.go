package queries

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_RankedOrdersSnapshot_Latest(t *testing.T) {
	t.Run("should report not loaded before first set", func(t *testing.T) {
		snapshot := NewRankedOrdersSnapshot()

		_, ok := snapshot.Latest()

		assert.False(t, ok)
	})

	t.Run("should return the last set response", func(t *testing.T) {
		snapshot := NewRankedOrdersSnapshot()
		first := GetRankedOrdersQueryResponse{TotalOrders: 1, GeneratedAt: time.Now()}
		second := GetRankedOrdersQueryResponse{TotalOrders: 5, GeneratedAt: time.Now()}

		snapshot.Set(first)
		snapshot.Set(second)
		latest, ok := snapshot.Latest()

		assert.True(t, ok)
		assert.Equal(t, 5, latest.TotalOrders)
	})

	t.Run("should be safe for concurrent readers and writers", func(t *testing.T) {
		snapshot := NewRankedOrdersSnapshot()
		var wg sync.WaitGroup

		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func(n int) {
				defer wg.Done()
				snapshot.Set(GetRankedOrdersQueryResponse{TotalOrders: n})
			}(i)
			go func() {
				defer wg.Done()
				snapshot.Latest()
			}()
		}
		wg.Wait()

		_, ok := snapshot.Latest()
		assert.True(t, ok)
	})
}
