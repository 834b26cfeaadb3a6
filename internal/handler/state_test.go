package handler

import (
	"sync"
	"sync/atomic"
	"testing"

	"steambot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStateStore(t *testing.T) {
	t.Run("idle chat has no state", func(t *testing.T) {
		store := NewStateStore()

		_, ok := store.Take(1)
		assert.False(t, ok)
	})

	t.Run("take clears the state", func(t *testing.T) {
		store := NewStateStore()
		store.Set(1, domain.StateData{State: domain.StateAwaitingName})

		data, ok := store.Take(1)
		assert.True(t, ok)
		assert.Equal(t, domain.StateAwaitingName, data.State)

		_, ok = store.Take(1)
		assert.False(t, ok)
	})

	t.Run("set replaces the previous state", func(t *testing.T) {
		store := NewStateStore()
		store.Set(1, domain.StateData{State: domain.StateAwaitingName})
		store.Set(1, domain.StateData{State: domain.StateAwaitingGenre, RetractMessageID: 42})

		data, ok := store.Take(1)
		assert.True(t, ok)
		assert.Equal(t, domain.StateAwaitingGenre, data.State)
		assert.Equal(t, 42, data.RetractMessageID)
	})

	t.Run("states are per chat", func(t *testing.T) {
		store := NewStateStore()
		store.Set(1, domain.StateData{State: domain.StateAwaitingName})

		_, ok := store.Take(2)
		assert.False(t, ok)

		_, ok = store.Take(1)
		assert.True(t, ok)
	})

	t.Run("clear drops the state", func(t *testing.T) {
		store := NewStateStore()
		store.Set(1, domain.StateData{State: domain.StateAwaitingBudget})
		store.Clear(1)

		_, ok := store.Take(1)
		assert.False(t, ok)
	})

	t.Run("concurrent takes have one winner", func(t *testing.T) {
		store := NewStateStore()
		store.Set(1, domain.StateData{State: domain.StateAwaitingName})

		var wins int32
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := store.Take(1); ok {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins)
	})
}
