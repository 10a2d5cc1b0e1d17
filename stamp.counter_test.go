package stamp

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCounterStore runs the behaviour every CounterStore must share.
func testCounterStore(t *testing.T, store CounterStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("first call returns initial", func(t *testing.T) {
		v, err := store.Next(ctx, "first", 5, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), v)
	})

	t.Run("later calls add step", func(t *testing.T) {
		for _, want := range []int64{100, 110, 120} {
			v, err := store.Next(ctx, "stepped", 100, 10)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
	})

	t.Run("negative step", func(t *testing.T) {
		v, err := store.Next(ctx, "down", 3, -2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), v)
		v, err = store.Next(ctx, "down", 3, -2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})

	t.Run("names are independent", func(t *testing.T) {
		_, err := store.Next(ctx, "a", 0, 1)
		require.NoError(t, err)
		_, err = store.Next(ctx, "a", 0, 1)
		require.NoError(t, err)

		v, err := store.Next(ctx, "b", 0, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)
	})

	t.Run("peek", func(t *testing.T) {
		_, ok, err := store.Peek(ctx, "never-used")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = store.Next(ctx, "peeked", 7, 1)
		require.NoError(t, err)
		v, ok, err := store.Peek(ctx, "peeked")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(7), v)

		// peek does not advance
		v, err = store.Next(ctx, "peeked", 7, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(8), v)
	})

	t.Run("reset restarts from initial", func(t *testing.T) {
		_, err := store.Next(ctx, "reset", 1, 1)
		require.NoError(t, err)
		_, err = store.Next(ctx, "reset", 1, 1)
		require.NoError(t, err)

		require.NoError(t, store.Reset(ctx, "reset"))
		v, err := store.Next(ctx, "reset", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})

	t.Run("concurrent increments lose no updates", func(t *testing.T) {
		const workers, perWorker = 10, 20
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perWorker; j++ {
					_, err := store.Next(ctx, "parallel", 1, 1)
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()

		v, ok, err := store.Peek(ctx, "parallel")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(workers*perWorker), v)
	})

	t.Run("reset all", func(t *testing.T) {
		require.NoError(t, store.ResetAll(ctx))
		_, ok, err := store.Peek(ctx, "stepped")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("closed store fails", func(t *testing.T) {
		require.NoError(t, store.Close())
		_, err := store.Next(ctx, "first", 0, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCounterStoreClosed))
		assert.NoError(t, store.Close(), "Close is idempotent")
	})
}

func TestMemoryCounterStore(t *testing.T) {
	testCounterStore(t, NewMemoryCounterStore())
}

func TestMemoryCounterStore_Names(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	_, _ = store.Next(ctx, "b", 0, 1)
	_, _ = store.Next(ctx, "a", 0, 1)
	assert.Equal(t, []string{"a", "b"}, store.Names())

	require.NoError(t, store.Reset(ctx, "a"))
	assert.Equal(t, []string{"b"}, store.Names())
}

func TestCounterDrivers(t *testing.T) {
	t.Run("built-in drivers are registered", func(t *testing.T) {
		drivers := ListCounterDrivers()
		for _, name := range []string{CounterDriverMemory, CounterDriverPostgres, CounterDriverRedis, CounterDriverSQLite} {
			assert.Contains(t, drivers, name)
		}
	})

	t.Run("open memory", func(t *testing.T) {
		store, err := OpenCounterStore(CounterDriverMemory, "")
		require.NoError(t, err)
		assert.IsType(t, &MemoryCounterStore{}, store)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenCounterStore("etcd", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCounterDriverNotFound))
	})

	t.Run("register custom driver", func(t *testing.T) {
		RegisterCounterDriver("test-custom", CounterDriverFunc(func(string) (CounterStore, error) {
			return NewMemoryCounterStore(), nil
		}))
		assert.Contains(t, ListCounterDrivers(), "test-custom")

		store, err := OpenCounterStore("test-custom", "")
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("duplicate and nil panic", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterCounterDriver(CounterDriverMemory, CounterDriverFunc(func(string) (CounterStore, error) { return nil, nil }))
		})
		assert.Panics(t, func() { RegisterCounterDriver("nil-driver", nil) })
	})
}
