package kv_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music_portfolio/internal/storage"
	"music_portfolio/internal/storage/kv"
	"music_portfolio/internal/storage/kv/memory"
)

type counter struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func TestCollection_CRUD(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	c := kv.NewCollection[counter](store, "counter:")
	other := kv.NewCollection[counter](store, "other:")

	require.NoError(t, c.Put(ctx, "a", counter{ID: "a", Value: 1}))
	require.NoError(t, c.Put(ctx, "b", counter{ID: "b", Value: 2}))
	require.NoError(t, other.Put(ctx, "z", counter{ID: "z"}))

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, counter{ID: "a", Value: 1}, got)

	all, err := c.All(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []counter{{ID: "a", Value: 1}, {ID: "b", Value: 2}}, all)

	require.NoError(t, c.Delete(ctx, "a"))
	_, err = c.Get(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCollection_Mutate(t *testing.T) {
	ctx := context.Background()
	c := kv.NewCollection[counter](memory.New(), "counter:")
	require.NoError(t, c.Put(ctx, "a", counter{ID: "a"}))

	t.Run("missing record", func(t *testing.T) {
		_, err := c.Mutate(ctx, "missing", func(*counter) error { return nil })
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("fn error aborts write", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := c.Mutate(ctx, "a", func(v *counter) error {
			v.Value = 100
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := c.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Value)
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		const n = 50
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := c.Mutate(ctx, "a", func(v *counter) error {
					v.Value++
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := c.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, n, got.Value)
	})
}
