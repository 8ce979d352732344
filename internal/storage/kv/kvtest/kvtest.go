// Package kvtest holds the behaviour every kv.Store driver must share.
package kvtest

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music_portfolio/internal/storage"
	"music_portfolio/internal/storage/kv"
)

// RunStoreContract проверяет драйвер на пустом хранилище.
func RunStoreContract(t *testing.T, s kv.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "contract:missing")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "contract:a", []byte(`{"v":1}`)))

		got, err := s.Get(ctx, "contract:a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":1}`, string(got))
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "contract:a", []byte(`{"v":2}`)))

		got, err := s.Get(ctx, "contract:a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":2}`, string(got))
	})

	t.Run("prefix scan is isolated", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "contract:b", []byte(`{"v":3}`)))
		require.NoError(t, s.Set(ctx, "contractx:c", []byte(`{"v":4}`)))
		require.NoError(t, s.Set(ctx, "other:d", []byte(`{"v":5}`)))

		values, err := s.GetByPrefix(ctx, "contract:")
		require.NoError(t, err)

		got := make([]string, 0, len(values))
		for _, v := range values {
			got = append(got, compact(t, v))
		}
		sort.Strings(got)
		assert.Equal(t, []string{`{"v":2}`, `{"v":3}`}, got)
	})

	t.Run("prefix scan with no matches", func(t *testing.T) {
		values, err := s.GetByPrefix(ctx, "nothing-here:")
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "contract:a"))

		_, err := s.Get(ctx, "contract:a")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("delete missing key", func(t *testing.T) {
		assert.NoError(t, s.Delete(ctx, "contract:never-existed"))
	})
}

func compact(t *testing.T, b []byte) string {
	t.Helper()

	// драйверы на JSONB могут переформатировать документ
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != ' ' && c != '\n' && c != '\t' {
			out = append(out, c)
		}
	}
	return string(out)
}
