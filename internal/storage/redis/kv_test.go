package redisapp_test

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music_portfolio/internal/storage"
	redisapp "music_portfolio/internal/storage/redis"
)

func NewMockClient() (*redisapp.Client, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return &redisapp.Client{Client: db}, mock
}

func setupKV() (*redisapp.KV, redismock.ClientMock) {
	db, mock := NewMockClient()
	return redisapp.NewKV(db), mock
}

func TestKV_Get(t *testing.T) {
	ctx := context.Background()
	kv, mock := setupKV()

	t.Run("existing key", func(t *testing.T) {
		mock.ExpectGet("publication:1").SetVal(`{"id":"1"}`)

		val, err := kv.Get(ctx, "publication:1")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"1"}`, string(val))
	})

	t.Run("missing key", func(t *testing.T) {
		mock.ExpectGet("publication:2").RedisNil()

		_, err := kv.Get(ctx, "publication:2")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("redis error", func(t *testing.T) {
		mock.ExpectGet("publication:3").SetErr(redis.ErrClosed)

		_, err := kv.Get(ctx, "publication:3")
		assert.ErrorIs(t, err, redis.ErrClosed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKV_SetDelete(t *testing.T) {
	ctx := context.Background()
	kv, mock := setupKV()

	mock.ExpectSet("review:1", []byte(`{"likes":1}`), 0).SetVal("OK")
	require.NoError(t, kv.Set(ctx, "review:1", []byte(`{"likes":1}`)))

	mock.ExpectDel("review:1").SetVal(1)
	require.NoError(t, kv.Delete(ctx, "review:1"))

	mock.ExpectDel("review:404").SetVal(0)
	require.NoError(t, kv.Delete(ctx, "review:404"))

	mock.ExpectDel("review:1").SetErr(redis.ErrClosed)
	assert.ErrorIs(t, kv.Delete(ctx, "review:1"), redis.ErrClosed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKV_GetByPrefix(t *testing.T) {
	ctx := context.Background()

	t.Run("pages through scan cursor", func(t *testing.T) {
		kv, mock := setupKV()

		mock.ExpectScan(0, "album:*", 100).SetVal([]string{"album:1", "album:2"}, 7)
		mock.ExpectScan(7, "album:*", 100).SetVal([]string{"album:2", "album:3"}, 0)
		mock.ExpectMGet("album:1", "album:2", "album:3").SetVal([]interface{}{`{"id":"1"}`, nil, `{"id":"3"}`})

		vals, err := kv.GetByPrefix(ctx, "album:")
		require.NoError(t, err)
		require.Len(t, vals, 2)
		assert.Equal(t, `{"id":"1"}`, string(vals[0]))
		assert.Equal(t, `{"id":"3"}`, string(vals[1]))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no keys", func(t *testing.T) {
		kv, mock := setupKV()

		mock.ExpectScan(0, "video:*", 100).SetVal([]string{}, 0)

		vals, err := kv.GetByPrefix(ctx, "video:")
		require.NoError(t, err)
		assert.Empty(t, vals)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("glob characters are escaped", func(t *testing.T) {
		kv, mock := setupKV()

		mock.ExpectScan(0, `a\*b\?:*`, 100).SetVal([]string{}, 0)

		_, err := kv.GetByPrefix(ctx, "a*b?:")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan error", func(t *testing.T) {
		kv, mock := setupKV()

		mock.ExpectScan(0, "album:*", 100).SetErr(redis.ErrClosed)

		_, err := kv.GetByPrefix(ctx, "album:")
		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}
