package redisapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"music_portfolio/internal/storage"
)

// scanCount подсказка Redis для размера страницы SCAN
const scanCount = 100

// KV хранит JSON-документы строками. Префиксный поиск идёт через SCAN,
// а не KEYS, чтобы не блокировать сервер на больших базах.
type KV struct {
	Client *Client
}

func NewKV(client *Client) *KV {
	return &KV{Client: client}
}

func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.redis.Get"

	val, err := s.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrKeyNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return val, nil
}

func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.redis.Set"

	if err := s.Client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *KV) Delete(ctx context.Context, key string) error {
	const op = "storage.redis.Delete"

	if err := s.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *KV) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	const op = "storage.redis.GetByPrefix"

	keys, err := s.scanKeys(ctx, escapeGlob(prefix)+"*")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(keys) == 0 {
		return [][]byte{}, nil
	}

	vals, err := s.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		// ключ мог быть удалён между SCAN и MGET
		str, ok := v.(string)
		if !ok {
			continue
		}
		out = append(out, []byte(str))
	}

	return out, nil
}

func (s *KV) scanKeys(ctx context.Context, match string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
		seen   = make(map[string]struct{})
	)

	for {
		page, next, err := s.Client.Scan(ctx, cursor, match, scanCount).Result()
		if err != nil {
			return nil, err
		}

		// SCAN может вернуть один ключ несколько раз
		for _, k := range page {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}

		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

var globReplacer = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
)

func escapeGlob(s string) string {
	return globReplacer.Replace(s)
}
