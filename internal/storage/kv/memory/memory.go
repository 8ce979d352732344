// Package memory is an in-process kv.Store backed by go-cache.
package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"

	"music_portfolio/internal/storage"
)

type Store struct {
	c *cache.Cache
}

func New() *Store {
	return &Store{
		c: cache.New(cache.NoExpiration, 0),
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.memory.Get"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v, ok := s.c.Get(key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrKeyNotFound)
	}

	return clone(v.([]byte)), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.memory.Set"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.c.Set(key, clone(value), cache.NoExpiration)

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	const op = "storage.memory.Delete"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.c.Delete(key)

	return nil
}

func (s *Store) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	const op = "storage.memory.GetByPrefix"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var values [][]byte
	for key, item := range s.c.Items() {
		if strings.HasPrefix(key, prefix) {
			values = append(values, clone(item.Object.([]byte)))
		}
	}

	return values, nil
}

// clone не даёт вызывающему коду менять сохранённые байты
func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
