// Package kv describes a string-key to JSON-value store with prefix scan
// and a typed view over one key prefix.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"music_portfolio/internal/storage"
)

// Store низкоуровневое хранилище ключ-значение.
// Get возвращает storage.ErrKeyNotFound для отсутствующего ключа,
// Delete отсутствующего ключа ошибкой не считается,
// порядок значений в GetByPrefix не определён.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

// Collection типизированное представление записей с общим префиксом ключа.
type Collection[T any] struct {
	store  Store
	prefix string

	// mu сериализует read-modify-write внутри процесса
	mu sync.Mutex
}

func NewCollection[T any](store Store, prefix string) *Collection[T] {
	return &Collection[T]{
		store:  store,
		prefix: prefix,
	}
}

func (c *Collection[T]) key(id string) string {
	return c.prefix + id
}

func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	const op = "kv.Collection.All"

	raw, err := c.store.GetByPrefix(ctx, c.prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]T, 0, len(raw))
	for _, b := range raw {
		var item T
		if err := json.Unmarshal(b, &item); err != nil {
			return nil, fmt.Errorf("%s: decode %s*: %w", op, c.prefix, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// Get возвращает storage.ErrNotFound, если записи нет.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	const op = "kv.Collection.Get"

	var item T

	raw, err := c.store.Get(ctx, c.key(id))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return item, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return item, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(raw, &item); err != nil {
		return item, fmt.Errorf("%s: decode %s: %w", op, c.key(id), err)
	}

	return item, nil
}

func (c *Collection[T]) Put(ctx context.Context, id string, item T) error {
	const op = "kv.Collection.Put"

	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	if err := c.store.Set(ctx, c.key(id), raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	const op = "kv.Collection.Delete"

	if err := c.store.Delete(ctx, c.key(id)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Mutate читает запись, применяет fn и сохраняет результат.
// Ошибка fn прерывает операцию без записи. Последовательность
// операций атомарна только в пределах одного процесса.
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(item *T) error) (T, error) {
	const op = "kv.Collection.Mutate"

	c.mu.Lock()
	defer c.mu.Unlock()

	item, err := c.Get(ctx, id)
	if err != nil {
		return item, fmt.Errorf("%s: %w", op, err)
	}

	if err := fn(&item); err != nil {
		return item, fmt.Errorf("%s: %w", op, err)
	}

	if err := c.Put(ctx, id, item); err != nil {
		return item, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}
