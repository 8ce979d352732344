package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"

	"music_portfolio/internal/storage"
)

const kvTable = "kv_store"

// KV реализует kv.Store поверх таблицы kv_store.
type KV struct {
	s *Storage
}

func NewKV(s *Storage) *KV {
	return &KV{s: s}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.postgresql.KV.Get"

	query, args, err := sq.Select("value::text").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var value string
	if err := k.s.DB.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrKeyNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return []byte(value), nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.postgresql.KV.Set"

	query, args, err := sq.Insert(kvTable).
		Columns("key", "value").
		Values(key, sq.Expr("?::jsonb", string(value))).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := k.s.DB.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	const op = "storage.postgresql.KV.Delete"

	query, args, err := sq.Delete(kvTable).
		Where(sq.Eq{"key": key}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := k.s.DB.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (k *KV) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	const op = "storage.postgresql.KV.GetByPrefix"

	query, args, err := sq.Select("value::text").
		From(kvTable).
		Where(sq.Like{"key": escapeLike(prefix) + "%"}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := k.s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := [][]byte{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%s: can't scan value: %w", op, err)
		}
		out = append(out, []byte(value))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

var likeReplacer = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// escapeLike экранирует спецсимволы LIKE (escape-символ по умолчанию '\').
func escapeLike(s string) string {
	return likeReplacer.Replace(s)
}
