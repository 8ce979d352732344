package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/storage"
)

// pgBase общие части Postgres-репозиториев
type pgBase struct {
	db    *pgxpool.Pool
	sb    squirrel.StatementBuilderType
	table string
}

func newPgBase(db *pgxpool.Pool, table string) pgBase {
	return pgBase{
		db:    db,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table: table,
	}
}

// parseID переводит строковый id в ключ BIGSERIAL.
// Нечисловой id не может существовать в таблице.
func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (b pgBase) insert(ctx context.Context, op string, columns []string, values ...interface{}) (string, error) {
	query, args, err := b.sb.Insert(b.table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id int64
	if err := b.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return formatID(id), nil
}

// update выполняет UPDATE по id; ни одной затронутой строки означает ErrNotFound.
func (b pgBase) update(ctx context.Context, op, id string, set map[string]interface{}) error {
	n, ok := parseID(id)
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	query, args, err := b.sb.Update(b.table).
		SetMap(set).
		Where(squirrel.Eq{"id": n}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// increment атомарно увеличивает счётчик и возвращает новое значение.
func (b pgBase) increment(ctx context.Context, op, id, column string) (int, error) {
	n, ok := parseID(id)
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	query, args, err := b.sb.Update(b.table).
		Set(column, squirrel.Expr(column+" + 1")).
		Where(squirrel.Eq{"id": n}).
		Suffix("RETURNING " + column).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var value int
	if err := b.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

func (b pgBase) delete(ctx context.Context, op, id string) error {
	n, ok := parseID(id)
	if !ok {
		return nil
	}

	query, args, err := b.sb.Delete(b.table).
		Where(squirrel.Eq{"id": n}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := b.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// getOne выбирает запись по id; отсутствующая строка даёт storage.ErrNotFound.
func getOne[T any](ctx context.Context, b pgBase, op, id string, columns []string, scan func(pgx.Row) (T, error)) (T, error) {
	var zero T

	n, ok := parseID(id)
	if !ok {
		return zero, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	query, args, err := b.sb.Select(columns...).
		From(b.table).
		Where(squirrel.Eq{"id": n}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	item, err := scan(b.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// list выполняет готовый SELECT и сканирует каждую строку.
func list[T any](ctx context.Context, db *pgxpool.Pool, op string, builder squirrel.SelectBuilder, scan func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: can't scan row: %w", op, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// noFilter пустое значение и "all" в фильтре ничего не ограничивают
func noFilter(v string) bool {
	return v == "" || v == "all"
}
