package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/storage"
)

// PageRepo страницы адресуются slug'ом, а не BIGSERIAL
type PageRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewPageRepo(db *pgxpool.Pool) *PageRepo {
	return &PageRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PageRepo) Get(ctx context.Context, id string) (models.Page, error) {
	const op = "repository.PageRepo.Get"

	query, args, err := r.sb.Select("id", "title", "content", "image_url", "updated_at").
		From("pages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Page{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var p models.Page
	err = r.db.QueryRow(ctx, query, args...).Scan(&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Page{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Page{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (r *PageRepo) Upsert(ctx context.Context, p models.Page) error {
	const op = "repository.PageRepo.Upsert"

	query, args, err := r.sb.Insert("pages").
		Columns("id", "title", "content", "image_url", "updated_at").
		Values(p.ID, p.Title, p.Content, p.ImageURL, p.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
