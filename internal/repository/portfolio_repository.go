package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/domain/models"
)

type PortfolioRepo struct {
	pgBase
}

func NewPortfolioRepo(db *pgxpool.Pool) *PortfolioRepo {
	return &PortfolioRepo{pgBase: newPgBase(db, "portfolio")}
}

var portfolioColumns = []string{"id", "title", "organization", "category", "image", "date"}

func scanPortfolioItem(row pgx.Row) (models.PortfolioItem, error) {
	var (
		p  models.PortfolioItem
		id int64
	)

	if err := row.Scan(&id, &p.Title, &p.Organization, &p.Category, &p.Image, &p.Date); err != nil {
		return models.PortfolioItem{}, err
	}

	p.ID = formatID(id)
	p.ImageURL = p.Image

	return p, nil
}

func (r *PortfolioRepo) List(ctx context.Context, filter models.PortfolioFilter) ([]models.PortfolioItem, error) {
	const op = "repository.PortfolioRepo.List"

	builder := r.sb.Select(portfolioColumns...).From(r.table)

	if !noFilter(filter.Category) {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}

	return list(ctx, r.db, op, builder.OrderBy("date DESC", "id DESC"), scanPortfolioItem)
}

func (r *PortfolioRepo) Get(ctx context.Context, id string) (models.PortfolioItem, error) {
	const op = "repository.PortfolioRepo.Get"

	return getOne(ctx, r.pgBase, op, id, portfolioColumns, scanPortfolioItem)
}

func (r *PortfolioRepo) Create(ctx context.Context, p models.PortfolioItem) (string, error) {
	const op = "repository.PortfolioRepo.Create"

	return r.insert(ctx, op,
		[]string{"title", "organization", "category", "image", "date"},
		p.Title, p.Organization, p.Category, cover(p.Image, p.ImageURL), p.Date,
	)
}

func (r *PortfolioRepo) Update(ctx context.Context, p models.PortfolioItem) error {
	const op = "repository.PortfolioRepo.Update"

	return r.update(ctx, op, p.ID, map[string]interface{}{
		"title":        p.Title,
		"organization": p.Organization,
		"category":     p.Category,
		"image":        cover(p.Image, p.ImageURL),
		"date":         p.Date,
	})
}

func (r *PortfolioRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.PortfolioRepo.Delete"

	return r.delete(ctx, op, id)
}
