package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/domain/models"
)

type PublicationRepo struct {
	pgBase
}

func NewPublicationRepo(db *pgxpool.Pool) *PublicationRepo {
	return &PublicationRepo{pgBase: newPgBase(db, "publications")}
}

var publicationColumns = []string{"id", "title", "description", "category", "image", "file_url", "date"}

func scanPublication(row pgx.Row) (models.Publication, error) {
	var (
		p  models.Publication
		id int64
	)

	err := row.Scan(&id, &p.Title, &p.Description, &p.Category, &p.Image, &p.FileURL, &p.Date)
	if err != nil {
		return models.Publication{}, err
	}

	p.ID = formatID(id)
	p.CoverImage = p.Image

	return p, nil
}

// List возвращает публикации от новых к старым.
// Поиск регистронезависимый, по заголовку или описанию.
func (r *PublicationRepo) List(ctx context.Context, filter models.PublicationFilter) ([]models.Publication, error) {
	const op = "repository.PublicationRepo.List"

	builder := r.sb.Select(publicationColumns...).From(r.table)

	if !noFilter(filter.Category) {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	builder = builder.OrderBy("date DESC", "id DESC")

	return list(ctx, r.db, op, builder, scanPublication)
}

func (r *PublicationRepo) Get(ctx context.Context, id string) (models.Publication, error) {
	const op = "repository.PublicationRepo.Get"

	return getOne(ctx, r.pgBase, op, id, publicationColumns, scanPublication)
}

func (r *PublicationRepo) Create(ctx context.Context, p models.Publication) (string, error) {
	const op = "repository.PublicationRepo.Create"

	return r.insert(ctx, op,
		[]string{"title", "description", "category", "image", "file_url", "date"},
		p.Title, p.Description, p.Category, cover(p.Image, p.CoverImage), p.FileURL, p.Date,
	)
}

func (r *PublicationRepo) Update(ctx context.Context, p models.Publication) error {
	const op = "repository.PublicationRepo.Update"

	return r.update(ctx, op, p.ID, map[string]interface{}{
		"title":       p.Title,
		"description": p.Description,
		"category":    p.Category,
		"image":       cover(p.Image, p.CoverImage),
		"file_url":    p.FileURL,
		"date":        p.Date,
	})
}

func (r *PublicationRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.PublicationRepo.Delete"

	return r.delete(ctx, op, id)
}

// cover в таблице одна колонка под оба поля обложки
func cover(image, coverImage string) string {
	if coverImage != "" {
		return coverImage
	}
	return image
}
