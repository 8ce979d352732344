package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/domain/models"
)

type ReviewRepo struct {
	pgBase
}

func NewReviewRepo(db *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pgBase: newPgBase(db, "reviews")}
}

var reviewColumns = []string{"id", "author", "role", "text", "rating", "status", "likes", "date"}

func scanReview(row pgx.Row) (models.Review, error) {
	var (
		rv models.Review
		id int64
	)

	err := row.Scan(&id, &rv.Author, &rv.Role, &rv.Text, &rv.Rating, &rv.Status, &rv.Likes, &rv.Date)
	if err != nil {
		return models.Review{}, err
	}

	rv.ID = formatID(id)

	return rv, nil
}

func (r *ReviewRepo) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	const op = "repository.ReviewRepo.List"

	builder := r.sb.Select(reviewColumns...).From(r.table)

	if !noFilter(filter.Status) {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}

	return list(ctx, r.db, op, builder.OrderBy("date DESC", "id DESC"), scanReview)
}

func (r *ReviewRepo) Get(ctx context.Context, id string) (models.Review, error) {
	const op = "repository.ReviewRepo.Get"

	return getOne(ctx, r.pgBase, op, id, reviewColumns, scanReview)
}

func (r *ReviewRepo) Create(ctx context.Context, rv models.Review) (string, error) {
	const op = "repository.ReviewRepo.Create"

	return r.insert(ctx, op,
		[]string{"author", "role", "text", "rating", "status", "likes", "date"},
		rv.Author, rv.Role, rv.Text, rv.Rating, rv.Status, rv.Likes, rv.Date,
	)
}

func (r *ReviewRepo) Update(ctx context.Context, rv models.Review) error {
	const op = "repository.ReviewRepo.Update"

	return r.update(ctx, op, rv.ID, map[string]interface{}{
		"author": rv.Author,
		"role":   rv.Role,
		"text":   rv.Text,
		"rating": rv.Rating,
		"status": rv.Status,
		"likes":  rv.Likes,
		"date":   rv.Date,
	})
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.ReviewRepo.Delete"

	return r.delete(ctx, op, id)
}

func (r *ReviewRepo) SetStatus(ctx context.Context, id, status string) error {
	const op = "repository.ReviewRepo.SetStatus"

	return r.update(ctx, op, id, map[string]interface{}{"status": status})
}

func (r *ReviewRepo) IncrementLikes(ctx context.Context, id string) (int, error) {
	const op = "repository.ReviewRepo.IncrementLikes"

	return r.increment(ctx, op, id, "likes")
}
