package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/domain/models"
)

type VideoRepo struct {
	pgBase
}

func NewVideoRepo(db *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pgBase: newPgBase(db, "videos")}
}

var videoColumns = []string{
	"id", "title", "description", "category", "thumbnail",
	"video_url", "vk_iframe", "duration", "views", "date",
}

func scanVideo(row pgx.Row) (models.Video, error) {
	var (
		v  models.Video
		id int64
	)

	err := row.Scan(
		&id,
		&v.Title,
		&v.Description,
		&v.Category,
		&v.Thumbnail,
		&v.VideoURL,
		&v.VKIframe,
		&v.Duration,
		&v.Views,
		&v.Date,
	)
	if err != nil {
		return models.Video{}, err
	}

	v.ID = formatID(id)

	return v, nil
}

func (r *VideoRepo) List(ctx context.Context, filter models.VideoFilter) ([]models.Video, error) {
	const op = "repository.VideoRepo.List"

	builder := r.sb.Select(videoColumns...).From(r.table)

	if !noFilter(filter.Category) {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}

	return list(ctx, r.db, op, builder.OrderBy("date DESC", "id DESC"), scanVideo)
}

func (r *VideoRepo) Get(ctx context.Context, id string) (models.Video, error) {
	const op = "repository.VideoRepo.Get"

	return getOne(ctx, r.pgBase, op, id, videoColumns, scanVideo)
}

func (r *VideoRepo) Create(ctx context.Context, v models.Video) (string, error) {
	const op = "repository.VideoRepo.Create"

	return r.insert(ctx, op,
		[]string{"title", "description", "category", "thumbnail", "video_url", "vk_iframe", "duration", "views", "date"},
		v.Title, v.Description, v.Category, v.Thumbnail, v.VideoURL, v.VKIframe, v.Duration, v.Views, v.Date,
	)
}

func (r *VideoRepo) Update(ctx context.Context, v models.Video) error {
	const op = "repository.VideoRepo.Update"

	return r.update(ctx, op, v.ID, map[string]interface{}{
		"title":       v.Title,
		"description": v.Description,
		"category":    v.Category,
		"thumbnail":   v.Thumbnail,
		"video_url":   v.VideoURL,
		"vk_iframe":   v.VKIframe,
		"duration":    v.Duration,
		"views":       v.Views,
		"date":        v.Date,
	})
}

func (r *VideoRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.VideoRepo.Delete"

	return r.delete(ctx, op, id)
}

func (r *VideoRepo) IncrementViews(ctx context.Context, id string) (int, error) {
	const op = "repository.VideoRepo.IncrementViews"

	return r.increment(ctx, op, id, "views")
}
