package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/domain/models"
)

type AudioRepo struct {
	pgBase
}

func NewAudioRepo(db *pgxpool.Pool) *AudioRepo {
	return &AudioRepo{pgBase: newPgBase(db, "audio")}
}

var audioColumns = []string{"id", "title", "artist", "category", "file_url", "duration"}

func scanAudio(row pgx.Row) (models.AudioTrack, error) {
	var (
		a  models.AudioTrack
		id int64
	)

	if err := row.Scan(&id, &a.Title, &a.Artist, &a.Category, &a.FileURL, &a.Duration); err != nil {
		return models.AudioTrack{}, err
	}

	a.ID = formatID(id)

	return a, nil
}

// List у треков нет даты, сортируем по названию
func (r *AudioRepo) List(ctx context.Context, filter models.AudioFilter) ([]models.AudioTrack, error) {
	const op = "repository.AudioRepo.List"

	builder := r.sb.Select(audioColumns...).From(r.table)

	if !noFilter(filter.Category) {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}

	return list(ctx, r.db, op, builder.OrderBy("title ASC", "id ASC"), scanAudio)
}

func (r *AudioRepo) Get(ctx context.Context, id string) (models.AudioTrack, error) {
	const op = "repository.AudioRepo.Get"

	return getOne(ctx, r.pgBase, op, id, audioColumns, scanAudio)
}

func (r *AudioRepo) Create(ctx context.Context, a models.AudioTrack) (string, error) {
	const op = "repository.AudioRepo.Create"

	return r.insert(ctx, op,
		[]string{"title", "artist", "category", "file_url", "duration"},
		a.Title, a.Artist, a.Category, a.FileURL, a.Duration,
	)
}

func (r *AudioRepo) Update(ctx context.Context, a models.AudioTrack) error {
	const op = "repository.AudioRepo.Update"

	return r.update(ctx, op, a.ID, map[string]interface{}{
		"title":    a.Title,
		"artist":   a.Artist,
		"category": a.Category,
		"file_url": a.FileURL,
		"duration": a.Duration,
	})
}

func (r *AudioRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.AudioRepo.Delete"

	return r.delete(ctx, op, id)
}
