package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/domain/models"
)

type AchievementRepo struct {
	pgBase
}

func NewAchievementRepo(db *pgxpool.Pool) *AchievementRepo {
	return &AchievementRepo{pgBase: newPgBase(db, "achievements")}
}

var achievementColumns = []string{"id", "title", "year", "type", "icon", "color"}

func scanAchievement(row pgx.Row) (models.Achievement, error) {
	var (
		a  models.Achievement
		id int64
	)

	if err := row.Scan(&id, &a.Title, &a.Year, &a.Type, &a.Icon, &a.Color); err != nil {
		return models.Achievement{}, err
	}

	a.ID = formatID(id)

	return a, nil
}

// List сортирует по году, свежие первыми
func (r *AchievementRepo) List(ctx context.Context, filter models.AchievementFilter) ([]models.Achievement, error) {
	const op = "repository.AchievementRepo.List"

	builder := r.sb.Select(achievementColumns...).From(r.table)

	if !noFilter(filter.Type) {
		builder = builder.Where(squirrel.Eq{"type": filter.Type})
	}

	return list(ctx, r.db, op, builder.OrderBy("year DESC", "id DESC"), scanAchievement)
}

func (r *AchievementRepo) Get(ctx context.Context, id string) (models.Achievement, error) {
	const op = "repository.AchievementRepo.Get"

	return getOne(ctx, r.pgBase, op, id, achievementColumns, scanAchievement)
}

func (r *AchievementRepo) Create(ctx context.Context, a models.Achievement) (string, error) {
	const op = "repository.AchievementRepo.Create"

	return r.insert(ctx, op,
		[]string{"title", "year", "type", "icon", "color"},
		a.Title, a.Year, a.Type, a.Icon, a.Color,
	)
}

func (r *AchievementRepo) Update(ctx context.Context, a models.Achievement) error {
	const op = "repository.AchievementRepo.Update"

	return r.update(ctx, op, a.ID, map[string]interface{}{
		"title": a.Title,
		"year":  a.Year,
		"type":  a.Type,
		"icon":  a.Icon,
		"color": a.Color,
	})
}

func (r *AchievementRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.AchievementRepo.Delete"

	return r.delete(ctx, op, id)
}
