package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"music_portfolio/internal/demo"
	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/metrics"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/storage"
)

// Result итог заполнения: Seeded=false, если данные уже были.
type Result struct {
	Seeded bool           `json:"seeded"`
	Counts map[string]int `json:"counts"`
}

// SeedService заполняет пустое хранилище демонстрационным контентом.
type SeedService struct {
	log  *slog.Logger
	repo *repository.Repository
}

func NewSeedService(log *slog.Logger, repo *repository.Repository) *SeedService {
	return &SeedService{log: log, repo: repo}
}

// Seed наличие хотя бы одной публикации считается признаком заполненной базы.
// Страницы создаются по отдельности, только если их ещё нет.
func (s *SeedService) Seed(ctx context.Context) (Result, error) {
	const op = "seed_service.Seed"

	log := s.log.With(slog.String("op", op))

	res := Result{Counts: map[string]int{}}

	existing, err := s.repo.Publications.List(ctx, models.PublicationFilter{})
	if err != nil {
		log.Error("failed to check existing data", sl.Err(err))
		return res, fmt.Errorf("%s: %w", op, err)
	}

	if len(existing) == 0 {
		if err := s.seedContent(ctx, res.Counts); err != nil {
			log.Error("failed to seed demo data", sl.Err(err))
			return res, fmt.Errorf("%s: %w", op, err)
		}
		res.Seeded = true
	} else {
		log.Info("demo data already exists, skipping")
	}

	pages, err := s.seedPages(ctx)
	if err != nil {
		log.Error("failed to seed pages", sl.Err(err))
		return res, fmt.Errorf("%s: %w", op, err)
	}
	res.Counts["pages"] = pages

	for resource, n := range res.Counts {
		metrics.SeededRecords.WithLabelValues(resource).Add(float64(n))
	}

	log.Info("seeding finished", slog.Bool("seeded", res.Seeded), slog.Any("counts", res.Counts))

	return res, nil
}

func (s *SeedService) seedContent(ctx context.Context, counts map[string]int) error {
	var err error

	if counts["publications"], err = createAll(ctx, s.repo.Publications, demo.Publications()); err != nil {
		return err
	}
	if counts["albums"], err = createAll(ctx, s.repo.Albums, demo.Albums()); err != nil {
		return err
	}
	if counts["achievements"], err = createAll(ctx, s.repo.Achievements, demo.Achievements()); err != nil {
		return err
	}
	if counts["portfolio"], err = createAll(ctx, s.repo.Portfolio, demo.Portfolio()); err != nil {
		return err
	}
	if counts["reviews"], err = createAll(ctx, s.repo.Reviews, demo.Reviews()); err != nil {
		return err
	}
	if counts["audio"], err = createAll(ctx, s.repo.Audio, demo.Audio()); err != nil {
		return err
	}
	if counts["videos"], err = createAll(ctx, s.repo.Videos, demo.Videos()); err != nil {
		return err
	}

	return nil
}

func (s *SeedService) seedPages(ctx context.Context) (int, error) {
	created := 0

	for _, page := range demo.Pages() {
		_, err := s.repo.Pages.Get(ctx, page.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return created, err
		}

		now := time.Now().UTC()
		page.UpdatedAt = &now

		if err := s.repo.Pages.Upsert(ctx, page); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

type creator[T any] interface {
	Create(ctx context.Context, item T) (string, error)
}

func createAll[T any](ctx context.Context, repo creator[T], items []T) (int, error) {
	for i, item := range items {
		if _, err := repo.Create(ctx, item); err != nil {
			return i, err
		}
	}
	return len(items), nil
}
