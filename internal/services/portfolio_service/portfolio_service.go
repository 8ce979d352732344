package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/services"
)

// PortfolioService документы портфолио и достижения
type PortfolioService struct {
	log          *slog.Logger
	items        repository.PortfolioRepository
	achievements repository.AchievementRepository
}

func NewPortfolioService(
	log *slog.Logger,
	items repository.PortfolioRepository,
	achievements repository.AchievementRepository,
) *PortfolioService {
	return &PortfolioService{
		log:          log,
		items:        items,
		achievements: achievements,
	}
}

func (s *PortfolioService) ListItems(ctx context.Context, filter models.PortfolioFilter) ([]models.PortfolioItem, error) {
	const op = "portfolio_service.ListItems"

	items, err := s.items.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list portfolio", slog.String("op", op), sl.Err(err))
		return nil, services.Wrap(op, err)
	}

	return items, nil
}

func (s *PortfolioService) CreateItem(ctx context.Context, item models.PortfolioItem) (string, error) {
	const op = "portfolio_service.CreateItem"
	log := s.log.With(slog.String("op", op))

	if strings.TrimSpace(item.Title) == "" {
		return "", services.Invalid(op, "title is required")
	}

	if item.Date.IsZero() {
		item.Date = time.Now().UTC()
	}

	image := item.ImageURL
	if image == "" {
		image = item.Image
	}
	item.SetImage(image)

	id, err := s.items.Create(ctx, item)
	if err != nil {
		log.Error("failed to create portfolio item", sl.Err(err))
		return "", services.Wrap(op, err)
	}

	log.Info("portfolio item created", slog.String("id", id))
	return id, nil
}

func (s *PortfolioService) UpdateItem(ctx context.Context, id string, patch models.PortfolioPatch) (models.PortfolioItem, error) {
	const op = "portfolio_service.UpdateItem"
	log := s.log.With(slog.String("op", op), slog.String("id", id))

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return models.PortfolioItem{}, services.Invalid(op, "title must not be empty")
	}

	item, err := s.items.Get(ctx, id)
	if err != nil {
		return models.PortfolioItem{}, services.Wrap(op, err)
	}

	item.Apply(patch)

	if err := s.items.Update(ctx, item); err != nil {
		log.Error("failed to update portfolio item", sl.Err(err))
		return models.PortfolioItem{}, services.Wrap(op, err)
	}

	log.Info("portfolio item updated")
	return item, nil
}

func (s *PortfolioService) DeleteItem(ctx context.Context, id string) error {
	const op = "portfolio_service.DeleteItem"

	if err := s.items.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete portfolio item", slog.String("op", op), sl.Err(err))
		return services.Wrap(op, err)
	}

	return nil
}

func (s *PortfolioService) ListAchievements(ctx context.Context, filter models.AchievementFilter) ([]models.Achievement, error) {
	const op = "portfolio_service.ListAchievements"

	items, err := s.achievements.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list achievements", slog.String("op", op), sl.Err(err))
		return nil, services.Wrap(op, err)
	}

	return items, nil
}

func (s *PortfolioService) CreateAchievement(ctx context.Context, a models.Achievement) (string, error) {
	const op = "portfolio_service.CreateAchievement"
	log := s.log.With(slog.String("op", op))

	if strings.TrimSpace(a.Title) == "" {
		return "", services.Invalid(op, "title is required")
	}

	if a.Year == 0 {
		a.Year = time.Now().Year()
	}

	id, err := s.achievements.Create(ctx, a)
	if err != nil {
		log.Error("failed to create achievement", sl.Err(err))
		return "", services.Wrap(op, err)
	}

	log.Info("achievement created", slog.String("id", id))
	return id, nil
}

func (s *PortfolioService) DeleteAchievement(ctx context.Context, id string) error {
	const op = "portfolio_service.DeleteAchievement"

	if err := s.achievements.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete achievement", slog.String("op", op), sl.Err(err))
		return services.Wrap(op, err)
	}

	return nil
}
