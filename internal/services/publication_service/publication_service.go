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

type PublicationService struct {
	log  *slog.Logger
	repo repository.PublicationRepository
}

func NewPublicationService(log *slog.Logger, repo repository.PublicationRepository) *PublicationService {
	return &PublicationService{log: log, repo: repo}
}

func (s *PublicationService) List(ctx context.Context, filter models.PublicationFilter) ([]models.Publication, error) {
	const op = "publication_service.List"

	log := s.log.With(
		slog.String("op", op),
		slog.String("category", filter.Category),
		slog.String("search", filter.Search),
	)

	filter.Search = strings.TrimSpace(filter.Search)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list publications", sl.Err(err))
		return nil, services.Wrap(op, err)
	}

	log.Debug("publications listed", slog.Int("count", len(items)))

	return items, nil
}

func (s *PublicationService) Get(ctx context.Context, id string) (models.Publication, error) {
	const op = "publication_service.Get"

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Publication{}, services.Wrap(op, err)
	}

	return p, nil
}

// Create сохраняет публикацию; дата по умолчанию текущая.
func (s *PublicationService) Create(ctx context.Context, p models.Publication) (string, error) {
	const op = "publication_service.Create"

	log := s.log.With(slog.String("op", op))

	if strings.TrimSpace(p.Title) == "" {
		return "", services.Invalid(op, "title is required")
	}

	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	p.SetCover(cover(p))

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("failed to create publication", sl.Err(err))
		return "", services.Wrap(op, err)
	}

	log.Info("publication created", slog.String("id", id))

	return id, nil
}

// Update накладывает патч на существующую запись: поля, которых нет в патче, не меняются.
func (s *PublicationService) Update(ctx context.Context, id string, patch models.PublicationPatch) (models.Publication, error) {
	const op = "publication_service.Update"

	log := s.log.With(slog.String("op", op), slog.String("id", id))

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return models.Publication{}, services.Invalid(op, "title must not be empty")
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Publication{}, services.Wrap(op, err)
	}

	p.Apply(patch)

	if err := s.repo.Update(ctx, p); err != nil {
		log.Error("failed to update publication", sl.Err(err))
		return models.Publication{}, services.Wrap(op, err)
	}

	log.Info("publication updated")

	return p, nil
}

func (s *PublicationService) Delete(ctx context.Context, id string) error {
	const op = "publication_service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete publication", slog.String("op", op), slog.String("id", id), sl.Err(err))
		return services.Wrap(op, err)
	}

	s.log.Info("publication deleted", slog.String("op", op), slog.String("id", id))

	return nil
}

// клиент может прислать обложку в любом из двух полей
func cover(p models.Publication) string {
	if p.CoverImage != "" {
		return p.CoverImage
	}
	return p.Image
}
