package services

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/services"
	"music_portfolio/internal/storage"
)

var slugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

type PageService struct {
	log  *slog.Logger
	repo repository.PageRepository
}

func NewPageService(log *slog.Logger, repo repository.PageRepository) *PageService {
	return &PageService{log: log, repo: repo}
}

// Get для ещё не сохранённой страницы возвращает заготовку, а не ошибку.
func (s *PageService) Get(ctx context.Context, id string) (models.Page, error) {
	const op = "page_service.Get"

	if !slugRe.MatchString(id) {
		return models.Page{}, services.Invalid(op, "bad page id")
	}

	page, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.DefaultPage(id), nil
		}
		s.log.Error("failed to get page", slog.String("op", op), slog.String("id", id), sl.Err(err))
		return models.Page{}, services.Wrap(op, err)
	}

	return page, nil
}

// Update частично обновляет страницу, создавая её при первом сохранении.
func (s *PageService) Update(ctx context.Context, id string, patch models.PagePatch) (models.Page, error) {
	const op = "page_service.Update"
	log := s.log.With(slog.String("op", op), slog.String("id", id))

	if !slugRe.MatchString(id) {
		return models.Page{}, services.Invalid(op, "bad page id")
	}

	// заготовка с картинкой только для чтения, в базу она не попадает
	page, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to get page", sl.Err(err))
			return models.Page{}, services.Wrap(op, err)
		}
		page = models.Page{ID: id}
	}

	page.Apply(patch)
	now := time.Now().UTC()
	page.UpdatedAt = &now

	if err := s.repo.Upsert(ctx, page); err != nil {
		log.Error("failed to save page", sl.Err(err))
		return models.Page{}, services.Wrap(op, err)
	}

	log.Info("page saved")
	return page, nil
}
