package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/services"
)

// AdminService вход в панель администратора и сводная статистика
type AdminService struct {
	log      *slog.Logger
	password string
	repo     *repository.Repository
}

func NewAdminService(log *slog.Logger, password string, repo *repository.Repository) *AdminService {
	return &AdminService{
		log:      log,
		password: password,
		repo:     repo,
	}
}

// Login сверяет пароль с настроенным. В конфиге можно хранить bcrypt-хэш.
// Сессия или токен не выдаются.
func (s *AdminService) Login(ctx context.Context, password string) error {
	const op = "admin_service.Login"

	log := s.log.With(slog.String("op", op))

	log.Info("attempting to login admin")

	if password == "" || s.password == "" {
		log.Warn("invalid credentials")
		return fmt.Errorf("%s: %w", op, services.ErrInvalidCredentials)
	}

	if isBcryptHash(s.password) {
		if err := bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)); err != nil {
			log.Warn("invalid credentials", sl.Err(err))
			return fmt.Errorf("%s: %w", op, services.ErrInvalidCredentials)
		}
	} else if subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
		log.Warn("invalid credentials")
		return fmt.Errorf("%s: %w", op, services.ErrInvalidCredentials)
	}

	log.Info("admin logged in successfully")
	return nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Stats публикации и альбомы целиком, отзывы на модерации,
// непрочитанные сообщения и сумма просмотров видео.
func (s *AdminService) Stats(ctx context.Context) (models.Stats, error) {
	const op = "admin_service.Stats"

	var stats models.Stats

	publications, err := s.repo.Publications.List(ctx, models.PublicationFilter{})
	if err != nil {
		return stats, s.fail(op, err)
	}
	stats.Publications = len(publications)

	albums, err := s.repo.Albums.List(ctx, models.AlbumFilter{})
	if err != nil {
		return stats, s.fail(op, err)
	}
	stats.Albums = len(albums)

	reviews, err := s.repo.Reviews.List(ctx, models.ReviewFilter{Status: models.ReviewPending})
	if err != nil {
		return stats, s.fail(op, err)
	}
	stats.Reviews = len(reviews)

	messages, err := s.repo.Messages.List(ctx, models.MessageFilter{Status: models.MessageNew})
	if err != nil {
		return stats, s.fail(op, err)
	}
	stats.Messages = len(messages)

	videos, err := s.repo.Videos.List(ctx, models.VideoFilter{})
	if err != nil {
		return stats, s.fail(op, err)
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
	}

	return stats, nil
}

func (s *AdminService) fail(op string, err error) error {
	s.log.Error("failed to collect stats", slog.String("op", op), sl.Err(err))
	return services.Wrap(op, err)
}
