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

type GalleryService struct {
	log  *slog.Logger
	repo repository.AlbumRepository
}

func NewGalleryService(log *slog.Logger, repo repository.AlbumRepository) *GalleryService {
	return &GalleryService{
		log:  log,
		repo: repo,
	}
}

func (s *GalleryService) ListAlbums(ctx context.Context) ([]models.Album, error) {
	const op = "service.GalleryService.ListAlbums"

	albums, err := s.repo.List(ctx, models.AlbumFilter{})
	if err != nil {
		s.log.Error("failed to list albums", slog.String("op", op), sl.Err(err))
		return nil, services.Wrap(op, err)
	}

	for i := range albums {
		normalize(&albums[i])
	}

	return albums, nil
}

// CreateAlbum создает альбом; фотографии можно передать сразу
func (s *GalleryService) CreateAlbum(ctx context.Context, album models.Album) (string, error) {
	const op = "service.GalleryService.CreateAlbum"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", album.Title),
	)

	log.Info("creating album")

	if strings.TrimSpace(album.Title) == "" {
		return "", services.Invalid(op, "title is required")
	}

	if album.Date.IsZero() {
		album.Date = time.Now().UTC()
	}
	normalize(&album)

	id, err := s.repo.Create(ctx, album)
	if err != nil {
		log.Error("failed to create album", sl.Err(err))
		return "", services.Wrap(op, err)
	}

	log.Info("album created", slog.String("id", id))
	return id, nil
}

// UpdateAlbum обновляет только переданные поля; Photos в патче заменяет весь набор
func (s *GalleryService) UpdateAlbum(ctx context.Context, id string, patch models.AlbumPatch) (models.Album, error) {
	const op = "service.GalleryService.UpdateAlbum"
	log := s.log.With(
		slog.String("op", op),
		slog.String("album_id", id),
	)

	log.Info("updating album")

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return models.Album{}, services.Invalid(op, "title must not be empty")
	}

	album, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Album{}, services.Wrap(op, err)
	}

	album.Apply(patch)
	normalize(&album)

	if err := s.repo.Update(ctx, album); err != nil {
		log.Error("failed to update album", sl.Err(err))
		return models.Album{}, services.Wrap(op, err)
	}

	return album, nil
}

func (s *GalleryService) DeleteAlbum(ctx context.Context, id string) error {
	const op = "service.GalleryService.DeleteAlbum"

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete album", slog.String("op", op), slog.String("album_id", id), sl.Err(err))
		return services.Wrap(op, err)
	}

	s.log.Info("album deleted", slog.String("op", op), slog.String("album_id", id))
	return nil
}

func (s *GalleryService) AddPhoto(ctx context.Context, albumID, url string) (models.Photo, error) {
	const op = "service.GalleryService.AddPhoto"
	log := s.log.With(
		slog.String("op", op),
		slog.String("album_id", albumID),
	)

	if strings.TrimSpace(url) == "" {
		return models.Photo{}, services.Invalid(op, "url is required")
	}

	photo, err := s.repo.AddPhoto(ctx, albumID, url)
	if err != nil {
		log.Error("failed to add photo", sl.Err(err))
		return models.Photo{}, services.Wrap(op, err)
	}

	log.Info("photo added", slog.String("photo_id", photo.ID))
	return photo, nil
}

// в JSON альбом всегда отдаёт массив photos, а не null
func normalize(a *models.Album) {
	if a.Photos == nil {
		a.Photos = []models.Photo{}
	}
}
