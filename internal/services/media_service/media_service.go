package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/id"
	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/metrics"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/services"
	"music_portfolio/internal/storage"
	"music_portfolio/internal/storage/filestorage"
)

// DefaultMaxUploadSize 50 МБ
const DefaultMaxUploadSize int64 = 50 << 20

// AllowedMimeTypes типы файлов, которые принимает загрузка
var AllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"audio/mpeg",
	"audio/mp3",
	"audio/wav",
	"video/mp4",
}

// UploadResult url для клиента и имя файла в хранилище
type UploadResult struct {
	URL  string
	Path string
}

type MediaService struct {
	log           *slog.Logger
	audio         repository.AudioRepository
	videos        repository.VideoRepository
	fileStorage   filestorage.FileStorage
	maxUploadSize int64
	allowed       map[string]struct{}
}

func NewMediaService(
	log *slog.Logger,
	audio repository.AudioRepository,
	videos repository.VideoRepository,
	fileStorage filestorage.FileStorage,
	maxUploadSize int64,
) *MediaService {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}

	allowed := make(map[string]struct{}, len(AllowedMimeTypes))
	for _, t := range AllowedMimeTypes {
		allowed[t] = struct{}{}
	}

	return &MediaService{
		log:           log,
		audio:         audio,
		videos:        videos,
		fileStorage:   fileStorage,
		maxUploadSize: maxUploadSize,
		allowed:       allowed,
	}
}

func (s *MediaService) ListAudio(ctx context.Context, filter models.AudioFilter) ([]models.AudioTrack, error) {
	const op = "media_service.ListAudio"

	tracks, err := s.audio.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list audio", slog.String("op", op), sl.Err(err))
		return nil, services.Wrap(op, err)
	}

	return tracks, nil
}

func (s *MediaService) CreateAudio(ctx context.Context, track models.AudioTrack) (string, error) {
	const op = "media_service.CreateAudio"
	log := s.log.With(slog.String("op", op))

	if strings.TrimSpace(track.Title) == "" {
		return "", services.Invalid(op, "title is required")
	}

	if track.Duration == "" {
		track.Duration = models.DefaultDuration
	}

	id, err := s.audio.Create(ctx, track)
	if err != nil {
		log.Error("failed to create audio", sl.Err(err))
		return "", services.Wrap(op, err)
	}

	log.Info("audio created", slog.String("id", id))
	return id, nil
}

func (s *MediaService) DeleteAudio(ctx context.Context, id string) error {
	const op = "media_service.DeleteAudio"

	if err := s.audio.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete audio", slog.String("op", op), sl.Err(err))
		return services.Wrap(op, err)
	}

	return nil
}

func (s *MediaService) ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error) {
	const op = "media_service.ListVideos"

	videos, err := s.videos.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list videos", slog.String("op", op), sl.Err(err))
		return nil, services.Wrap(op, err)
	}

	return videos, nil
}

// CreateVideo счётчик просмотров нового ролика всегда начинается с нуля
func (s *MediaService) CreateVideo(ctx context.Context, v models.Video) (string, error) {
	const op = "media_service.CreateVideo"
	log := s.log.With(slog.String("op", op))

	if strings.TrimSpace(v.Title) == "" {
		return "", services.Invalid(op, "title is required")
	}

	if v.Duration == "" {
		v.Duration = models.DefaultDuration
	}
	if v.Date.IsZero() {
		v.Date = time.Now().UTC()
	}
	v.Views = 0

	id, err := s.videos.Create(ctx, v)
	if err != nil {
		log.Error("failed to create video", sl.Err(err))
		return "", services.Wrap(op, err)
	}

	log.Info("video created", slog.String("id", id))
	return id, nil
}

func (s *MediaService) ViewVideo(ctx context.Context, id string) (int, error) {
	const op = "media_service.ViewVideo"

	views, err := s.videos.IncrementViews(ctx, id)
	if err != nil {
		s.log.Error("failed to count view", slog.String("op", op), slog.String("id", id), sl.Err(err))
		return 0, services.Wrap(op, err)
	}

	return views, nil
}

func (s *MediaService) DeleteVideo(ctx context.Context, id string) error {
	const op = "media_service.DeleteVideo"

	if err := s.videos.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete video", slog.String("op", op), sl.Err(err))
		return services.Wrap(op, err)
	}

	return nil
}

// Upload проверяет размер и тип файла и сохраняет его под сгенерированным именем
// <millis>-<random>.<ext>.
func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader) (UploadResult, error) {
	const op = "media_service.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
	)

	if file.Size > s.maxUploadSize {
		log.Warn("file too large")
		return UploadResult{}, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	contentType := mediaType(file.Header.Get("Content-Type"))
	if _, ok := s.allowed[contentType]; !ok {
		log.Warn("file type not allowed", slog.String("content_type", contentType))
		return UploadResult{}, fmt.Errorf("%s: %w: %s", op, storage.ErrInvalidFileType, contentType)
	}

	name := id.New() + strings.ToLower(filepath.Ext(file.Filename))

	path, size, err := s.fileStorage.Save(ctx, file, name)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return UploadResult{}, fmt.Errorf("%s: %w", op, err)
	}

	// заголовок мог занизить размер, проверяем по записанным байтам
	if size > s.maxUploadSize {
		log.Warn("written file exceeds limit", slog.Int64("written", size))
		if err := s.fileStorage.Delete(ctx, path); err != nil {
			log.Error("failed to remove oversize file", sl.Err(err))
		}
		return UploadResult{}, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	metrics.UploadedBytes.Add(float64(size))

	log.Info("file uploaded", slog.String("path", path), slog.Int64("written", size))

	return UploadResult{
		URL:  s.fileStorage.URL(path),
		Path: path,
	}, nil
}

// FileURL публичный адрес ранее загруженного файла
func (s *MediaService) FileURL(ctx context.Context, path string) (string, error) {
	const op = "media_service.FileURL"

	if err := s.fileStorage.Exists(ctx, path); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.fileStorage.URL(path), nil
}

func mediaType(header string) string {
	t, _, err := mime.ParseMediaType(header)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(header))
	}
	return t
}
