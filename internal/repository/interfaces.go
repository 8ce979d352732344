package repository

import (
	"context"

	"music_portfolio/internal/domain/models"
)

// CRUDRepository общий контракт хранилища ресурса.
// Get, Update возвращают storage.ErrNotFound для отсутствующей записи,
// Delete отсутствующей записи ошибкой не считается.
type CRUDRepository[T any, F any] interface {
	List(ctx context.Context, filter F) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (string, error)
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id string) error
}

type PublicationRepository interface {
	CRUDRepository[models.Publication, models.PublicationFilter]
}

type AlbumRepository interface {
	CRUDRepository[models.Album, models.AlbumFilter]
	AddPhoto(ctx context.Context, albumID, url string) (models.Photo, error)
}

type AchievementRepository interface {
	CRUDRepository[models.Achievement, models.AchievementFilter]
}

type PortfolioRepository interface {
	CRUDRepository[models.PortfolioItem, models.PortfolioFilter]
}

type ReviewRepository interface {
	CRUDRepository[models.Review, models.ReviewFilter]
	SetStatus(ctx context.Context, id, status string) error
	IncrementLikes(ctx context.Context, id string) (int, error)
}

type MessageRepository interface {
	CRUDRepository[models.Message, models.MessageFilter]
	SetStatus(ctx context.Context, id, status string) error
}

type AudioRepository interface {
	CRUDRepository[models.AudioTrack, models.AudioFilter]
}

type VideoRepository interface {
	CRUDRepository[models.Video, models.VideoFilter]
	IncrementViews(ctx context.Context, id string) (int, error)
}

type PageRepository interface {
	Get(ctx context.Context, id string) (models.Page, error)
	Upsert(ctx context.Context, page models.Page) error
}
