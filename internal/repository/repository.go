package repository

import (
	"music_portfolio/internal/storage/kv"
	"music_portfolio/internal/storage/postgresql"
)

// Repository набор хранилищ всех ресурсов. Сервисы видят только интерфейсы,
// какой движок под ними, решается при сборке приложения.
type Repository struct {
	Publications PublicationRepository
	Albums       AlbumRepository
	Achievements AchievementRepository
	Portfolio    PortfolioRepository
	Reviews      ReviewRepository
	Messages     MessageRepository
	Audio        AudioRepository
	Videos       VideoRepository
	Pages        PageRepository
}

// NewPostgresRepository реляционная схема: таблица на ресурс.
func NewPostgresRepository(s *postgresql.Storage) *Repository {
	return &Repository{
		Publications: NewPublicationRepo(s.DB),
		Albums:       NewAlbumRepo(s.DB),
		Achievements: NewAchievementRepo(s.DB),
		Portfolio:    NewPortfolioRepo(s.DB),
		Reviews:      NewReviewRepo(s.DB),
		Messages:     NewMessageRepo(s.DB),
		Audio:        NewAudioRepo(s.DB),
		Videos:       NewVideoRepo(s.DB),
		Pages:        NewPageRepo(s.DB),
	}
}

// NewKVRepository документная схема: JSON-записи под префиксами ключей.
func NewKVRepository(store kv.Store) *Repository {
	return &Repository{
		Publications: NewKVPublicationRepo(store),
		Albums:       NewKVAlbumRepo(store),
		Achievements: NewKVAchievementRepo(store),
		Portfolio:    NewKVPortfolioRepo(store),
		Reviews:      NewKVReviewRepo(store),
		Messages:     NewKVMessageRepo(store),
		Audio:        NewKVAudioRepo(store),
		Videos:       NewKVVideoRepo(store),
		Pages:        NewKVPageRepo(store),
	}
}
