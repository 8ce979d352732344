package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/id"
	"music_portfolio/internal/storage/kv"
)

// Префиксы ключей в KV-хранилище
const (
	PublicationPrefix = "publication:"
	AlbumPrefix       = "album:"
	AchievementPrefix = "achievement:"
	PortfolioPrefix   = "portfolio:"
	ReviewPrefix      = "review:"
	MessagePrefix     = "message:"
	AudioPrefix       = "audio:"
	VideoPrefix       = "video:"
	PagePrefix        = "page:"
)

// kvRepo общая реализация CRUD поверх kv.Collection.
// Фильтрация и сортировка выполняются в памяти.
type kvRepo[T any, F any] struct {
	c     *kv.Collection[T]
	name  string
	getID func(*T) string
	setID func(*T, string)
	match func(T, F) bool
	less  func(a, b T) bool
}

func (r *kvRepo[T, F]) List(ctx context.Context, filter F) ([]T, error) {
	op := "repository." + r.name + ".List"

	all, err := r.c.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]T, 0, len(all))
	for _, item := range all {
		if r.match == nil || r.match(item, filter) {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return r.less(items[i], items[j])
	})

	return items, nil
}

func (r *kvRepo[T, F]) Get(ctx context.Context, id string) (T, error) {
	op := "repository." + r.name + ".Get"

	item, err := r.c.Get(ctx, id)
	if err != nil {
		return item, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (r *kvRepo[T, F]) Create(ctx context.Context, item T) (string, error) {
	op := "repository." + r.name + ".Create"

	newID := id.New()
	r.setID(&item, newID)

	if err := r.c.Put(ctx, newID, item); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return newID, nil
}

func (r *kvRepo[T, F]) Update(ctx context.Context, item T) error {
	op := "repository." + r.name + ".Update"

	_, err := r.c.Mutate(ctx, r.getID(&item), func(cur *T) error {
		*cur = item
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *kvRepo[T, F]) Delete(ctx context.Context, id string) error {
	op := "repository." + r.name + ".Delete"

	if err := r.c.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// newerFirst сортировка по дате по убыванию; при равенстве по id,
// который начинается с времени создания
func newerFirst[T any](date func(T) int64, getID func(*T) string) func(a, b T) bool {
	return func(a, b T) bool {
		da, db := date(a), date(b)
		if da != db {
			return da > db
		}
		return getID(&a) > getID(&b)
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

type KVPublicationRepo struct {
	*kvRepo[models.Publication, models.PublicationFilter]
}

func NewKVPublicationRepo(store kv.Store) *KVPublicationRepo {
	getID := func(p *models.Publication) string { return p.ID }

	return &KVPublicationRepo{&kvRepo[models.Publication, models.PublicationFilter]{
		c:     kv.NewCollection[models.Publication](store, PublicationPrefix),
		name:  "KVPublicationRepo",
		getID: getID,
		setID: func(p *models.Publication, id string) { p.ID = id },
		match: func(p models.Publication, f models.PublicationFilter) bool {
			if !noFilter(f.Category) && p.Category != f.Category {
				return false
			}
			if f.Search != "" && !containsFold(p.Title, f.Search) && !containsFold(p.Description, f.Search) {
				return false
			}
			return true
		},
		less: newerFirst(func(p models.Publication) int64 { return p.Date.UnixNano() }, getID),
	}}
}

// KVAlbumRepo фотографии хранятся внутри записи альбома,
// поэтому удаление альбома удаляет и их.
type KVAlbumRepo struct {
	*kvRepo[models.Album, models.AlbumFilter]
}

func NewKVAlbumRepo(store kv.Store) *KVAlbumRepo {
	getID := func(a *models.Album) string { return a.ID }

	return &KVAlbumRepo{&kvRepo[models.Album, models.AlbumFilter]{
		c:     kv.NewCollection[models.Album](store, AlbumPrefix),
		name:  "KVAlbumRepo",
		getID: getID,
		setID: func(a *models.Album, albumID string) {
			a.ID = albumID
			assignPhotoIDs(a)
		},
		less: newerFirst(func(a models.Album) int64 { return a.Date.UnixNano() }, getID),
	}}
}

// assignPhotoIDs привязывает фото к альбому и выдаёт id тем, у кого его нет
func assignPhotoIDs(a *models.Album) {
	photos := make([]models.Photo, len(a.Photos))
	copy(photos, a.Photos)

	for i := range photos {
		photos[i].AlbumID = a.ID
		if photos[i].ID == "" {
			photos[i].ID = id.New()
		}
	}
	a.Photos = photos
}

// Update заменяет альбом целиком вместе с фотографиями.
func (r *KVAlbumRepo) Update(ctx context.Context, a models.Album) error {
	assignPhotoIDs(&a)
	return r.kvRepo.Update(ctx, a)
}

func (r *KVAlbumRepo) AddPhoto(ctx context.Context, albumID, url string) (models.Photo, error) {
	const op = "repository.KVAlbumRepo.AddPhoto"

	photo := models.Photo{
		ID:      id.New(),
		AlbumID: albumID,
		URL:     url,
	}

	_, err := r.c.Mutate(ctx, albumID, func(a *models.Album) error {
		a.Photos = append(a.Photos, photo)
		return nil
	})
	if err != nil {
		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

type KVAchievementRepo struct {
	*kvRepo[models.Achievement, models.AchievementFilter]
}

func NewKVAchievementRepo(store kv.Store) *KVAchievementRepo {
	getID := func(a *models.Achievement) string { return a.ID }

	return &KVAchievementRepo{&kvRepo[models.Achievement, models.AchievementFilter]{
		c:     kv.NewCollection[models.Achievement](store, AchievementPrefix),
		name:  "KVAchievementRepo",
		getID: getID,
		setID: func(a *models.Achievement, id string) { a.ID = id },
		match: func(a models.Achievement, f models.AchievementFilter) bool {
			return noFilter(f.Type) || a.Type == f.Type
		},
		less: newerFirst(func(a models.Achievement) int64 { return int64(a.Year) }, getID),
	}}
}

type KVPortfolioRepo struct {
	*kvRepo[models.PortfolioItem, models.PortfolioFilter]
}

func NewKVPortfolioRepo(store kv.Store) *KVPortfolioRepo {
	getID := func(p *models.PortfolioItem) string { return p.ID }

	return &KVPortfolioRepo{&kvRepo[models.PortfolioItem, models.PortfolioFilter]{
		c:     kv.NewCollection[models.PortfolioItem](store, PortfolioPrefix),
		name:  "KVPortfolioRepo",
		getID: getID,
		setID: func(p *models.PortfolioItem, id string) { p.ID = id },
		match: func(p models.PortfolioItem, f models.PortfolioFilter) bool {
			return noFilter(f.Category) || p.Category == f.Category
		},
		less: newerFirst(func(p models.PortfolioItem) int64 { return p.Date.UnixNano() }, getID),
	}}
}

type KVReviewRepo struct {
	*kvRepo[models.Review, models.ReviewFilter]
}

func NewKVReviewRepo(store kv.Store) *KVReviewRepo {
	getID := func(r *models.Review) string { return r.ID }

	return &KVReviewRepo{&kvRepo[models.Review, models.ReviewFilter]{
		c:     kv.NewCollection[models.Review](store, ReviewPrefix),
		name:  "KVReviewRepo",
		getID: getID,
		setID: func(r *models.Review, id string) { r.ID = id },
		match: func(r models.Review, f models.ReviewFilter) bool {
			return noFilter(f.Status) || r.Status == f.Status
		},
		less: newerFirst(func(r models.Review) int64 { return r.Date.UnixNano() }, getID),
	}}
}

func (r *KVReviewRepo) SetStatus(ctx context.Context, id, status string) error {
	const op = "repository.KVReviewRepo.SetStatus"

	_, err := r.c.Mutate(ctx, id, func(rv *models.Review) error {
		rv.Status = status
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *KVReviewRepo) IncrementLikes(ctx context.Context, id string) (int, error) {
	const op = "repository.KVReviewRepo.IncrementLikes"

	rv, err := r.c.Mutate(ctx, id, func(rv *models.Review) error {
		rv.Likes++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return rv.Likes, nil
}

type KVMessageRepo struct {
	*kvRepo[models.Message, models.MessageFilter]
}

func NewKVMessageRepo(store kv.Store) *KVMessageRepo {
	getID := func(m *models.Message) string { return m.ID }

	return &KVMessageRepo{&kvRepo[models.Message, models.MessageFilter]{
		c:     kv.NewCollection[models.Message](store, MessagePrefix),
		name:  "KVMessageRepo",
		getID: getID,
		setID: func(m *models.Message, id string) { m.ID = id },
		match: func(m models.Message, f models.MessageFilter) bool {
			return noFilter(f.Status) || m.Status == f.Status
		},
		less: newerFirst(func(m models.Message) int64 { return m.Date.UnixNano() }, getID),
	}}
}

func (r *KVMessageRepo) SetStatus(ctx context.Context, id, status string) error {
	const op = "repository.KVMessageRepo.SetStatus"

	_, err := r.c.Mutate(ctx, id, func(m *models.Message) error {
		m.Status = status
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type KVAudioRepo struct {
	*kvRepo[models.AudioTrack, models.AudioFilter]
}

func NewKVAudioRepo(store kv.Store) *KVAudioRepo {
	return &KVAudioRepo{&kvRepo[models.AudioTrack, models.AudioFilter]{
		c:     kv.NewCollection[models.AudioTrack](store, AudioPrefix),
		name:  "KVAudioRepo",
		getID: func(a *models.AudioTrack) string { return a.ID },
		setID: func(a *models.AudioTrack, id string) { a.ID = id },
		match: func(a models.AudioTrack, f models.AudioFilter) bool {
			return noFilter(f.Category) || a.Category == f.Category
		},
		less: func(a, b models.AudioTrack) bool {
			if a.Title != b.Title {
				return a.Title < b.Title
			}
			return a.ID < b.ID
		},
	}}
}

type KVVideoRepo struct {
	*kvRepo[models.Video, models.VideoFilter]
}

func NewKVVideoRepo(store kv.Store) *KVVideoRepo {
	getID := func(v *models.Video) string { return v.ID }

	return &KVVideoRepo{&kvRepo[models.Video, models.VideoFilter]{
		c:     kv.NewCollection[models.Video](store, VideoPrefix),
		name:  "KVVideoRepo",
		getID: getID,
		setID: func(v *models.Video, id string) { v.ID = id },
		match: func(v models.Video, f models.VideoFilter) bool {
			return noFilter(f.Category) || v.Category == f.Category
		},
		less: newerFirst(func(v models.Video) int64 { return v.Date.UnixNano() }, getID),
	}}
}

func (r *KVVideoRepo) IncrementViews(ctx context.Context, id string) (int, error) {
	const op = "repository.KVVideoRepo.IncrementViews"

	v, err := r.c.Mutate(ctx, id, func(v *models.Video) error {
		v.Views++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return v.Views, nil
}

type KVPageRepo struct {
	c *kv.Collection[models.Page]
}

func NewKVPageRepo(store kv.Store) *KVPageRepo {
	return &KVPageRepo{c: kv.NewCollection[models.Page](store, PagePrefix)}
}

func (r *KVPageRepo) Get(ctx context.Context, id string) (models.Page, error) {
	const op = "repository.KVPageRepo.Get"

	p, err := r.c.Get(ctx, id)
	if err != nil {
		return models.Page{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (r *KVPageRepo) Upsert(ctx context.Context, p models.Page) error {
	const op = "repository.KVPageRepo.Upsert"

	if err := r.c.Put(ctx, p.ID, p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
