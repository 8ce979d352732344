package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/storage"
)

// AlbumRepo альбомы и их фотографии (таблица photos, ON DELETE CASCADE)
type AlbumRepo struct {
	pgBase
}

func NewAlbumRepo(db *pgxpool.Pool) *AlbumRepo {
	return &AlbumRepo{pgBase: newPgBase(db, "albums")}
}

var albumColumns = []string{"id", "title", "cover", "date"}

func scanAlbum(row pgx.Row) (models.Album, error) {
	var (
		a  models.Album
		id int64
	)

	if err := row.Scan(&id, &a.Title, &a.Cover, &a.Date); err != nil {
		return models.Album{}, err
	}

	a.ID = formatID(id)
	a.Photos = []models.Photo{}

	return a, nil
}

func (r *AlbumRepo) List(ctx context.Context, _ models.AlbumFilter) ([]models.Album, error) {
	const op = "repository.AlbumRepo.List"

	builder := r.sb.Select(albumColumns...).
		From(r.table).
		OrderBy("date DESC", "id DESC")

	albums, err := list(ctx, r.db, op, builder, scanAlbum)
	if err != nil {
		return nil, err
	}

	if err := r.attachPhotos(ctx, albums); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return albums, nil
}

func (r *AlbumRepo) Get(ctx context.Context, id string) (models.Album, error) {
	const op = "repository.AlbumRepo.Get"

	album, err := getOne(ctx, r.pgBase, op, id, albumColumns, scanAlbum)
	if err != nil {
		return models.Album{}, err
	}

	albums := []models.Album{album}
	if err := r.attachPhotos(ctx, albums); err != nil {
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	return albums[0], nil
}

// attachPhotos загружает фотографии всех альбомов одним запросом
func (r *AlbumRepo) attachPhotos(ctx context.Context, albums []models.Album) error {
	if len(albums) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(albums))
	index := make(map[string]int, len(albums))
	for i, a := range albums {
		n, _ := parseID(a.ID)
		ids = append(ids, n)
		index[a.ID] = i
	}

	builder := r.sb.Select("id", "album_id", "url").
		From("photos").
		Where(squirrel.Expr("album_id = ANY(?)", pq.Array(ids))).
		OrderBy("id")

	photos, err := list(ctx, r.db, "repository.AlbumRepo.attachPhotos", builder, scanPhoto)
	if err != nil {
		return err
	}

	for _, p := range photos {
		i := index[p.AlbumID]
		albums[i].Photos = append(albums[i].Photos, p)
	}

	return nil
}

func scanPhoto(row pgx.Row) (models.Photo, error) {
	var (
		p           models.Photo
		id, albumID int64
	)

	if err := row.Scan(&id, &albumID, &p.URL); err != nil {
		return models.Photo{}, err
	}

	p.ID = formatID(id)
	p.AlbumID = formatID(albumID)

	return p, nil
}

func (r *AlbumRepo) Create(ctx context.Context, a models.Album) (string, error) {
	const op = "repository.AlbumRepo.Create"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Insert(r.table).
		Columns("title", "cover", "date").
		Values(a.Title, a.Cover, a.Date).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := r.insertPhotos(ctx, tx, id, a.Photos); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return formatID(id), nil
}

// Update заменяет поля альбома и весь набор фотографий.
func (r *AlbumRepo) Update(ctx context.Context, a models.Album) error {
	const op = "repository.AlbumRepo.Update"

	id, ok := parseID(a.ID)
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Update(r.table).
		Set("title", a.Title).
		Set("cover", a.Cover).
		Set("date", a.Date).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	query, args, err = r.sb.Delete("photos").Where(squirrel.Eq{"album_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.insertPhotos(ctx, tx, id, a.Photos); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *AlbumRepo) insertPhotos(ctx context.Context, tx pgx.Tx, albumID int64, photos []models.Photo) error {
	if len(photos) == 0 {
		return nil
	}

	builder := r.sb.Insert("photos").Columns("album_id", "url")
	for _, p := range photos {
		builder = builder.Values(albumID, p.URL)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	_, err = tx.Exec(ctx, query, args...)
	return err
}

// Delete удаляет альбом, фотографии уходят каскадом.
func (r *AlbumRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.AlbumRepo.Delete"

	return r.delete(ctx, op, id)
}

// AddPhoto добавляет фото в конец альбома. Проверка существования альбома
// и вставка выполняются одним запросом.
func (r *AlbumRepo) AddPhoto(ctx context.Context, albumID, url string) (models.Photo, error) {
	const op = "repository.AlbumRepo.AddPhoto"

	n, ok := parseID(albumID)
	if !ok {
		return models.Photo{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	const query = `INSERT INTO photos (album_id, url) SELECT id, $1 FROM albums WHERE id = $2 RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, query, url, n).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Photo{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.Photo{
		ID:      formatID(id),
		AlbumID: formatID(n),
		URL:     url,
	}, nil
}
