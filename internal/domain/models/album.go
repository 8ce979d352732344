package models

import "time"

// Album фотоальбом; фотографии принадлежат альбому и хранятся в порядке добавления
type Album struct {
	ID     string    `json:"id" db:"id"`
	Title  string    `json:"title" db:"title"`
	Cover  string    `json:"cover" db:"cover"`
	Photos []Photo   `json:"photos"`
	Date   time.Time `json:"date" db:"date"`
}

type Photo struct {
	ID      string `json:"id" db:"id"`
	AlbumID string `json:"album_id" db:"album_id"`
	URL     string `json:"url" db:"url"`
}

type AlbumPatch struct {
	Title  *string
	Cover  *string
	Photos *[]Photo
}

func (a *Album) Apply(patch AlbumPatch) {
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Cover != nil {
		a.Cover = *patch.Cover
	}
	if patch.Photos != nil {
		photos := make([]Photo, len(*patch.Photos))
		copy(photos, *patch.Photos)
		for i := range photos {
			photos[i].AlbumID = a.ID
		}
		a.Photos = photos
	}
}

// AlbumFilter у альбомов нет параметров выборки
type AlbumFilter struct{}
