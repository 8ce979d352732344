package dto

import "music_portfolio/internal/domain/models"

type CreateAlbumRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Cover string `json:"cover,omitempty"`
}

func (r CreateAlbumRequest) ToModel() models.Album {
	return models.Album{
		Title: r.Title,
		Cover: r.Cover,
	}
}

type PhotoRequest struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url" validate:"required"`
}

// UpdateAlbumRequest photos, если передан, заменяет весь набор фотографий альбома
type UpdateAlbumRequest struct {
	Title  *string         `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Cover  *string         `json:"cover,omitempty"`
	Photos *[]PhotoRequest `json:"photos,omitempty" validate:"omitempty,dive"`
}

func (r UpdateAlbumRequest) ToPatch() models.AlbumPatch {
	patch := models.AlbumPatch{
		Title: r.Title,
		Cover: r.Cover,
	}

	if r.Photos != nil {
		photos := make([]models.Photo, 0, len(*r.Photos))
		for _, p := range *r.Photos {
			photos = append(photos, models.Photo{ID: p.ID, URL: p.URL})
		}
		patch.Photos = &photos
	}

	return patch
}

type AddPhotoRequest struct {
	URL string `json:"url" validate:"required"`
}
