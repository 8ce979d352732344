package dto

import (
	"time"

	"music_portfolio/internal/domain/models"
)

type CreatePublicationRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description"`
	Category    string     `json:"category" validate:"omitempty,oneof=education art distance health correction parents music world other scenarios"`
	Image       string     `json:"image,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	FileURL     *string    `json:"file_url,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// ToModel обложку берём из cover_image, а если её нет, из image
func (r CreatePublicationRequest) ToModel() models.Publication {
	p := models.Publication{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		FileURL:     r.FileURL,
	}

	cover := r.CoverImage
	if cover == "" {
		cover = r.Image
	}
	p.SetCover(cover)

	if r.Date != nil {
		p.Date = *r.Date
	}

	return p
}

type UpdatePublicationRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,oneof=education art distance health correction parents music world other scenarios"`
	CoverImage  *string    `json:"cover_image,omitempty"`
	FileURL     *string    `json:"file_url,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func (r UpdatePublicationRequest) ToPatch() models.PublicationPatch {
	return models.PublicationPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		CoverImage:  r.CoverImage,
		FileURL:     r.FileURL,
		Date:        r.Date,
	}
}
