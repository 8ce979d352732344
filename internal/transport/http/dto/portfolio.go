package dto

import (
	"time"

	"music_portfolio/internal/domain/models"
)

type CreatePortfolioRequest struct {
	Title        string     `json:"title" validate:"required,max=255"`
	Organization string     `json:"organization"`
	Category     string     `json:"category" validate:"omitempty,oneof=diploma certificate gratitude"`
	Image        string     `json:"image,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
}

func (r CreatePortfolioRequest) ToModel() models.PortfolioItem {
	item := models.PortfolioItem{
		Title:        r.Title,
		Organization: r.Organization,
		Category:     r.Category,
	}

	image := r.ImageURL
	if image == "" {
		image = r.Image
	}
	item.SetImage(image)

	if r.Date != nil {
		item.Date = *r.Date
	}

	return item
}

type UpdatePortfolioRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Organization *string    `json:"organization,omitempty"`
	Category     *string    `json:"category,omitempty" validate:"omitempty,oneof=diploma certificate gratitude"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
}

func (r UpdatePortfolioRequest) ToPatch() models.PortfolioPatch {
	return models.PortfolioPatch{
		Title:        r.Title,
		Organization: r.Organization,
		Category:     r.Category,
		ImageURL:     r.ImageURL,
		Date:         r.Date,
	}
}

type CreateAchievementRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Year  int    `json:"year" validate:"omitempty,min=1900,max=2100"`
	Type  string `json:"type" validate:"omitempty,oneof=personal professional teaching"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func (r CreateAchievementRequest) ToModel() models.Achievement {
	return models.Achievement{
		Title: r.Title,
		Year:  r.Year,
		Type:  r.Type,
		Icon:  r.Icon,
		Color: r.Color,
	}
}
