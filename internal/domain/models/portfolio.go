package models

import "time"

const (
	PortfolioDiploma     = "diploma"
	PortfolioCertificate = "certificate"
	PortfolioGratitude   = "gratitude"
)

// PortfolioItem диплом, сертификат или благодарственное письмо
type PortfolioItem struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Organization string    `json:"organization" db:"organization"`
	Category     string    `json:"category" db:"category"`
	Image        string    `json:"image" db:"image"`
	ImageURL     string    `json:"image_url"`
	Date         time.Time `json:"date" db:"date"`
}

type PortfolioFilter struct {
	Category string
}

type PortfolioPatch struct {
	Title        *string
	Organization *string
	Category     *string
	ImageURL     *string
	Date         *time.Time
}

func (p *PortfolioItem) Apply(patch PortfolioPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Organization != nil {
		p.Organization = *patch.Organization
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		p.SetImage(*patch.ImageURL)
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
}

// SetImage держит image и image_url синхронными
func (p *PortfolioItem) SetImage(url string) {
	p.Image = url
	p.ImageURL = url
}
