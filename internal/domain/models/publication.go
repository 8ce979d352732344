package models

import "time"

// Категории публикаций
const (
	CategoryEducation  = "education"
	CategoryArt        = "art"
	CategoryDistance   = "distance"
	CategoryHealth     = "health"
	CategoryCorrection = "correction"
	CategoryParents    = "parents"
	CategoryMusic      = "music"
	CategoryWorld      = "world"
	CategoryOther      = "other"
	CategoryScenarios  = "scenarios"

	// CategoryAll в фильтре означает отсутствие фильтра
	CategoryAll = "all"
)

// Publication методическая разработка или статья
type Publication struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Image       string    `json:"image" db:"image"`
	CoverImage  string    `json:"cover_image"`
	FileURL     *string   `json:"file_url" db:"file_url"`
	Date        time.Time `json:"date" db:"date"`
}

// PublicationFilter параметры выборки списка публикаций
type PublicationFilter struct {
	Category string
	Search   string
}

// PublicationPatch частичное обновление: nil-поля не трогаются
type PublicationPatch struct {
	Title       *string
	Description *string
	Category    *string
	CoverImage  *string
	FileURL     *string
	Date        *time.Time
}

// Apply переносит заданные поля патча в публикацию.
// Обложка хранится в двух полях (image и cover_image), они всегда совпадают.
func (p *Publication) Apply(patch PublicationPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.CoverImage != nil {
		p.SetCover(*patch.CoverImage)
	}
	if patch.FileURL != nil {
		url := *patch.FileURL
		p.FileURL = &url
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
}

func (p *Publication) SetCover(url string) {
	p.Image = url
	p.CoverImage = url
}
