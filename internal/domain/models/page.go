package models

import "time"

const (
	PageHome  = "home"
	PageAbout = "about"

	DefaultPageImage = "https://images.unsplash.com/photo-1750924718882-33ee16ddf3a8?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
)

// Page редактируемая страница сайта; одна запись на id, никогда не удаляется
type Page struct {
	ID        string     `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	ImageURL  string     `json:"image_url" db:"image_url"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

type PagePatch struct {
	Title    *string
	Content  *string
	ImageURL *string
}

func (p *Page) Apply(patch PagePatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
}

// DefaultPage заготовка, которую отдаём для ещё не сохранённой страницы
func DefaultPage(id string) Page {
	return Page{
		ID:       id,
		ImageURL: DefaultPageImage,
	}
}
