package dto

import "music_portfolio/internal/domain/models"

type UpdatePageRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

func (r UpdatePageRequest) ToPatch() models.PagePatch {
	return models.PagePatch{
		Title:    r.Title,
		Content:  r.Content,
		ImageURL: r.ImageURL,
	}
}
