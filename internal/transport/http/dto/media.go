package dto

import (
	"time"

	"music_portfolio/internal/domain/models"
)

type CreateAudioRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Artist   string `json:"artist"`
	Category string `json:"category"`
	FileURL  string `json:"file_url"`
	Duration string `json:"duration,omitempty"`
}

func (r CreateAudioRequest) ToModel() models.AudioTrack {
	return models.AudioTrack{
		Title:    r.Title,
		Artist:   r.Artist,
		Category: r.Category,
		FileURL:  r.FileURL,
		Duration: r.Duration,
	}
}

// CreateVideoRequest ролик задаётся прямой ссылкой (video_url) или кодом плеера (vk_iframe)
type CreateVideoRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	VideoURL    string     `json:"video_url,omitempty"`
	VKIframe    string     `json:"vk_iframe,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func (r CreateVideoRequest) ToModel() models.Video {
	v := models.Video{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Thumbnail:   r.Thumbnail,
		VideoURL:    r.VideoURL,
		VKIframe:    r.VKIframe,
		Duration:    r.Duration,
	}
	if r.Date != nil {
		v.Date = *r.Date
	}
	return v
}
