package models

import "time"

const DefaultDuration = "0:00"

type AudioTrack struct {
	ID       string `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Artist   string `json:"artist" db:"artist"`
	Category string `json:"category" db:"category"`
	FileURL  string `json:"file_url" db:"file_url"`
	Duration string `json:"duration" db:"duration"`
}

type AudioFilter struct {
	Category string
}

// Video ролик с прямой ссылкой на файл либо со встраиваемым плеером (vk_iframe)
type Video struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Thumbnail   string    `json:"thumbnail" db:"thumbnail"`
	VideoURL    string    `json:"video_url" db:"video_url"`
	VKIframe    string    `json:"vk_iframe" db:"vk_iframe"`
	Duration    string    `json:"duration" db:"duration"`
	Views       int       `json:"views" db:"views"`
	Date        time.Time `json:"date" db:"date"`
}

type VideoFilter struct {
	Category string
}
