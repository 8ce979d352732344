package models

import "time"

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
)

// Review отзыв посетителя; появляется на сайте только после модерации
type Review struct {
	ID     string    `json:"id" db:"id"`
	Author string    `json:"author" db:"author"`
	Role   string    `json:"role" db:"role"`
	Text   string    `json:"text" db:"text"`
	Rating int       `json:"rating" db:"rating"`
	Status string    `json:"status" db:"status"`
	Likes  int       `json:"likes" db:"likes"`
	Date   time.Time `json:"date" db:"date"`
}

type ReviewFilter struct {
	Status string
}
