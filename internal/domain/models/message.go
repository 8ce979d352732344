package models

import "time"

const (
	MessageNew  = "new"
	MessageRead = "read"
)

// Message сообщение из формы обратной связи
type Message struct {
	ID      string    `json:"id" db:"id"`
	Name    string    `json:"name" db:"name"`
	Email   string    `json:"email" db:"email"`
	Phone   string    `json:"phone" db:"phone"`
	Subject string    `json:"subject" db:"subject"`
	Message string    `json:"message" db:"message"`
	Status  string    `json:"status" db:"status"`
	Date    time.Time `json:"date" db:"date"`
}

type MessageFilter struct {
	Status string
}
