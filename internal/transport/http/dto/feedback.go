package dto

import "music_portfolio/internal/domain/models"

type CreateReviewRequest struct {
	Author string `json:"author" validate:"required,max=255"`
	Role   string `json:"role"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

func (r CreateReviewRequest) ToModel() models.Review {
	return models.Review{
		Author: r.Author,
		Role:   r.Role,
		Text:   r.Text,
		Rating: r.Rating,
	}
}

type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

func (r CreateMessageRequest) ToModel() models.Message {
	return models.Message{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}
