package response

import "time"

type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CreatedResponse ответ на создание записи
type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CounterResponse ответ на лайк или просмотр: новое значение счётчика
type CounterResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UploadResponse struct {
	URL     string `json:"url"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

type FileURLResponse struct {
	URL string `json:"url"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// SeedResponse seeded=false, если данные уже были; counts по коллекциям
type SeedResponse struct {
	Seeded bool           `json:"seeded"`
	Counts map[string]int `json:"counts"`
}

func SuccessResponse(message string) Response {
	return Response{
		Status:  "success",
		Message: message,
	}
}

func ErrorResponseWithDetails(err, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   err,
		Details: details,
	}
}
