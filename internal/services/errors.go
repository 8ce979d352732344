package services

import (
	"errors"
	"fmt"

	"music_portfolio/internal/storage"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Wrap переводит ошибки хранилища в ошибки сервисного слоя.
func Wrap(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func Invalid(op, reason string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidInput, reason)
}
