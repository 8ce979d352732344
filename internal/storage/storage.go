package storage

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrKeyNotFound = errors.New("no such key")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
