// Package filestorage хранит загруженные файлы на локальном диске.
package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"music_portfolio/internal/storage"
)

var ErrInvalidName = errors.New("invalid file name")

// FileStorage интерфейс для работы с файловым хранилищем
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, name string) (filePath string, fileSize int64, err error)
	Delete(ctx context.Context, filePath string) error
	Exists(ctx context.Context, filePath string) error
	URL(filePath string) string
}

// LocalFileStorage реализация для локальной файловой системы
type LocalFileStorage struct {
	baseDir string // например: "./uploads"
	baseURL string // например: "/uploads"
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	const op = "filestorage.NewLocalFileStorage"

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save копирует файл в baseDir под именем name.
func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, name string) (string, int64, error) {
	const op = "filestorage.Save"

	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if err := checkName(name); err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	filePath := filepath.Join(s.baseDir, name)

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("%s: failed to open source file: %w", op, err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("%s: failed to create destination file: %w", op, err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(filePath)
			return "", 0, fmt.Errorf("%s: failed to copy file: %w", op, copyErr)
		}
	case <-ctx.Done():
		<-done
		_ = os.Remove(filePath)
		return "", 0, ctx.Err()
	}

	return name, size, nil
}

// Delete удаляет файл из хранилища
func (s *LocalFileStorage) Delete(ctx context.Context, filePath string) error {
	const op = "filestorage.Delete"

	if err := checkName(filePath); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Remove(filepath.Join(s.baseDir, filePath)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *LocalFileStorage) Exists(ctx context.Context, filePath string) error {
	const op = "filestorage.Exists"

	if err := checkName(filePath); err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
	}

	info, err := os.Stat(filepath.Join(s.baseDir, filePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
	}

	return nil
}

// URL публичный адрес файла
func (s *LocalFileStorage) URL(filePath string) string {
	return s.baseURL + "/" + filePath
}

// файлы лежат плоско, поддиректории и выход за baseDir запрещены
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}
