package services_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/handlers/slogdiscard"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/services"
	media "music_portfolio/internal/services/media_service"
	"music_portfolio/internal/storage"
	"music_portfolio/internal/storage/filestorage"
	"music_portfolio/internal/storage/kv/memory"
)

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, file *multipart.FileHeader, name string) (string, int64, error) {
	args := m.Called(ctx, file, name)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStorage) Delete(ctx context.Context, filePath string) error {
	return m.Called(ctx, filePath).Error(0)
}

func (m *MockFileStorage) Exists(ctx context.Context, filePath string) error {
	return m.Called(ctx, filePath).Error(0)
}

func (m *MockFileStorage) URL(filePath string) string {
	return m.Called(filePath).String(0)
}

func createTestFile(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func newMediaService(t *testing.T, fs filestorage.FileStorage, maxSize int64) *media.MediaService {
	t.Helper()

	repo := repository.NewKVRepository(memory.New())
	return media.NewMediaService(slogdiscard.NewDiscardLogger(), repo.Audio, repo.Videos, fs, maxSize)
}

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file under generated name", func(t *testing.T) {
		dir := t.TempDir()
		fs, err := filestorage.NewLocalFileStorage(dir, "/uploads")
		require.NoError(t, err)
		s := newMediaService(t, fs, 0)

		res, err := s.Upload(ctx, createTestFile(t, "Scenario.PDF", "application/pdf", "%PDF-1.4"))
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-z]+\.pdf$`), res.Path)
		assert.Equal(t, "/uploads/"+res.Path, res.URL)

		data, err := os.ReadFile(filepath.Join(dir, res.Path))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))

		url, err := s.FileURL(ctx, res.Path)
		require.NoError(t, err)
		assert.Equal(t, res.URL, url)
	})

	t.Run("rejects disallowed type", func(t *testing.T) {
		fs := new(MockFileStorage)
		s := newMediaService(t, fs, 0)

		_, err := s.Upload(ctx, createTestFile(t, "run.sh", "application/x-sh", "#!/bin/sh"))
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)
		fs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects oversize file", func(t *testing.T) {
		fs := new(MockFileStorage)
		s := newMediaService(t, fs, 4)

		_, err := s.Upload(ctx, createTestFile(t, "big.png", "image/png", "0123456789"))
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)
		fs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("removes file when written size exceeds limit", func(t *testing.T) {
		dir := t.TempDir()
		fs, err := filestorage.NewLocalFileStorage(dir, "/uploads")
		require.NoError(t, err)
		s := newMediaService(t, fs, 4)

		file := createTestFile(t, "big.png", "image/png", "0123456789")
		file.Size = 2

		_, err = s.Upload(ctx, file)
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing file url", func(t *testing.T) {
		fs := new(MockFileStorage)
		s := newMediaService(t, fs, 0)

		fs.On("Exists", ctx, "nope.pdf").Return(storage.ErrFileNotFound).Once()

		_, err := s.FileURL(ctx, "nope.pdf")
		assert.ErrorIs(t, err, storage.ErrFileNotFound)
	})
}

func TestMediaService_Audio(t *testing.T) {
	ctx := context.Background()
	s := newMediaService(t, new(MockFileStorage), 0)

	id, err := s.CreateAudio(ctx, models.AudioTrack{Title: "Колыбельная", Category: "Релаксация"})
	require.NoError(t, err)

	tracks, err := s.ListAudio(ctx, models.AudioFilter{Category: "Релаксация"})
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, models.DefaultDuration, tracks[0].Duration)

	_, err = s.CreateAudio(ctx, models.AudioTrack{})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	require.NoError(t, s.DeleteAudio(ctx, id))
	tracks, err = s.ListAudio(ctx, models.AudioFilter{})
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestMediaService_Videos(t *testing.T) {
	ctx := context.Background()
	s := newMediaService(t, new(MockFileStorage), 0)

	id, err := s.CreateVideo(ctx, models.Video{Title: "Праздник", Views: 999})
	require.NoError(t, err)

	views, err := s.ViewVideo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, views)

	videos, err := s.ListVideos(ctx, models.VideoFilter{})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, 1, videos[0].Views)
	assert.Equal(t, models.DefaultDuration, videos[0].Duration)

	_, err = s.ViewVideo(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, s.DeleteVideo(ctx, id))
}
