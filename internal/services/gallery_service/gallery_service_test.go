package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/handlers/slogdiscard"
	"music_portfolio/internal/services"
	"music_portfolio/internal/storage"
)

type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) List(ctx context.Context, f models.AlbumFilter) ([]models.Album, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Album), args.Error(1)
}

func (m *MockAlbumRepository) Get(ctx context.Context, id string) (models.Album, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Album), args.Error(1)
}

func (m *MockAlbumRepository) Create(ctx context.Context, a models.Album) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func (m *MockAlbumRepository) Update(ctx context.Context, a models.Album) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlbumRepository) AddPhoto(ctx context.Context, albumID, url string) (models.Photo, error) {
	args := m.Called(ctx, albumID, url)
	return args.Get(0).(models.Photo), args.Error(1)
}

func TestGalleryService_CreateAlbum(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		album     models.Album
		mockSetup func(repo *MockAlbumRepository)
		wantErr   error
	}{
		{
			name:  "successful creation",
			album: models.Album{Title: "Осенний праздник"},
			mockSetup: func(repo *MockAlbumRepository) {
				repo.On("Create", ctx, mock.MatchedBy(func(a models.Album) bool {
					return a.Title == "Осенний праздник" && !a.Date.IsZero() && a.Photos != nil
				})).Return("1", nil).Once()
			},
		},
		{
			name:      "missing title",
			album:     models.Album{},
			mockSetup: func(repo *MockAlbumRepository) {},
			wantErr:   services.ErrInvalidInput,
		},
		{
			name:  "repository error",
			album: models.Album{Title: "x"},
			mockSetup: func(repo *MockAlbumRepository) {
				repo.On("Create", ctx, mock.Anything).Return("", errors.New("repository error")).Once()
			},
			wantErr: errors.New("repository error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAlbumRepository)
			service := NewGalleryService(slogdiscard.NewDiscardLogger(), repo)
			tt.mockSetup(repo)

			id, err := service.CreateAlbum(ctx, tt.album)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "1", id)
			repo.AssertExpectations(t)
		})
	}
}

func TestGalleryService_UpdateAlbum(t *testing.T) {
	ctx := context.Background()
	existing := models.Album{
		ID:     "5",
		Title:  "old",
		Cover:  "cover.jpg",
		Photos: []models.Photo{{ID: "1", AlbumID: "5", URL: "a.jpg"}},
	}

	t.Run("title only keeps photos", func(t *testing.T) {
		repo := new(MockAlbumRepository)
		service := NewGalleryService(slogdiscard.NewDiscardLogger(), repo)

		title := "new"
		repo.On("Get", ctx, "5").Return(existing, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(a models.Album) bool {
			return a.Title == "new" && a.Cover == "cover.jpg" && len(a.Photos) == 1
		})).Return(nil).Once()

		got, err := service.UpdateAlbum(ctx, "5", models.AlbumPatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "new", got.Title)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockAlbumRepository)
		service := NewGalleryService(slogdiscard.NewDiscardLogger(), repo)

		repo.On("Get", ctx, "9").Return(models.Album{}, storage.ErrNotFound).Once()

		_, err := service.UpdateAlbum(ctx, "9", models.AlbumPatch{})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestGalleryService_AddPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockAlbumRepository)
		service := NewGalleryService(slogdiscard.NewDiscardLogger(), repo)

		repo.On("AddPhoto", ctx, "5", "b.jpg").
			Return(models.Photo{ID: "2", AlbumID: "5", URL: "b.jpg"}, nil).Once()

		photo, err := service.AddPhoto(ctx, "5", "b.jpg")
		require.NoError(t, err)
		assert.Equal(t, "5", photo.AlbumID)
	})

	t.Run("album missing", func(t *testing.T) {
		repo := new(MockAlbumRepository)
		service := NewGalleryService(slogdiscard.NewDiscardLogger(), repo)

		repo.On("AddPhoto", ctx, "404", "b.jpg").Return(models.Photo{}, storage.ErrNotFound).Once()

		_, err := service.AddPhoto(ctx, "404", "b.jpg")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("empty url", func(t *testing.T) {
		repo := new(MockAlbumRepository)
		service := NewGalleryService(slogdiscard.NewDiscardLogger(), repo)

		_, err := service.AddPhoto(ctx, "5", " ")
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}

func TestGalleryService_ListAlbums(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAlbumRepository)
	service := NewGalleryService(slogdiscard.NewDiscardLogger(), repo)

	repo.On("List", ctx, models.AlbumFilter{}).Return([]models.Album{{ID: "1"}}, nil).Once()

	albums, err := service.ListAlbums(ctx)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.NotNil(t, albums[0].Photos)

	repo.On("Delete", ctx, "1").Return(nil).Once()
	assert.NoError(t, service.DeleteAlbum(ctx, "1"))
}
