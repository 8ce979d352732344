package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/handlers/slogdiscard"
	"music_portfolio/internal/services"
	"music_portfolio/internal/storage"
)

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) List(ctx context.Context, f models.PortfolioFilter) ([]models.PortfolioItem, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) Get(ctx context.Context, id string) (models.PortfolioItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) Create(ctx context.Context, item models.PortfolioItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MockPortfolioRepository) Update(ctx context.Context, item models.PortfolioItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockPortfolioRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) List(ctx context.Context, f models.AchievementFilter) ([]models.Achievement, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) Get(ctx context.Context, id string) (models.Achievement, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) Create(ctx context.Context, a models.Achievement) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func (m *MockAchievementRepository) Update(ctx context.Context, a models.Achievement) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAchievementRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setup() (*PortfolioService, *MockPortfolioRepository, *MockAchievementRepository) {
	items := new(MockPortfolioRepository)
	achievements := new(MockAchievementRepository)
	return NewPortfolioService(slogdiscard.NewDiscardLogger(), items, achievements), items, achievements
}

func TestPortfolioService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("image mirrored into both fields", func(t *testing.T) {
		s, items, _ := setup()

		items.On("Create", ctx, mock.MatchedBy(func(p models.PortfolioItem) bool {
			return p.Image == "/uploads/d.jpg" && p.ImageURL == "/uploads/d.jpg" && !p.Date.IsZero()
		})).Return("3", nil).Once()

		id, err := s.CreateItem(ctx, models.PortfolioItem{
			Title:    "Диплом",
			Category: models.PortfolioDiploma,
			Image:    "/uploads/d.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, "3", id)
		items.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		s, _, _ := setup()

		_, err := s.CreateItem(ctx, models.PortfolioItem{})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}

func TestPortfolioService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	existing := models.PortfolioItem{ID: "3", Title: "Диплом", Organization: "Департамент", Date: date}

	t.Run("organization kept", func(t *testing.T) {
		s, items, _ := setup()

		url := "/uploads/new.jpg"
		items.On("Get", ctx, "3").Return(existing, nil).Once()
		items.On("Update", ctx, mock.MatchedBy(func(p models.PortfolioItem) bool {
			return p.Organization == "Департамент" && p.Image == url && p.ImageURL == url && p.Date.Equal(date)
		})).Return(nil).Once()

		_, err := s.UpdateItem(ctx, "3", models.PortfolioPatch{ImageURL: &url})
		require.NoError(t, err)
		items.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		s, items, _ := setup()

		items.On("Get", ctx, "404").Return(models.PortfolioItem{}, storage.ErrNotFound).Once()

		_, err := s.UpdateItem(ctx, "404", models.PortfolioPatch{})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestPortfolioService_Achievements(t *testing.T) {
	ctx := context.Background()
	s, _, achievements := setup()

	achievements.On("Create", ctx, mock.MatchedBy(func(a models.Achievement) bool {
		return a.Year == time.Now().Year()
	})).Return("1", nil).Once()

	_, err := s.CreateAchievement(ctx, models.Achievement{Title: "Победитель конкурса", Type: models.AchievementPersonal})
	require.NoError(t, err)

	filter := models.AchievementFilter{Type: models.AchievementPersonal}
	achievements.On("List", ctx, filter).Return(nil, errors.New("db error")).Once()

	_, err = s.ListAchievements(ctx, filter)
	assert.Error(t, err)

	achievements.On("Delete", ctx, "1").Return(nil).Once()
	assert.NoError(t, s.DeleteAchievement(ctx, "1"))

	achievements.AssertExpectations(t)
}
