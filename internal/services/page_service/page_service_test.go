package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/handlers/slogdiscard"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/services"
	"music_portfolio/internal/storage/kv/memory"
)

func TestPageService(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewKVRepository(memory.New())
	s := NewPageService(slogdiscard.NewDiscardLogger(), repo.Pages)

	t.Run("absent page returns default", func(t *testing.T) {
		page, err := s.Get(ctx, models.PageAbout)
		require.NoError(t, err)
		assert.Equal(t, models.PageAbout, page.ID)
		assert.Equal(t, models.DefaultPageImage, page.ImageURL)
		assert.Nil(t, page.UpdatedAt)
	})

	t.Run("update creates then merges", func(t *testing.T) {
		title := "Обо мне"
		page, err := s.Update(ctx, models.PageAbout, models.PagePatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Обо мне", page.Title)
		assert.Empty(t, page.ImageURL)
		require.NotNil(t, page.UpdatedAt)

		content := "Музыкальный руководитель"
		_, err = s.Update(ctx, models.PageAbout, models.PagePatch{Content: &content})
		require.NoError(t, err)

		got, err := s.Get(ctx, models.PageAbout)
		require.NoError(t, err)
		assert.Equal(t, "Обо мне", got.Title)
		assert.Equal(t, "Музыкальный руководитель", got.Content)
		assert.Empty(t, got.ImageURL)
	})

	t.Run("update keeps given image", func(t *testing.T) {
		image := "/uploads/home.jpg"
		_, err := s.Update(ctx, models.PageHome, models.PagePatch{ImageURL: &image})
		require.NoError(t, err)

		got, err := s.Get(ctx, models.PageHome)
		require.NoError(t, err)
		assert.Equal(t, image, got.ImageURL)
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := s.Get(ctx, "../etc")
		assert.ErrorIs(t, err, services.ErrInvalidInput)

		title := "x"
		_, err = s.Update(ctx, "../etc", models.PagePatch{Title: &title})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}
