package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music_portfolio/internal/demo"
	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/handlers/slogdiscard"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/storage/kv/memory"
)

func TestSeedService(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewKVRepository(memory.New())
	s := NewSeedService(slogdiscard.NewDiscardLogger(), repo)

	res, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, res.Seeded)
	assert.Equal(t, len(demo.Publications()), res.Counts["publications"])
	assert.Equal(t, 2, res.Counts["pages"])

	publications, err := repo.Publications.List(ctx, models.PublicationFilter{})
	require.NoError(t, err)
	assert.Len(t, publications, len(demo.Publications()))

	approved, err := repo.Reviews.List(ctx, models.ReviewFilter{Status: models.ReviewApproved})
	require.NoError(t, err)
	assert.Len(t, approved, len(demo.Reviews()))

	home, err := repo.Pages.Get(ctx, models.PageHome)
	require.NoError(t, err)
	assert.NotNil(t, home.UpdatedAt)

	t.Run("second run is a no-op", func(t *testing.T) {
		res, err := s.Seed(ctx)
		require.NoError(t, err)
		assert.False(t, res.Seeded)
		assert.Equal(t, 0, res.Counts["pages"])

		publications, err := repo.Publications.List(ctx, models.PublicationFilter{})
		require.NoError(t, err)
		assert.Len(t, publications, len(demo.Publications()))
	})
}

func TestSeedService_KeepsEditedPages(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewKVRepository(memory.New())
	s := NewSeedService(slogdiscard.NewDiscardLogger(), repo)

	require.NoError(t, repo.Pages.Upsert(ctx, models.Page{ID: models.PageAbout, Title: "Своё"}))

	res, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counts["pages"])

	about, err := repo.Pages.Get(ctx, models.PageAbout)
	require.NoError(t, err)
	assert.Equal(t, "Своё", about.Title)
}
