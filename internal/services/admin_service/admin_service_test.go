package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/handlers/slogdiscard"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/services"
	"music_portfolio/internal/storage/kv/memory"
)

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewKVRepository(memory.New())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		configured string
		given      string
		wantErr    bool
	}{
		{name: "plain match", configured: "admin", given: "admin"},
		{name: "plain mismatch", configured: "admin", given: "Admin", wantErr: true},
		{name: "empty given", configured: "admin", given: "", wantErr: true},
		{name: "hash match", configured: string(hash), given: "s3cret"},
		{name: "hash mismatch", configured: string(hash), given: "wrong", wantErr: true},
		{name: "hash given verbatim", configured: string(hash), given: string(hash), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAdminService(slogdiscard.NewDiscardLogger(), tt.configured, repo)

			err := s.Login(ctx, tt.given)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrInvalidCredentials)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewKVRepository(memory.New())
	s := NewAdminService(slogdiscard.NewDiscardLogger(), "admin", repo)

	now := time.Now()

	_, err := repo.Publications.Create(ctx, models.Publication{Title: "a", Date: now})
	require.NoError(t, err)
	_, err = repo.Publications.Create(ctx, models.Publication{Title: "b", Date: now})
	require.NoError(t, err)
	_, err = repo.Albums.Create(ctx, models.Album{Title: "a", Date: now})
	require.NoError(t, err)
	_, err = repo.Reviews.Create(ctx, models.Review{Author: "a", Text: "t", Status: models.ReviewPending, Date: now})
	require.NoError(t, err)
	_, err = repo.Reviews.Create(ctx, models.Review{Author: "b", Text: "t", Status: models.ReviewApproved, Date: now})
	require.NoError(t, err)
	_, err = repo.Messages.Create(ctx, models.Message{Name: "a", Status: models.MessageRead, Date: now})
	require.NoError(t, err)
	_, err = repo.Videos.Create(ctx, models.Video{Title: "a", Views: 10, Date: now})
	require.NoError(t, err)
	_, err = repo.Videos.Create(ctx, models.Video{Title: "b", Views: 5, Date: now})
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.Stats{
		Publications: 2,
		Albums:       1,
		Reviews:      1,
		Messages:     0,
		TotalViews:   15,
	}, stats)
}
