package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"music_portfolio/internal/app"
	"music_portfolio/internal/client"
	"music_portfolio/internal/config"
	"music_portfolio/internal/demo"
	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/handlers/slogdiscard"
	"music_portfolio/internal/transport/http/dto"
)

type ClientSuite struct {
	suite.Suite
	ctx context.Context
	app *app.App
	srv *httptest.Server
	c   *client.Client
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.ctx = context.Background()

	cfg := &config.Config{
		Env:           "local",
		AdminPassword: "admin",
		Storage:       config.StorageConfig{Driver: config.DriverMemory},
		FileStorage: config.FileStorageConfig{
			BaseDir: s.T().TempDir(),
			BaseURL: "/uploads",
			MaxSize: 1 << 20,
		},
	}

	s.app = app.New(slogdiscard.NewDiscardLogger(), cfg)
	s.app.HTTPServer.BuildRouters()

	s.srv = httptest.NewServer(s.app.HTTPServer.Handler())
	s.c = client.New(s.srv.URL + "/")
}

func (s *ClientSuite) TearDownTest() {
	s.srv.Close()
	s.app.Close()
}

func (s *ClientSuite) TestHealth() {
	s.NoError(s.c.Health(s.ctx))
}

func (s *ClientSuite) TestPublications() {
	id, err := s.c.CreatePublication(s.ctx, dto.CreatePublicationRequest{
		Title:    "Пальчиковые игры",
		Category: models.CategoryMusic,
	})
	s.Require().NoError(err)

	p, err := s.c.Publication(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Пальчиковые игры", p.Title)

	title := "Пальчиковые игры для малышей"
	s.Require().NoError(s.c.UpdatePublication(s.ctx, id, dto.UpdatePublicationRequest{Title: &title}))

	items, err := s.c.Publications(s.ctx, models.PublicationFilter{Search: "малыш"})
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(title, items[0].Title)

	s.Require().NoError(s.c.DeletePublication(s.ctx, id))

	_, err = s.c.Publication(s.ctx, id)
	s.True(errors.Is(err, client.ErrNotFound))

	var apiErr *client.APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusNotFound, apiErr.StatusCode)
	s.Equal("not_found", apiErr.Code)
}

func (s *ClientSuite) TestValidationError() {
	_, err := s.c.CreateMessage(s.ctx, dto.CreateMessageRequest{Name: gofakeit.Name()})
	s.True(errors.Is(err, client.ErrBadRequest))
}

func (s *ClientSuite) TestAlbums() {
	id, err := s.c.CreateAlbum(s.ctx, dto.CreateAlbumRequest{Title: "Масленица"})
	s.Require().NoError(err)

	photoID, err := s.c.AddPhoto(s.ctx, id, gofakeit.URL())
	s.Require().NoError(err)
	s.NotEmpty(photoID)

	albums, err := s.c.Albums(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(albums, 1)
	s.Len(albums[0].Photos, 1)

	s.Require().NoError(s.c.DeleteAlbum(s.ctx, id))
}

func (s *ClientSuite) TestFeedbackCounters() {
	id, err := s.c.CreateReview(s.ctx, dto.CreateReviewRequest{Author: gofakeit.Name(), Text: "Замечательный педагог"})
	s.Require().NoError(err)

	s.Require().NoError(s.c.ApproveReview(s.ctx, id))

	likes, err := s.c.LikeReview(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(1, likes)

	approved, err := s.c.Reviews(s.ctx, models.ReviewApproved)
	s.Require().NoError(err)
	s.Len(approved, 1)

	videoID, err := s.c.CreateVideo(s.ctx, dto.CreateVideoRequest{Title: "Танец снежинок", VideoURL: gofakeit.URL()})
	s.Require().NoError(err)

	views, err := s.c.ViewVideo(s.ctx, videoID)
	s.Require().NoError(err)
	s.Equal(1, views)

	stats, err := s.c.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, stats.TotalViews)
	s.Equal(0, stats.Reviews)
}

func (s *ClientSuite) TestPagesAndLogin() {
	p, err := s.c.Page(s.ctx, models.PageHome)
	s.Require().NoError(err)
	s.Equal(models.DefaultPageImage, p.ImageURL)

	content := "Добро пожаловать"
	s.Require().NoError(s.c.UpdatePage(s.ctx, models.PageHome, dto.UpdatePageRequest{Content: &content}))

	p, err = s.c.Page(s.ctx, models.PageHome)
	s.Require().NoError(err)
	s.Equal(content, p.Content)

	ok, err := s.c.Login(s.ctx, "admin")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.c.Login(s.ctx, "guess")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ClientSuite) TestSeedAndUpload() {
	res, err := s.c.SeedDemo(s.ctx)
	s.Require().NoError(err)
	s.True(res.Seeded)
	s.Equal(len(demo.Audio()), res.Counts["audio"])

	audio, err := s.c.Audio(s.ctx, "")
	s.Require().NoError(err)
	s.Len(audio, len(demo.Audio()))

	up, err := s.c.Upload(s.ctx, "score.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	s.Require().NoError(err)

	url, err := s.c.FileURL(s.ctx, up.Path)
	s.Require().NoError(err)
	s.Equal(up.URL, url)
}

func TestOrDemo(t *testing.T) {
	fallback := func() []models.Album { return demo.Albums() }
	live := []models.Album{{ID: "1", Title: "Живые данные"}}

	assert.Equal(t, live, client.OrDemo(live, nil, fallback))
	assert.Equal(t, demo.Albums(), client.OrDemo(nil, errors.New("offline"), fallback))
	assert.Equal(t, demo.Albums(), client.OrDemo([]models.Album{}, nil, fallback))
}

func TestClient_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := client.New(srv.URL)
	srv.Close()

	items, err := c.Videos(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, items)

	assert.NotEmpty(t, client.OrDemo(items, err, demo.Videos))
}
