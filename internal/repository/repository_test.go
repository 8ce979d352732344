package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/storage"
	"music_portfolio/internal/storage/kv/memory"
	"music_portfolio/internal/storage/postgresql/pgtest"
)

// RepositorySuite одинаковые проверки для обоих движков
type RepositorySuite struct {
	suite.Suite

	ctx   context.Context
	repo  *repository.Repository
	reset func()

	// photosLeft сколько фотографий альбома осталось в хранилище
	photosLeft func(albumID string) int
}

func TestKVRepository(t *testing.T) {
	s := &RepositorySuite{}
	s.reset = func() {
		store := memory.New()
		s.repo = repository.NewKVRepository(store)
		s.photosLeft = func(albumID string) int {
			raw, err := store.Get(context.Background(), repository.AlbumPrefix+albumID)
			if errors.Is(err, storage.ErrKeyNotFound) {
				return 0
			}
			require.NoError(t, err)

			var album models.Album
			require.NoError(t, json.Unmarshal(raw, &album))
			return len(album.Photos)
		}
	}
	suite.Run(t, s)
}

func TestPostgresRepository(t *testing.T) {
	pg := pgtest.New(t)

	s := &RepositorySuite{}
	s.reset = func() {
		_, err := pg.DB.Exec(context.Background(), `TRUNCATE publications, albums, photos, achievements,
			portfolio, reviews, messages, audio, videos, pages RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
		s.repo = repository.NewPostgresRepository(pg)
	}
	s.photosLeft = func(albumID string) int {
		n, err := strconv.ParseInt(albumID, 10, 64)
		require.NoError(t, err)

		var count int
		err = pg.DB.QueryRow(context.Background(), `SELECT count(*) FROM photos WHERE album_id = $1`, n).Scan(&count)
		require.NoError(t, err)
		return count
	}
	suite.Run(t, s)
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.reset()
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func (s *RepositorySuite) createPublication(title, description, category string, date time.Time) string {
	p := models.Publication{
		Title:       title,
		Description: description,
		Category:    category,
		Date:        date,
	}
	p.SetCover(gofakeit.URL())

	id, err := s.repo.Publications.Create(s.ctx, p)
	s.Require().NoError(err)
	s.Require().NotEmpty(id)

	return id
}

func (s *RepositorySuite) TestPublications_CreateGet() {
	fileURL := "/uploads/plan.pdf"
	p := models.Publication{
		Title:       "Осенний праздник",
		Description: gofakeit.Sentence(8),
		Category:    models.CategoryScenarios,
		FileURL:     &fileURL,
		Date:        day(1),
	}
	p.SetCover("https://example.com/cover.jpg")

	id, err := s.repo.Publications.Create(s.ctx, p)
	s.Require().NoError(err)

	got, err := s.repo.Publications.Get(s.ctx, id)
	s.Require().NoError(err)

	s.Equal(id, got.ID)
	s.Equal(p.Title, got.Title)
	s.Equal("https://example.com/cover.jpg", got.Image)
	s.Equal(got.Image, got.CoverImage)
	s.Require().NotNil(got.FileURL)
	s.Equal(fileURL, *got.FileURL)
	s.True(p.Date.Equal(got.Date))
}

func (s *RepositorySuite) TestPublications_ListFilterAndOrder() {
	oldest := s.createPublication("Ритмические игры", "игры для младшей группы", models.CategoryMusic, day(1))
	newest := s.createPublication("Дыхательная гимнастика", "Здоровье и МУЗЫКА", models.CategoryHealth, day(3))
	middle := s.createPublication("Консультация", "для родителей", models.CategoryParents, day(2))

	all, err := s.repo.Publications.List(s.ctx, models.PublicationFilter{})
	s.Require().NoError(err)
	s.Equal([]string{newest, middle, oldest}, publicationIDs(all))

	all, err = s.repo.Publications.List(s.ctx, models.PublicationFilter{Category: models.CategoryAll})
	s.Require().NoError(err)
	s.Len(all, 3)

	byCategory, err := s.repo.Publications.List(s.ctx, models.PublicationFilter{Category: models.CategoryMusic})
	s.Require().NoError(err)
	s.Equal([]string{oldest}, publicationIDs(byCategory))

	// поиск по описанию без учёта регистра
	bySearch, err := s.repo.Publications.List(s.ctx, models.PublicationFilter{Search: "музыка"})
	s.Require().NoError(err)
	s.Equal([]string{newest}, publicationIDs(bySearch))

	// поиск по заголовку
	bySearch, err = s.repo.Publications.List(s.ctx, models.PublicationFilter{Search: "ИГРЫ"})
	s.Require().NoError(err)
	s.Equal([]string{oldest}, publicationIDs(bySearch))

	combined, err := s.repo.Publications.List(s.ctx, models.PublicationFilter{
		Category: models.CategoryParents,
		Search:   "игры",
	})
	s.Require().NoError(err)
	s.Empty(combined)

	wildcard, err := s.repo.Publications.List(s.ctx, models.PublicationFilter{Search: "%"})
	s.Require().NoError(err)
	s.Empty(wildcard)
}

func publicationIDs(items []models.Publication) []string {
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}

func (s *RepositorySuite) TestPublications_UpdateDelete() {
	id := s.createPublication("Старое", "описание", models.CategoryArt, day(1))

	p, err := s.repo.Publications.Get(s.ctx, id)
	s.Require().NoError(err)

	title := "Новое"
	p.Apply(models.PublicationPatch{Title: &title})
	s.Require().NoError(s.repo.Publications.Update(s.ctx, p))

	got, err := s.repo.Publications.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Новое", got.Title)
	s.Equal("описание", got.Description)

	s.Require().NoError(s.repo.Publications.Delete(s.ctx, id))
	_, err = s.repo.Publications.Get(s.ctx, id)
	s.ErrorIs(err, storage.ErrNotFound)

	// повторное удаление не ошибка
	s.NoError(s.repo.Publications.Delete(s.ctx, id))
}

func (s *RepositorySuite) TestPublications_Missing() {
	for _, id := range []string{"999999", "not-an-id", ""} {
		_, err := s.repo.Publications.Get(s.ctx, id)
		s.ErrorIs(err, storage.ErrNotFound, id)

		err = s.repo.Publications.Update(s.ctx, models.Publication{ID: id, Title: "x", Date: day(1)})
		s.ErrorIs(err, storage.ErrNotFound, id)
	}
}

func (s *RepositorySuite) TestAlbums_Photos() {
	id, err := s.repo.Albums.Create(s.ctx, models.Album{Title: "Новый год", Cover: gofakeit.URL(), Date: day(1)})
	s.Require().NoError(err)

	album, err := s.repo.Albums.Get(s.ctx, id)
	s.Require().NoError(err)
	s.NotNil(album.Photos)
	s.Empty(album.Photos)

	first, err := s.repo.Albums.AddPhoto(s.ctx, id, "https://example.com/1.jpg")
	s.Require().NoError(err)
	s.Equal(id, first.AlbumID)
	s.NotEmpty(first.ID)

	_, err = s.repo.Albums.AddPhoto(s.ctx, id, "https://example.com/2.jpg")
	s.Require().NoError(err)

	album, err = s.repo.Albums.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Len(album.Photos, 2)
	s.Equal("https://example.com/1.jpg", album.Photos[0].URL)
	s.Equal("https://example.com/2.jpg", album.Photos[1].URL)

	_, err = s.repo.Albums.AddPhoto(s.ctx, "999999", "https://example.com/3.jpg")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *RepositorySuite) TestAlbums_ListAndReplacePhotos() {
	older, err := s.repo.Albums.Create(s.ctx, models.Album{
		Title:  "Осень",
		Date:   day(1),
		Photos: []models.Photo{{URL: "a.jpg"}, {URL: "b.jpg"}},
	})
	s.Require().NoError(err)

	newer, err := s.repo.Albums.Create(s.ctx, models.Album{Title: "Зима", Date: day(2)})
	s.Require().NoError(err)

	albums, err := s.repo.Albums.List(s.ctx, models.AlbumFilter{})
	s.Require().NoError(err)
	s.Require().Len(albums, 2)
	s.Equal(newer, albums[0].ID)
	s.Equal(older, albums[1].ID)
	s.Require().Len(albums[1].Photos, 2)
	for _, p := range albums[1].Photos {
		s.NotEmpty(p.ID)
		s.Equal(older, p.AlbumID)
	}

	album := albums[1]
	photos := []models.Photo{{URL: "c.jpg"}}
	album.Apply(models.AlbumPatch{Photos: &photos})
	s.Require().NoError(s.repo.Albums.Update(s.ctx, album))

	got, err := s.repo.Albums.Get(s.ctx, older)
	s.Require().NoError(err)
	s.Require().Len(got.Photos, 1)
	s.Equal("c.jpg", got.Photos[0].URL)
	s.NotEmpty(got.Photos[0].ID)
	s.Equal(older, got.Photos[0].AlbumID)
}

func (s *RepositorySuite) TestAlbums_DeleteRemovesPhotos() {
	albumID, err := s.repo.Albums.Create(s.ctx, models.Album{
		Title:  "Выпускной",
		Date:   day(3),
		Photos: []models.Photo{{URL: "a.jpg"}},
	})
	s.Require().NoError(err)

	_, err = s.repo.Albums.AddPhoto(s.ctx, albumID, "b.jpg")
	s.Require().NoError(err)
	s.Require().Equal(2, s.photosLeft(albumID))

	s.Require().NoError(s.repo.Albums.Delete(s.ctx, albumID))

	_, err = s.repo.Albums.Get(s.ctx, albumID)
	s.ErrorIs(err, storage.ErrNotFound)
	s.Zero(s.photosLeft(albumID))
}

func (s *RepositorySuite) TestAchievements() {
	for _, a := range []models.Achievement{
		{Title: "Лучший педагог", Year: 2022, Type: models.AchievementPersonal},
		{Title: "Конкурс методик", Year: 2024, Type: models.AchievementProfessional},
		{Title: "Благодарность", Year: 2023, Type: models.AchievementPersonal},
	} {
		_, err := s.repo.Achievements.Create(s.ctx, a)
		s.Require().NoError(err)
	}

	all, err := s.repo.Achievements.List(s.ctx, models.AchievementFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]int{2024, 2023, 2022}, []int{all[0].Year, all[1].Year, all[2].Year})

	personal, err := s.repo.Achievements.List(s.ctx, models.AchievementFilter{Type: models.AchievementPersonal})
	s.Require().NoError(err)
	s.Len(personal, 2)
}

func (s *RepositorySuite) TestPortfolio() {
	item := models.PortfolioItem{
		Title:        "Диплом",
		Organization: "Департамент образования",
		Category:     models.PortfolioDiploma,
		Date:         day(5),
	}
	item.SetImage("https://example.com/diploma.jpg")

	id, err := s.repo.Portfolio.Create(s.ctx, item)
	s.Require().NoError(err)

	_, err = s.repo.Portfolio.Create(s.ctx, models.PortfolioItem{
		Title:    "Сертификат",
		Category: models.PortfolioCertificate,
		Date:     day(6),
	})
	s.Require().NoError(err)

	got, err := s.repo.Portfolio.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("https://example.com/diploma.jpg", got.Image)
	s.Equal(got.Image, got.ImageURL)

	diplomas, err := s.repo.Portfolio.List(s.ctx, models.PortfolioFilter{Category: models.PortfolioDiploma})
	s.Require().NoError(err)
	s.Require().Len(diplomas, 1)
	s.Equal(id, diplomas[0].ID)
}

func (s *RepositorySuite) TestReviews() {
	id, err := s.repo.Reviews.Create(s.ctx, models.Review{
		Author: gofakeit.Name(),
		Text:   gofakeit.Sentence(10),
		Rating: 5,
		Status: models.ReviewPending,
		Date:   day(1),
	})
	s.Require().NoError(err)

	pending, err := s.repo.Reviews.List(s.ctx, models.ReviewFilter{Status: models.ReviewPending})
	s.Require().NoError(err)
	s.Len(pending, 1)

	s.Require().NoError(s.repo.Reviews.SetStatus(s.ctx, id, models.ReviewApproved))

	approved, err := s.repo.Reviews.List(s.ctx, models.ReviewFilter{Status: models.ReviewApproved})
	s.Require().NoError(err)
	s.Require().Len(approved, 1)
	s.Equal(id, approved[0].ID)

	likes, err := s.repo.Reviews.IncrementLikes(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(1, likes)

	likes, err = s.repo.Reviews.IncrementLikes(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(2, likes)

	s.ErrorIs(s.repo.Reviews.SetStatus(s.ctx, "999999", models.ReviewApproved), storage.ErrNotFound)
	_, err = s.repo.Reviews.IncrementLikes(s.ctx, "999999")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *RepositorySuite) TestMessages() {
	id, err := s.repo.Messages.Create(s.ctx, models.Message{
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Phone:   gofakeit.Phone(),
		Message: gofakeit.Sentence(6),
		Status:  models.MessageNew,
		Date:    day(2),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Messages.SetStatus(s.ctx, id, models.MessageRead))

	unread, err := s.repo.Messages.List(s.ctx, models.MessageFilter{Status: models.MessageNew})
	s.Require().NoError(err)
	s.Empty(unread)

	got, err := s.repo.Messages.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(models.MessageRead, got.Status)

	s.ErrorIs(s.repo.Messages.SetStatus(s.ctx, "999999", models.MessageRead), storage.ErrNotFound)
}

func (s *RepositorySuite) TestAudio_SortedByTitle() {
	for _, title := range []string{"Колыбельная", "Веселая зарядка", "Осенняя песенка"} {
		_, err := s.repo.Audio.Create(s.ctx, models.AudioTrack{Title: title, Duration: models.DefaultDuration})
		s.Require().NoError(err)
	}

	tracks, err := s.repo.Audio.List(s.ctx, models.AudioFilter{})
	s.Require().NoError(err)
	s.Require().Len(tracks, 3)
	s.Equal("Веселая зарядка", tracks[0].Title)
	s.Equal("Колыбельная", tracks[1].Title)
	s.Equal("Осенняя песенка", tracks[2].Title)
}

func (s *RepositorySuite) TestVideos_ConcurrentViews() {
	id, err := s.repo.Videos.Create(s.ctx, models.Video{
		Title:    "Праздник",
		Duration: models.DefaultDuration,
		Date:     day(1),
	})
	s.Require().NoError(err)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.Videos.IncrementViews(s.ctx, id)
			assert.NoError(s.T(), err)
		}()
	}
	wg.Wait()

	got, err := s.repo.Videos.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(n, got.Views)

	_, err = s.repo.Videos.IncrementViews(s.ctx, "999999")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *RepositorySuite) TestPages() {
	_, err := s.repo.Pages.Get(s.ctx, models.PageAbout)
	s.ErrorIs(err, storage.ErrNotFound)

	now := time.Now().UTC().Truncate(time.Second)
	page := models.Page{ID: models.PageAbout, Title: "Обо мне", Content: "текст", UpdatedAt: &now}
	s.Require().NoError(s.repo.Pages.Upsert(s.ctx, page))

	page.Title = "Обо мне (новое)"
	s.Require().NoError(s.repo.Pages.Upsert(s.ctx, page))

	got, err := s.repo.Pages.Get(s.ctx, models.PageAbout)
	s.Require().NoError(err)
	s.Equal("Обо мне (новое)", got.Title)
	s.Equal("текст", got.Content)
	s.Require().NotNil(got.UpdatedAt)
	s.True(now.Equal(*got.UpdatedAt))
}

func TestKVRepository_IDFormat(t *testing.T) {
	repo := repository.NewKVRepository(memory.New())

	id, err := repo.Publications.Create(context.Background(), models.Publication{Title: "x"})
	require.NoError(t, err)

	// <unix-millis>-<suffix>
	millis, _, ok := strings.Cut(id, "-")
	require.True(t, ok, id)
	_, err = strconv.ParseInt(millis, 10, 64)
	assert.NoError(t, err)
}
