package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/services"
	media "music_portfolio/internal/services/media_service"
	seed "music_portfolio/internal/services/seed_service"
	"music_portfolio/internal/storage"
	"music_portfolio/internal/storage/filestorage"
	"music_portfolio/internal/transport/http/dto/response"
)

type PublicationService interface {
	List(ctx context.Context, filter models.PublicationFilter) ([]models.Publication, error)
	Get(ctx context.Context, id string) (models.Publication, error)
	Create(ctx context.Context, p models.Publication) (string, error)
	Update(ctx context.Context, id string, patch models.PublicationPatch) (models.Publication, error)
	Delete(ctx context.Context, id string) error
}

type GalleryService interface {
	ListAlbums(ctx context.Context) ([]models.Album, error)
	CreateAlbum(ctx context.Context, album models.Album) (string, error)
	UpdateAlbum(ctx context.Context, id string, patch models.AlbumPatch) (models.Album, error)
	DeleteAlbum(ctx context.Context, id string) error
	AddPhoto(ctx context.Context, albumID, url string) (models.Photo, error)
}

type PortfolioService interface {
	ListItems(ctx context.Context, filter models.PortfolioFilter) ([]models.PortfolioItem, error)
	CreateItem(ctx context.Context, item models.PortfolioItem) (string, error)
	UpdateItem(ctx context.Context, id string, patch models.PortfolioPatch) (models.PortfolioItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListAchievements(ctx context.Context, filter models.AchievementFilter) ([]models.Achievement, error)
	CreateAchievement(ctx context.Context, a models.Achievement) (string, error)
	DeleteAchievement(ctx context.Context, id string) error
}

type FeedbackService interface {
	ListReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
	CreateReview(ctx context.Context, r models.Review) (string, error)
	ApproveReview(ctx context.Context, id string) error
	LikeReview(ctx context.Context, id string) (int, error)
	DeleteReview(ctx context.Context, id string) error
	ListMessages(ctx context.Context, filter models.MessageFilter) ([]models.Message, error)
	CreateMessage(ctx context.Context, m models.Message) (string, error)
	MarkMessageRead(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error
}

type MediaService interface {
	ListAudio(ctx context.Context, filter models.AudioFilter) ([]models.AudioTrack, error)
	CreateAudio(ctx context.Context, track models.AudioTrack) (string, error)
	DeleteAudio(ctx context.Context, id string) error
	ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error)
	CreateVideo(ctx context.Context, v models.Video) (string, error)
	ViewVideo(ctx context.Context, id string) (int, error)
	DeleteVideo(ctx context.Context, id string) error
	Upload(ctx context.Context, file *multipart.FileHeader) (media.UploadResult, error)
	FileURL(ctx context.Context, path string) (string, error)
}

type PageService interface {
	Get(ctx context.Context, id string) (models.Page, error)
	Update(ctx context.Context, id string, patch models.PagePatch) (models.Page, error)
}

type AdminService interface {
	Login(ctx context.Context, password string) error
	Stats(ctx context.Context) (models.Stats, error)
}

type SeedService interface {
	Seed(ctx context.Context) (seed.Result, error)
}

// Services набор зависимостей обработчиков
type Services struct {
	Publications PublicationService
	Gallery      GalleryService
	Portfolio    PortfolioService
	Feedback     FeedbackService
	Media        MediaService
	Pages        PageService
	Admin        AdminService
	Seed         SeedService
}

type Routers struct {
	log *slog.Logger
	Services
}

func NewRouter(log *slog.Logger, s Services) *Routers {
	return &Routers{
		log:      log,
		Services: s,
	}
}

// Register вешает все обработчики API на группу /api
func (r *Routers) Register(api *echo.Group) {
	api.GET("/publications", r.ListPublications)
	api.POST("/publications", r.CreatePublication)
	api.GET("/publications/:id", r.GetPublication)
	api.PUT("/publications/:id", r.UpdatePublication)
	api.DELETE("/publications/:id", r.DeletePublication)

	api.GET("/albums", r.ListAlbums)
	api.POST("/albums", r.CreateAlbum)
	api.PUT("/albums/:id", r.UpdateAlbum)
	api.DELETE("/albums/:id", r.DeleteAlbum)
	api.POST("/albums/:id/photos", r.AddPhoto)

	api.GET("/achievements", r.ListAchievements)
	api.POST("/achievements", r.CreateAchievement)
	api.DELETE("/achievements/:id", r.DeleteAchievement)

	api.GET("/portfolio", r.ListPortfolio)
	api.POST("/portfolio", r.CreatePortfolioItem)
	api.PUT("/portfolio/:id", r.UpdatePortfolioItem)
	api.DELETE("/portfolio/:id", r.DeletePortfolioItem)

	api.GET("/reviews", r.ListReviews)
	api.POST("/reviews", r.CreateReview)
	api.PUT("/reviews/:id/approve", r.ApproveReview)
	api.PUT("/reviews/:id/like", r.LikeReview)
	api.DELETE("/reviews/:id", r.DeleteReview)

	api.GET("/messages", r.ListMessages)
	api.POST("/messages", r.CreateMessage)
	api.PUT("/messages/:id/read", r.MarkMessageRead)
	api.DELETE("/messages/:id", r.DeleteMessage)

	api.GET("/audio", r.ListAudio)
	api.POST("/audio", r.CreateAudio)
	api.DELETE("/audio/:id", r.DeleteAudio)

	api.GET("/videos", r.ListVideos)
	api.POST("/videos", r.CreateVideo)
	api.PUT("/videos/:id/view", r.ViewVideo)
	api.DELETE("/videos/:id", r.DeleteVideo)

	api.GET("/pages/:pageId", r.GetPage)
	api.PUT("/pages/:pageId", r.UpdatePage)

	api.POST("/admin/login", r.Login)
	api.POST("/admin/seed", r.SeedDemo)
	api.GET("/stats", r.Stats)

	api.POST("/upload", r.Upload)
	api.GET("/files/:path", r.FileURL)
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func badRequest(c echo.Context, err error) error {
	resp := response.ErrInvalidRequestFormat
	if err != nil {
		resp.Details = err.Error()
	}
	return c.JSON(http.StatusBadRequest, resp)
}

// fail переводит ошибку сервиса в HTTP-ответ
func (r *Routers) fail(c echo.Context, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, filestorage.ErrInvalidName):
		log.Warn("invalid input", sl.Err(err))
		return badRequest(c, err)
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrFileNotFound):
		log.Warn("not found", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, storage.ErrFileTooLarge):
		log.Warn("file too large", sl.Err(err))
		return c.JSON(http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
	case errors.Is(err, storage.ErrInvalidFileType):
		log.Warn("file type not allowed", sl.Err(err))
		return c.JSON(http.StatusUnsupportedMediaType, response.ErrUnsupportedFileType)
	default:
		log.Error("request failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
}

func (r *Routers) opLog(op string) *slog.Logger {
	return r.log.With(slog.String("op", op))
}

func done(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(message))
}
