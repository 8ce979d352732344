package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/transport/http/dto"
	"music_portfolio/internal/transport/http/dto/response"
)

// ListAudio godoc
// @Summary Аудиозаписи
// @Description Отсортированы по названию.
// @Tags Медиа
// @Produce json
// @Param category query string false "Категория"
// @Success 200 {array} models.AudioTrack
// @Failure 500 {object} response.ErrorResponse
// @Router /api/audio [get]
func (r *Routers) ListAudio(c echo.Context) error {
	const op = "http.routers.ListAudio"

	tracks, err := r.Media.ListAudio(c.Request().Context(), models.AudioFilter{
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, tracks)
}

// CreateAudio godoc
// @Summary Добавить аудиозапись
// @Tags Медиа
// @Accept json
// @Produce json
// @Param request body dto.CreateAudioRequest true "Трек"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/audio [post]
func (r *Routers) CreateAudio(c echo.Context) error {
	const op = "http.routers.CreateAudio"

	log := r.opLog(op)

	var req dto.CreateAudioRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	id, err := r.Media.CreateAudio(c.Request().Context(), req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: id, Message: "Audio track added"})
}

// DeleteAudio godoc
// @Summary Удалить аудиозапись
// @Tags Медиа
// @Produce json
// @Param id path string true "ID трека"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/audio/{id} [delete]
func (r *Routers) DeleteAudio(c echo.Context) error {
	const op = "http.routers.DeleteAudio"

	if err := r.Media.DeleteAudio(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return done(c, "Audio track deleted")
}

// ListVideos godoc
// @Summary Видео
// @Tags Медиа
// @Produce json
// @Param category query string false "Категория"
// @Success 200 {array} models.Video
// @Failure 500 {object} response.ErrorResponse
// @Router /api/videos [get]
func (r *Routers) ListVideos(c echo.Context) error {
	const op = "http.routers.ListVideos"

	videos, err := r.Media.ListVideos(c.Request().Context(), models.VideoFilter{
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, videos)
}

// CreateVideo godoc
// @Summary Добавить видео
// @Tags Медиа
// @Accept json
// @Produce json
// @Param request body dto.CreateVideoRequest true "Видео"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/videos [post]
func (r *Routers) CreateVideo(c echo.Context) error {
	const op = "http.routers.CreateVideo"

	log := r.opLog(op)

	var req dto.CreateVideoRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	id, err := r.Media.CreateVideo(c.Request().Context(), req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: id, Message: "Video added"})
}

// ViewVideo godoc
// @Summary Засчитать просмотр
// @Tags Медиа
// @Produce json
// @Param id path string true "ID видео"
// @Success 200 {object} response.CounterResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/videos/{id}/view [put]
func (r *Routers) ViewVideo(c echo.Context) error {
	const op = "http.routers.ViewVideo"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	views, err := r.Media.ViewVideo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.CounterResponse{Status: "success", Message: "View counted", Count: views})
}

// DeleteVideo godoc
// @Summary Удалить видео
// @Tags Медиа
// @Produce json
// @Param id path string true "ID видео"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/videos/{id} [delete]
func (r *Routers) DeleteVideo(c echo.Context) error {
	const op = "http.routers.DeleteVideo"

	if err := r.Media.DeleteVideo(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return done(c, "Video deleted")
}

// Upload godoc
// @Summary Загрузка файла
// @Description Изображения, документы, аудио и видео. Имя файла генерируется сервером.
// @Tags Медиа
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл (макс. 50MB)"
// @Success 201 {object} response.UploadResponse
// @Failure 400 {object} response.ErrorResponse "Файл не передан"
// @Failure 413 {object} response.ErrorResponse "Превышен максимальный размер файла"
// @Failure 415 {object} response.ErrorResponse "Неподдерживаемый тип файла"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/upload [post]
func (r *Routers) Upload(c echo.Context) error {
	const op = "http.routers.Upload"

	log := r.opLog(op)

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", slog.String("error", err.Error()))
		resp := response.ErrInvalidRequestFormat
		resp.Details = "File is required"
		return c.JSON(http.StatusBadRequest, resp)
	}

	log.Debug("got file for upload",
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
		slog.String("mime_type", file.Header.Get("Content-Type")))

	res, err := r.Media.Upload(c.Request().Context(), file)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.UploadResponse{
		URL:     res.URL,
		Path:    res.Path,
		Message: "File uploaded",
	})
}

// FileURL godoc
// @Summary Публичная ссылка на загруженный файл
// @Tags Медиа
// @Produce json
// @Param path path string true "Имя файла из ответа /api/upload"
// @Success 200 {object} response.FileURLResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/files/{path} [get]
func (r *Routers) FileURL(c echo.Context) error {
	const op = "http.routers.FileURL"

	log := r.opLog(op).With(slog.String("path", c.Param("path")))

	url, err := r.Media.FileURL(c.Request().Context(), c.Param("path"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.FileURLResponse{URL: url})
}
