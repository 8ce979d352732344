package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"music_portfolio/internal/transport/http/dto"
	"music_portfolio/internal/transport/http/dto/response"
)

// ListAlbums godoc
// @Summary Список альбомов
// @Description Альбомы с фотографиями, от новых к старым.
// @Tags Галерея
// @Produce json
// @Success 200 {array} models.Album
// @Failure 500 {object} response.ErrorResponse
// @Router /api/albums [get]
func (r *Routers) ListAlbums(c echo.Context) error {
	const op = "http.routers.ListAlbums"

	albums, err := r.Gallery.ListAlbums(c.Request().Context())
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, albums)
}

// CreateAlbum godoc
// @Summary Создать альбом
// @Tags Галерея
// @Accept json
// @Produce json
// @Param request body dto.CreateAlbumRequest true "Альбом"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/albums [post]
func (r *Routers) CreateAlbum(c echo.Context) error {
	const op = "http.routers.CreateAlbum"

	log := r.opLog(op)

	var req dto.CreateAlbumRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	id, err := r.Gallery.CreateAlbum(c.Request().Context(), req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: id, Message: "Album created"})
}

// UpdateAlbum godoc
// @Summary Обновить альбом
// @Description Меняются только переданные поля; photos заменяет весь набор фотографий.
// @Tags Галерея
// @Accept json
// @Produce json
// @Param id path string true "ID альбома"
// @Param request body dto.UpdateAlbumRequest true "Изменения"
// @Success 200 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/albums/{id} [put]
func (r *Routers) UpdateAlbum(c echo.Context) error {
	const op = "http.routers.UpdateAlbum"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	req := new(dto.UpdateAlbumRequest)
	if err := c.Bind(req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	album, err := r.Gallery.UpdateAlbum(c.Request().Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.CreatedResponse{ID: album.ID, Message: "Album updated"})
}

// DeleteAlbum godoc
// @Summary Удалить альбом вместе с фотографиями
// @Tags Галерея
// @Produce json
// @Param id path string true "ID альбома"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/albums/{id} [delete]
func (r *Routers) DeleteAlbum(c echo.Context) error {
	const op = "http.routers.DeleteAlbum"

	if err := r.Gallery.DeleteAlbum(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return done(c, "Album deleted")
}

// AddPhoto godoc
// @Summary Добавить фото в альбом
// @Tags Галерея
// @Accept json
// @Produce json
// @Param id path string true "ID альбома"
// @Param request body dto.AddPhotoRequest true "Ссылка на фото"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/albums/{id}/photos [post]
func (r *Routers) AddPhoto(c echo.Context) error {
	const op = "http.routers.AddPhoto"

	log := r.opLog(op).With(slog.String("album_id", c.Param("id")))

	var req dto.AddPhotoRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	photo, err := r.Gallery.AddPhoto(c.Request().Context(), c.Param("id"), req.URL)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: photo.ID, Message: "Photo added"})
}
