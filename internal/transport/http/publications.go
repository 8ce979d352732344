package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/transport/http/dto"
	"music_portfolio/internal/transport/http/dto/response"
)

// ListPublications godoc
// @Summary Список публикаций
// @Description Публикации от новых к старым. Фильтр по категории и поиск по названию и описанию.
// @Tags Публикации
// @Produce json
// @Param category query string false "Категория (all = без фильтра)"
// @Param search query string false "Подстрока для поиска без учёта регистра"
// @Success 200 {array} models.Publication
// @Failure 500 {object} response.ErrorResponse
// @Router /api/publications [get]
func (r *Routers) ListPublications(c echo.Context) error {
	const op = "http.routers.ListPublications"

	log := r.opLog(op)

	filter := models.PublicationFilter{
		Category: c.QueryParam("category"),
		Search:   strings.TrimSpace(c.QueryParam("search")),
	}

	items, err := r.Publications.List(c.Request().Context(), filter)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, items)
}

// GetPublication godoc
// @Summary Получить публикацию
// @Tags Публикации
// @Produce json
// @Param id path string true "ID публикации"
// @Success 200 {object} models.Publication
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/publications/{id} [get]
func (r *Routers) GetPublication(c echo.Context) error {
	const op = "http.routers.GetPublication"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	p, err := r.Publications.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, p)
}

// CreatePublication godoc
// @Summary Создать публикацию
// @Description Дата по умолчанию: текущий момент; image и cover_image всегда совпадают.
// @Tags Публикации
// @Accept json
// @Produce json
// @Param request body dto.CreatePublicationRequest true "Публикация"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/publications [post]
func (r *Routers) CreatePublication(c echo.Context) error {
	const op = "http.routers.CreatePublication"

	log := r.opLog(op)

	var req dto.CreatePublicationRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", slog.String("error", err.Error()))
		return badRequest(c, err)
	}

	id, err := r.Publications.Create(c.Request().Context(), req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: id, Message: "Publication created"})
}

// UpdatePublication godoc
// @Summary Обновить публикацию
// @Description Меняются только переданные поля.
// @Tags Публикации
// @Accept json
// @Produce json
// @Param id path string true "ID публикации"
// @Param request body dto.UpdatePublicationRequest true "Изменения"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/publications/{id} [put]
func (r *Routers) UpdatePublication(c echo.Context) error {
	const op = "http.routers.UpdatePublication"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	req := new(dto.UpdatePublicationRequest)
	if err := c.Bind(req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", slog.String("error", err.Error()))
		return badRequest(c, err)
	}

	if _, err := r.Publications.Update(c.Request().Context(), c.Param("id"), req.ToPatch()); err != nil {
		return r.fail(c, log, err)
	}

	return done(c, "Publication updated")
}

// DeletePublication godoc
// @Summary Удалить публикацию
// @Tags Публикации
// @Produce json
// @Param id path string true "ID публикации"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/publications/{id} [delete]
func (r *Routers) DeletePublication(c echo.Context) error {
	const op = "http.routers.DeletePublication"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	if err := r.Publications.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, log, err)
	}

	return done(c, "Publication deleted")
}
