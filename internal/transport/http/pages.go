package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"music_portfolio/internal/transport/http/dto"
	"music_portfolio/internal/transport/http/dto/response"
)

// GetPage godoc
// @Summary Содержимое страницы
// @Description Для ещё не сохранённой страницы возвращается заготовка с картинкой по умолчанию.
// @Tags Страницы
// @Produce json
// @Param pageId path string true "Идентификатор страницы (home, about, ...)"
// @Success 200 {object} models.Page
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/pages/{pageId} [get]
func (r *Routers) GetPage(c echo.Context) error {
	const op = "http.routers.GetPage"

	log := r.opLog(op).With(slog.String("page_id", c.Param("pageId")))

	page, err := r.Pages.Get(c.Request().Context(), c.Param("pageId"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, page)
}

// UpdatePage godoc
// @Summary Сохранить страницу
// @Description Создаёт страницу, если её ещё нет; меняются только переданные поля.
// @Tags Страницы
// @Accept json
// @Produce json
// @Param pageId path string true "Идентификатор страницы"
// @Param request body dto.UpdatePageRequest true "Изменения"
// @Success 200 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/pages/{pageId} [put]
func (r *Routers) UpdatePage(c echo.Context) error {
	const op = "http.routers.UpdatePage"

	log := r.opLog(op).With(slog.String("page_id", c.Param("pageId")))

	req := new(dto.UpdatePageRequest)
	if err := c.Bind(req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	page, err := r.Pages.Update(c.Request().Context(), c.Param("pageId"), req.ToPatch())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.CreatedResponse{ID: page.ID, Message: "Page updated successfully"})
}
