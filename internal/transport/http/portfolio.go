package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/transport/http/dto"
	"music_portfolio/internal/transport/http/dto/response"
)

// ListPortfolio godoc
// @Summary Дипломы, сертификаты и благодарности
// @Tags Портфолио
// @Produce json
// @Param category query string false "diploma, certificate или gratitude"
// @Success 200 {array} models.PortfolioItem
// @Failure 500 {object} response.ErrorResponse
// @Router /api/portfolio [get]
func (r *Routers) ListPortfolio(c echo.Context) error {
	const op = "http.routers.ListPortfolio"

	items, err := r.Portfolio.ListItems(c.Request().Context(), models.PortfolioFilter{
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, items)
}

// CreatePortfolioItem godoc
// @Summary Добавить документ в портфолио
// @Tags Портфолио
// @Accept json
// @Produce json
// @Param request body dto.CreatePortfolioRequest true "Документ"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/portfolio [post]
func (r *Routers) CreatePortfolioItem(c echo.Context) error {
	const op = "http.routers.CreatePortfolioItem"

	log := r.opLog(op)

	var req dto.CreatePortfolioRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	id, err := r.Portfolio.CreateItem(c.Request().Context(), req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: id, Message: "Portfolio item added"})
}

// UpdatePortfolioItem godoc
// @Summary Обновить документ портфолио
// @Tags Портфолио
// @Accept json
// @Produce json
// @Param id path string true "ID документа"
// @Param request body dto.UpdatePortfolioRequest true "Изменения"
// @Success 200 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/portfolio/{id} [put]
func (r *Routers) UpdatePortfolioItem(c echo.Context) error {
	const op = "http.routers.UpdatePortfolioItem"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	req := new(dto.UpdatePortfolioRequest)
	if err := c.Bind(req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	item, err := r.Portfolio.UpdateItem(c.Request().Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.CreatedResponse{ID: item.ID, Message: "Portfolio item updated"})
}

// DeletePortfolioItem godoc
// @Summary Удалить документ портфолио
// @Tags Портфолио
// @Produce json
// @Param id path string true "ID документа"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/portfolio/{id} [delete]
func (r *Routers) DeletePortfolioItem(c echo.Context) error {
	const op = "http.routers.DeletePortfolioItem"

	if err := r.Portfolio.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return done(c, "Portfolio item deleted")
}

// ListAchievements godoc
// @Summary Достижения
// @Description От последних лет к ранним.
// @Tags Портфолио
// @Produce json
// @Param type query string false "personal, professional или teaching"
// @Success 200 {array} models.Achievement
// @Failure 500 {object} response.ErrorResponse
// @Router /api/achievements [get]
func (r *Routers) ListAchievements(c echo.Context) error {
	const op = "http.routers.ListAchievements"

	items, err := r.Portfolio.ListAchievements(c.Request().Context(), models.AchievementFilter{
		Type: c.QueryParam("type"),
	})
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, items)
}

// CreateAchievement godoc
// @Summary Добавить достижение
// @Tags Портфолио
// @Accept json
// @Produce json
// @Param request body dto.CreateAchievementRequest true "Достижение"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/achievements [post]
func (r *Routers) CreateAchievement(c echo.Context) error {
	const op = "http.routers.CreateAchievement"

	log := r.opLog(op)

	var req dto.CreateAchievementRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	id, err := r.Portfolio.CreateAchievement(c.Request().Context(), req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: id, Message: "Achievement added"})
}

// DeleteAchievement godoc
// @Summary Удалить достижение
// @Tags Портфолио
// @Produce json
// @Param id path string true "ID достижения"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/achievements/{id} [delete]
func (r *Routers) DeleteAchievement(c echo.Context) error {
	const op = "http.routers.DeleteAchievement"

	if err := r.Portfolio.DeleteAchievement(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return done(c, "Achievement deleted")
}
