package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/services"
	"music_portfolio/internal/transport/http/dto/request"
	"music_portfolio/internal/transport/http/dto/response"
)

// Login godoc
// @Summary Вход администратора
// @Description Сверяет пароль с настроенным. Сессия и токены не выдаются.
// @Tags Администрирование
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Пароль"
// @Success 200 {object} response.LoginResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.LoginResponse
// @Router /api/admin/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.opLog(op).With(slog.String("remote_ip", c.RealIP()))

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusUnauthorized, response.LoginResponse{Success: false, Message: "Invalid password"})
	}

	if err := r.Admin.Login(c.Request().Context(), req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn("admin login failed")
			return c.JSON(http.StatusUnauthorized, response.LoginResponse{Success: false, Message: "Invalid password"})
		}

		log.Error("admin login error", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.LoginResponse{Success: false, Message: "Server error during login"})
	}

	log.Info("admin logged in")

	return c.JSON(http.StatusOK, response.LoginResponse{Success: true, Message: "Login successful"})
}

// Stats godoc
// @Summary Сводка для панели администратора
// @Description reviews: отзывы на модерации, messages: непрочитанные сообщения, totalViews: сумма просмотров видео.
// @Tags Администрирование
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} response.ErrorResponse
// @Router /api/stats [get]
func (r *Routers) Stats(c echo.Context) error {
	const op = "http.routers.Stats"

	stats, err := r.Admin.Stats(c.Request().Context())
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, stats)
}

// SeedDemo godoc
// @Summary Заполнить пустое хранилище демонстрационными данными
// @Tags Администрирование
// @Produce json
// @Success 200 {object} response.SeedResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/admin/seed [post]
func (r *Routers) SeedDemo(c echo.Context) error {
	const op = "http.routers.SeedDemo"

	res, err := r.Seed.Seed(c.Request().Context())
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, response.SeedResponse{
		Seeded: res.Seeded,
		Counts: res.Counts,
	})
}
