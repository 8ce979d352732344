package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/transport/http/dto"
	"music_portfolio/internal/transport/http/dto/response"
)

// ListReviews godoc
// @Summary Отзывы
// @Tags Отзывы
// @Produce json
// @Param status query string false "pending или approved"
// @Success 200 {array} models.Review
// @Failure 500 {object} response.ErrorResponse
// @Router /api/reviews [get]
func (r *Routers) ListReviews(c echo.Context) error {
	const op = "http.routers.ListReviews"

	reviews, err := r.Feedback.ListReviews(c.Request().Context(), models.ReviewFilter{
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary Оставить отзыв
// @Description Отзыв попадает на модерацию со статусом pending.
// @Tags Отзывы
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Отзыв"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/reviews [post]
func (r *Routers) CreateReview(c echo.Context) error {
	const op = "http.routers.CreateReview"

	log := r.opLog(op)

	var req dto.CreateReviewRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	id, err := r.Feedback.CreateReview(c.Request().Context(), req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: id, Message: "Review sent for moderation"})
}

// ApproveReview godoc
// @Summary Одобрить отзыв
// @Tags Отзывы
// @Produce json
// @Param id path string true "ID отзыва"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/reviews/{id}/approve [put]
func (r *Routers) ApproveReview(c echo.Context) error {
	const op = "http.routers.ApproveReview"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	if err := r.Feedback.ApproveReview(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, log, err)
	}

	return done(c, "Review approved")
}

// LikeReview godoc
// @Summary Лайк отзыву
// @Tags Отзывы
// @Produce json
// @Param id path string true "ID отзыва"
// @Success 200 {object} response.CounterResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/reviews/{id}/like [put]
func (r *Routers) LikeReview(c echo.Context) error {
	const op = "http.routers.LikeReview"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	likes, err := r.Feedback.LikeReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.CounterResponse{Status: "success", Message: "Like added", Count: likes})
}

// DeleteReview godoc
// @Summary Удалить отзыв
// @Tags Отзывы
// @Produce json
// @Param id path string true "ID отзыва"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/reviews/{id} [delete]
func (r *Routers) DeleteReview(c echo.Context) error {
	const op = "http.routers.DeleteReview"

	if err := r.Feedback.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return done(c, "Review deleted")
}

// ListMessages godoc
// @Summary Сообщения из формы обратной связи
// @Tags Сообщения
// @Produce json
// @Param status query string false "new или read"
// @Success 200 {array} models.Message
// @Failure 500 {object} response.ErrorResponse
// @Router /api/messages [get]
func (r *Routers) ListMessages(c echo.Context) error {
	const op = "http.routers.ListMessages"

	messages, err := r.Feedback.ListMessages(c.Request().Context(), models.MessageFilter{
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return c.JSON(http.StatusOK, messages)
}

// CreateMessage godoc
// @Summary Отправить сообщение
// @Tags Сообщения
// @Accept json
// @Produce json
// @Param request body dto.CreateMessageRequest true "Сообщение"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/messages [post]
func (r *Routers) CreateMessage(c echo.Context) error {
	const op = "http.routers.CreateMessage"

	log := r.opLog(op)

	var req dto.CreateMessageRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", slog.String("error", err.Error()))
		return badRequest(c, nil)
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}

	id, err := r.Feedback.CreateMessage(c.Request().Context(), req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.CreatedResponse{ID: id, Message: "Message sent"})
}

// MarkMessageRead godoc
// @Summary Отметить сообщение прочитанным
// @Tags Сообщения
// @Produce json
// @Param id path string true "ID сообщения"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/messages/{id}/read [put]
func (r *Routers) MarkMessageRead(c echo.Context) error {
	const op = "http.routers.MarkMessageRead"

	log := r.opLog(op).With(slog.String("id", c.Param("id")))

	if err := r.Feedback.MarkMessageRead(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, log, err)
	}

	return done(c, "Message marked as read")
}

// DeleteMessage godoc
// @Summary Удалить сообщение
// @Tags Сообщения
// @Produce json
// @Param id path string true "ID сообщения"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/messages/{id} [delete]
func (r *Routers) DeleteMessage(c echo.Context) error {
	const op = "http.routers.DeleteMessage"

	if err := r.Feedback.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return r.fail(c, r.opLog(op), err)
	}

	return done(c, "Message deleted")
}
