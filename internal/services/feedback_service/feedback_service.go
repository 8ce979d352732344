package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/repository"
	"music_portfolio/internal/services"
)

const (
	minRating     = 1
	maxRating     = 5
	defaultRating = 5
)

// FeedbackService отзывы и сообщения посетителей
type FeedbackService struct {
	log      *slog.Logger
	reviews  repository.ReviewRepository
	messages repository.MessageRepository
}

func NewFeedbackService(
	log *slog.Logger,
	reviews repository.ReviewRepository,
	messages repository.MessageRepository,
) *FeedbackService {
	return &FeedbackService{
		log:      log,
		reviews:  reviews,
		messages: messages,
	}
}

func (s *FeedbackService) ListReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	const op = "feedback_service.ListReviews"

	items, err := s.reviews.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list reviews", slog.String("op", op), sl.Err(err))
		return nil, services.Wrap(op, err)
	}

	return items, nil
}

// CreateReview новый отзыв всегда ждёт модерации, что бы ни прислал клиент.
func (s *FeedbackService) CreateReview(ctx context.Context, r models.Review) (string, error) {
	const op = "feedback_service.CreateReview"
	log := s.log.With(slog.String("op", op))

	if strings.TrimSpace(r.Author) == "" || strings.TrimSpace(r.Text) == "" {
		return "", services.Invalid(op, "author and text are required")
	}

	if r.Rating == 0 {
		r.Rating = defaultRating
	}
	if r.Rating < minRating || r.Rating > maxRating {
		return "", services.Invalid(op, "rating must be between 1 and 5")
	}

	r.Status = models.ReviewPending
	r.Likes = 0
	r.Date = time.Now().UTC()

	id, err := s.reviews.Create(ctx, r)
	if err != nil {
		log.Error("failed to create review", sl.Err(err))
		return "", services.Wrap(op, err)
	}

	log.Info("review created", slog.String("id", id))
	return id, nil
}

// ApproveReview повторное одобрение ничего не меняет
func (s *FeedbackService) ApproveReview(ctx context.Context, id string) error {
	const op = "feedback_service.ApproveReview"
	log := s.log.With(slog.String("op", op), slog.String("id", id))

	if err := s.reviews.SetStatus(ctx, id, models.ReviewApproved); err != nil {
		log.Error("failed to approve review", sl.Err(err))
		return services.Wrap(op, err)
	}

	log.Info("review approved")
	return nil
}

func (s *FeedbackService) LikeReview(ctx context.Context, id string) (int, error) {
	const op = "feedback_service.LikeReview"

	likes, err := s.reviews.IncrementLikes(ctx, id)
	if err != nil {
		s.log.Error("failed to like review", slog.String("op", op), slog.String("id", id), sl.Err(err))
		return 0, services.Wrap(op, err)
	}

	return likes, nil
}

func (s *FeedbackService) DeleteReview(ctx context.Context, id string) error {
	const op = "feedback_service.DeleteReview"

	if err := s.reviews.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete review", slog.String("op", op), sl.Err(err))
		return services.Wrap(op, err)
	}

	return nil
}

func (s *FeedbackService) ListMessages(ctx context.Context, filter models.MessageFilter) ([]models.Message, error) {
	const op = "feedback_service.ListMessages"

	items, err := s.messages.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list messages", slog.String("op", op), sl.Err(err))
		return nil, services.Wrap(op, err)
	}

	return items, nil
}

func (s *FeedbackService) CreateMessage(ctx context.Context, m models.Message) (string, error) {
	const op = "feedback_service.CreateMessage"
	log := s.log.With(slog.String("op", op))

	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return "", services.Invalid(op, "name, email and message are required")
	}

	m.Status = models.MessageNew
	m.Date = time.Now().UTC()

	id, err := s.messages.Create(ctx, m)
	if err != nil {
		log.Error("failed to create message", sl.Err(err))
		return "", services.Wrap(op, err)
	}

	log.Info("message received", slog.String("id", id))
	return id, nil
}

func (s *FeedbackService) MarkMessageRead(ctx context.Context, id string) error {
	const op = "feedback_service.MarkMessageRead"

	if err := s.messages.SetStatus(ctx, id, models.MessageRead); err != nil {
		s.log.Error("failed to mark message read", slog.String("op", op), slog.String("id", id), sl.Err(err))
		return services.Wrap(op, err)
	}

	return nil
}

func (s *FeedbackService) DeleteMessage(ctx context.Context, id string) error {
	const op = "feedback_service.DeleteMessage"

	if err := s.messages.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete message", slog.String("op", op), sl.Err(err))
		return services.Wrap(op, err)
	}

	return nil
}
