package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"music_portfolio/internal/domain/models"
)

type MessageRepo struct {
	pgBase
}

func NewMessageRepo(db *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pgBase: newPgBase(db, "messages")}
}

var messageColumns = []string{"id", "name", "email", "phone", "subject", "message", "status", "date"}

func scanMessage(row pgx.Row) (models.Message, error) {
	var (
		m  models.Message
		id int64
	)

	err := row.Scan(&id, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Status, &m.Date)
	if err != nil {
		return models.Message{}, err
	}

	m.ID = formatID(id)

	return m, nil
}

func (r *MessageRepo) List(ctx context.Context, filter models.MessageFilter) ([]models.Message, error) {
	const op = "repository.MessageRepo.List"

	builder := r.sb.Select(messageColumns...).From(r.table)

	if !noFilter(filter.Status) {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}

	return list(ctx, r.db, op, builder.OrderBy("date DESC", "id DESC"), scanMessage)
}

func (r *MessageRepo) Get(ctx context.Context, id string) (models.Message, error) {
	const op = "repository.MessageRepo.Get"

	return getOne(ctx, r.pgBase, op, id, messageColumns, scanMessage)
}

func (r *MessageRepo) Create(ctx context.Context, m models.Message) (string, error) {
	const op = "repository.MessageRepo.Create"

	return r.insert(ctx, op,
		[]string{"name", "email", "phone", "subject", "message", "status", "date"},
		m.Name, m.Email, m.Phone, m.Subject, m.Message, m.Status, m.Date,
	)
}

func (r *MessageRepo) Update(ctx context.Context, m models.Message) error {
	const op = "repository.MessageRepo.Update"

	return r.update(ctx, op, m.ID, map[string]interface{}{
		"name":    m.Name,
		"email":   m.Email,
		"phone":   m.Phone,
		"subject": m.Subject,
		"message": m.Message,
		"status":  m.Status,
		"date":    m.Date,
	})
}

func (r *MessageRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.MessageRepo.Delete"

	return r.delete(ctx, op, id)
}

func (r *MessageRepo) SetStatus(ctx context.Context, id, status string) error {
	const op = "repository.MessageRepo.SetStatus"

	return r.update(ctx, op, id, map[string]interface{}{"status": status})
}
