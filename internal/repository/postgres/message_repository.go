package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	query := `
		INSERT INTO messages (id, match_id, sender_id, receiver_id, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING is_read, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		msg.ID, msg.MatchID, msg.SenderID, msg.ReceiverID, msg.Content,
	).Scan(&msg.IsRead, &msg.CreatedAt)
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var msg domain.Message
	query := `SELECT id, match_id, sender_id, receiver_id, content, is_read, created_at FROM messages WHERE id = $1`
	err := r.db.GetContext(ctx, &msg, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE messages SET is_read = true WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) UnreadCount(ctx context.Context, receiverID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = false`
	err := r.db.GetContext(ctx, &count, query, receiverID)
	return count, err
}

func (r *messageRepository) UnreadCountByMatch(ctx context.Context, matchID, receiverID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM messages WHERE match_id = $1 AND receiver_id = $2 AND is_read = false`
	err := r.db.GetContext(ctx, &count, query, matchID, receiverID)
	return count, err
}

func (r *messageRepository) MatchMessages(ctx context.Context, matchID string, limit, offset int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT id, match_id, sender_id, receiver_id, content, is_read, created_at FROM messages
		WHERE match_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &messages, query, matchID, limit, offset)
	return messages, err
}

func (r *messageRepository) LastMessage(ctx context.Context, matchID string) (*domain.Message, error) {
	var msg domain.Message
	query := `
		SELECT id, match_id, sender_id, receiver_id, content, is_read, created_at FROM messages
		WHERE match_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &msg, query, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}
