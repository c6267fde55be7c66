package repository

import (
	"context"

	"github.com/faithbliss/backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	MarkRead(ctx context.Context, id string) error
	UnreadCount(ctx context.Context, receiverID string) (int, error)
	UnreadCountByMatch(ctx context.Context, matchID, receiverID string) (int, error)
	// MatchMessages pages through a match's messages in ascending
	// creation order.
	MatchMessages(ctx context.Context, matchID string, limit, offset int) ([]*domain.Message, error)
	LastMessage(ctx context.Context, matchID string) (*domain.Message, error)
}
