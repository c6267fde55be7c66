package repository

import (
	"context"

	"github.com/faithbliss/backend/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, refreshToken string) error
	DeleteByUser(ctx context.Context, userID string) error
}
