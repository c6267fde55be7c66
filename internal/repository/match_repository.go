package repository

import (
	"context"

	"github.com/faithbliss/backend/internal/domain"
)

type MatchRepository interface {
	// Create inserts a match for the normalized pair. Losing the
	// mutual-like race fails with domain.ErrMatchAlreadyExists rather
	// than double-inserting.
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Match, error)
	// UserMatches returns the user's matches ordered by last update
	// descending.
	UserMatches(ctx context.Context, userID string) ([]*domain.Match, error)
	// Touch bumps the match's updated_at, keeping conversation ordering
	// in step with message traffic.
	Touch(ctx context.Context, id string) error
}
