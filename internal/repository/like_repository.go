package repository

import (
	"context"

	"github.com/faithbliss/backend/internal/domain"
)

type LikeRepository interface {
	// Create inserts the directed like. A duplicate ordered pair fails
	// with domain.ErrAlreadyLiked (unique constraint).
	Create(ctx context.Context, like *domain.Like) error
	GetByUsers(ctx context.Context, likerID, likedID string) (*domain.Like, error)
	// LikedUserIDs returns every user the given user has already liked;
	// discovery uses this as its exclusion set.
	LikedUserIDs(ctx context.Context, likerID string) ([]string, error)
	LikesReceived(ctx context.Context, likedID string, limit, offset int) ([]*domain.Like, error)
}
