package repository

import (
	"context"
	"time"

	"github.com/faithbliss/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetActive(ctx context.Context, id string, active bool) error
	SetLastSeen(ctx context.Context, id string, at time.Time) error

	// FindCandidates returns discoverable users (active + onboarded)
	// matching the filter, excluding the listed ids, ordered by creation
	// time descending with id as the tie-break.
	FindCandidates(ctx context.Context, filter *domain.CandidateFilter, excludeIDs []string, limit, offset int) ([]*domain.User, error)
	CountCandidates(ctx context.Context, filter *domain.CandidateFilter, excludeIDs []string) (int, error)
}
