package repository

import (
	"context"

	"github.com/faithbliss/backend/internal/domain"
)

type PreferencesRepository interface {
	Create(ctx context.Context, prefs *domain.Preferences) error
	GetByUserID(ctx context.Context, userID string) (*domain.Preferences, error)
	Update(ctx context.Context, prefs *domain.Preferences) error
}
