package discover_test

import (
	"context"
	"time"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockUserRepository) SetLastSeen(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) FindCandidates(ctx context.Context, filter *domain.CandidateFilter, excludeIDs []string, limit, offset int) ([]*domain.User, error) {
	args := m.Called(ctx, filter, excludeIDs, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) CountCandidates(ctx context.Context, filter *domain.CandidateFilter, excludeIDs []string) (int, error) {
	args := m.Called(ctx, filter, excludeIDs)
	return args.Int(0), args.Error(1)
}

type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) Create(ctx context.Context, prefs *domain.Preferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

func (m *MockPreferencesRepository) GetByUserID(ctx context.Context, userID string) (*domain.Preferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preferences), args.Error(1)
}

func (m *MockPreferencesRepository) Update(ctx context.Context, prefs *domain.Preferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) GetByUsers(ctx context.Context, likerID, likedID string) (*domain.Like, error) {
	args := m.Called(ctx, likerID, likedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Like), args.Error(1)
}

func (m *MockLikeRepository) LikedUserIDs(ctx context.Context, likerID string) ([]string, error) {
	args := m.Called(ctx, likerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLikeRepository) LikesReceived(ctx context.Context, likedID string, limit, offset int) ([]*domain.Like, error) {
	args := m.Called(ctx, likedID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Like), args.Error(1)
}

type MockPresenceCounter struct {
	mock.Mock
}

func (m *MockPresenceCounter) OnlineCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
