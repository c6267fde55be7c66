package discover_test

import (
	"context"
	"testing"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/usecase/discover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestUseCase() (*discover.DiscoverUseCase, *MockUserRepository, *MockPreferencesRepository, *MockLikeRepository, *MockPresenceCounter) {
	userRepo := new(MockUserRepository)
	prefsRepo := new(MockPreferencesRepository)
	likeRepo := new(MockLikeRepository)
	presence := new(MockPresenceCounter)
	uc := discover.NewDiscoverUseCase(userRepo, prefsRepo, likeRepo, presence, zap.NewNop())
	return uc, userRepo, prefsRepo, likeRepo, presence
}

func strictPrefs() *domain.Preferences {
	gender := domain.GenderFemale
	minAge, maxAge := 22, 35
	return &domain.Preferences{
		UserID:                "requester",
		PreferredGender:       &gender,
		PreferredDenomination: []domain.Denomination{domain.DenominationBaptist},
		MinAge:                &minAge,
		MaxAge:                &maxAge,
	}
}

func candidates(ids ...string) []*domain.User {
	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, &domain.User{ID: id, Name: id, Age: 25})
	}
	return users
}

func TestGetCandidates_AppliesStoredPreferences(t *testing.T) {
	uc, userRepo, prefsRepo, likeRepo, _ := newTestUseCase()
	prefsRepo.On("GetByUserID", mock.Anything, "requester").Return(strictPrefs(), nil)
	likeRepo.On("LikedUserIDs", mock.Anything, "requester").Return([]string{"liked-1"}, nil)
	userRepo.On("FindCandidates", mock.Anything,
		mock.MatchedBy(func(f *domain.CandidateFilter) bool {
			return f.Gender != nil && *f.Gender == domain.GenderFemale &&
				len(f.Denominations) == 1 && *f.MinAge == 22 && *f.MaxAge == 35
		}),
		[]string{"liked-1", "requester"}, 20, 0,
	).Return(candidates("cand-1", "cand-2"), nil)

	cards, err := uc.GetCandidates(context.Background(), "requester", 1, 20)

	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, "cand-1", cards[0].ID)
}

func TestGetCandidates_NoPreferences(t *testing.T) {
	uc, _, prefsRepo, _, _ := newTestUseCase()
	prefsRepo.On("GetByUserID", mock.Anything, "requester").Return(nil, domain.ErrPreferencesNotFound)

	cards, err := uc.GetCandidates(context.Background(), "requester", 1, 20)

	assert.ErrorIs(t, err, domain.ErrPreferencesNotFound)
	assert.Nil(t, cards)
}

func TestGetCandidates_RelaxesWhenStrictEmpty(t *testing.T) {
	uc, userRepo, prefsRepo, likeRepo, _ := newTestUseCase()
	prefsRepo.On("GetByUserID", mock.Anything, "requester").Return(strictPrefs(), nil)
	likeRepo.On("LikedUserIDs", mock.Anything, "requester").Return([]string{}, nil)

	userRepo.On("FindCandidates", mock.Anything,
		mock.MatchedBy(func(f *domain.CandidateFilter) bool { return !f.Empty() }),
		mock.Anything, 20, 0,
	).Return([]*domain.User{}, nil).Once()
	userRepo.On("FindCandidates", mock.Anything,
		mock.MatchedBy(func(f *domain.CandidateFilter) bool { return f.Empty() }),
		mock.Anything, 20, 0,
	).Return(candidates("fallback-1"), nil).Once()

	cards, err := uc.GetCandidates(context.Background(), "requester", 1, 20)

	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, "fallback-1", cards[0].ID)
	userRepo.AssertExpectations(t)
}

func TestGetCandidates_NoRelaxWhenFilterAlreadyEmpty(t *testing.T) {
	uc, userRepo, prefsRepo, likeRepo, _ := newTestUseCase()
	prefsRepo.On("GetByUserID", mock.Anything, "requester").Return(&domain.Preferences{UserID: "requester"}, nil)
	likeRepo.On("LikedUserIDs", mock.Anything, "requester").Return([]string{}, nil)
	userRepo.On("FindCandidates", mock.Anything, mock.Anything, mock.Anything, 20, 0).
		Return([]*domain.User{}, nil).Once()

	cards, err := uc.GetCandidates(context.Background(), "requester", 1, 20)

	assert.NoError(t, err)
	assert.Empty(t, cards)
	userRepo.AssertNumberOfCalls(t, "FindCandidates", 1)
}

func TestSearch_DoesNotTouchStoredPreferences(t *testing.T) {
	uc, userRepo, prefsRepo, likeRepo, _ := newTestUseCase()
	likeRepo.On("LikedUserIDs", mock.Anything, "requester").Return([]string{}, nil)
	minAge := 30
	userRepo.On("FindCandidates", mock.Anything,
		mock.MatchedBy(func(f *domain.CandidateFilter) bool {
			return f.MinAge != nil && *f.MinAge == 30
		}),
		mock.Anything, 20, 0,
	).Return(candidates("cand-1"), nil)

	cards, err := uc.Search(context.Background(), "requester", &discover.Filters{MinAge: &minAge}, 1, 20)

	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	prefsRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	prefsRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestByVerse_FiltersOnVerseFragment(t *testing.T) {
	uc, userRepo, prefsRepo, likeRepo, _ := newTestUseCase()
	likeRepo.On("LikedUserIDs", mock.Anything, "requester").Return([]string{}, nil)
	userRepo.On("FindCandidates", mock.Anything,
		mock.MatchedBy(func(f *domain.CandidateFilter) bool {
			return f.Verse != nil && *f.Verse == "John 3" && f.Gender == nil
		}),
		mock.Anything, 20, 0,
	).Return(candidates("cand-1"), nil)

	cards, err := uc.ByVerse(context.Background(), "requester", "John 3", 1, 20)

	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	prefsRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestGetCandidates_PaginationClamps(t *testing.T) {
	uc, userRepo, prefsRepo, likeRepo, _ := newTestUseCase()
	prefsRepo.On("GetByUserID", mock.Anything, "requester").Return(strictPrefs(), nil)
	likeRepo.On("LikedUserIDs", mock.Anything, "requester").Return([]string{}, nil)
	userRepo.On("FindCandidates", mock.Anything, mock.Anything, mock.Anything, 100, 100).
		Return(candidates("cand-1"), nil)

	_, err := uc.GetCandidates(context.Background(), "requester", 2, 500)

	assert.NoError(t, err)
	userRepo.AssertCalled(t, "FindCandidates", mock.Anything, mock.Anything, mock.Anything, 100, 100)
}

func TestGetStats_FallsBackWhenPresenceUnavailable(t *testing.T) {
	uc, userRepo, _, _, presence := newTestUseCase()
	userRepo.On("GetByID", mock.Anything, "requester").
		Return(&domain.User{ID: "requester", Location: "Lagos, Nigeria"}, nil)
	userRepo.On("CountCandidates", mock.Anything,
		mock.MatchedBy(func(f *domain.CandidateFilter) bool {
			return f.Location != nil && *f.Location == "Lagos"
		}), []string{"requester"},
	).Return(12, nil)
	presence.On("OnlineCount", mock.Anything).Return(0, assert.AnError)
	userRepo.On("CountCandidates", mock.Anything,
		mock.MatchedBy(func(f *domain.CandidateFilter) bool { return f.OnlineSince != nil }),
		[]string{"requester"},
	).Return(5, nil)

	stats, err := uc.GetStats(context.Background(), "requester")

	assert.NoError(t, err)
	assert.Equal(t, 12, stats.NearbyBelievers)
	assert.Equal(t, 5, stats.ActiveToday)
	assert.Equal(t, 5, stats.OnlineNow)
}
