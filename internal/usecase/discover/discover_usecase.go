package discover

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"go.uber.org/zap"
)

// RelaxationPolicy controls what discovery does when the strict
// preference query yields no candidates.
type RelaxationPolicy int

const (
	// RelaxStrictThenUnfiltered silently retries with only the base
	// eligibility predicate (active + onboarded, minus exclusions) so a
	// narrow preference set never dead-ends the feed. The caller is not
	// told that relaxation happened.
	RelaxStrictThenUnfiltered RelaxationPolicy = iota
	// RelaxNever returns the strict result as-is, empty or not.
	RelaxNever
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	onlineWindow = 5 * time.Minute
	activeWindow = time.Hour
)

type DiscoverUseCase struct {
	userRepo  repository.UserRepository
	prefsRepo repository.PreferencesRepository
	likeRepo  repository.LikeRepository
	presence  PresenceCounter
	policy    RelaxationPolicy
	logger    *zap.Logger
}

// PresenceCounter reports how many users currently hold a live
// connection. Implemented by the redis presence store.
type PresenceCounter interface {
	OnlineCount(ctx context.Context) (int, error)
}

func NewDiscoverUseCase(
	userRepo repository.UserRepository,
	prefsRepo repository.PreferencesRepository,
	likeRepo repository.LikeRepository,
	presence PresenceCounter,
	logger *zap.Logger,
) *DiscoverUseCase {
	return &DiscoverUseCase{
		userRepo:  userRepo,
		prefsRepo: prefsRepo,
		likeRepo:  likeRepo,
		presence:  presence,
		policy:    RelaxStrictThenUnfiltered,
		logger:    logger,
	}
}

// ProfileCard is a candidate as shown in the discovery feed.
type ProfileCard struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Age           int                 `json:"age"`
	Gender        domain.Gender       `json:"gender"`
	Denomination  domain.Denomination `json:"denomination"`
	Location      string              `json:"location"`
	Bio           *string             `json:"bio"`
	ProfilePhoto1 *string             `json:"profile_photo_1"`
	IsVerified    bool                `json:"is_verified"`
	FavoriteVerse *string             `json:"favorite_verse"`
	Hobbies       []string            `json:"hobbies"`
}

// Filters is the ad-hoc filter payload. Absent fields mean "no
// constraint"; an empty list never means "exclude everything".
type Filters struct {
	Gender            *domain.Gender            `json:"gender"`
	Denominations     []domain.Denomination     `json:"denominations"`
	MinAge            *int                      `json:"min_age"`
	MaxAge            *int                      `json:"max_age"`
	FaithJourneys     []domain.FaithJourney     `json:"faith_journeys"`
	ChurchAttendance  []domain.ChurchAttendance `json:"church_attendance"`
	RelationshipGoals []domain.RelationshipGoal `json:"relationship_goals"`
	Location          *string                   `json:"location"`
	Interest          *string                   `json:"interest"`
	VerifiedOnly      *bool                     `json:"verified_only"`
	OnlineOnly        bool                      `json:"online_only"`
}

// Stats is the discovery landing-page counter block.
type Stats struct {
	NearbyBelievers int `json:"nearby_believers"`
	ActiveToday     int `json:"active_today"`
	OnlineNow       int `json:"online_now"`
}

// GetCandidates returns one page of candidates driven by the requester's
// stored preferences. The requester and everyone they already liked are
// excluded; users who were passed on are not (pass is a no-op here).
func (uc *DiscoverUseCase) GetCandidates(ctx context.Context, requesterID string, page, pageSize int) ([]*ProfileCard, error) {
	prefs, err := uc.prefsRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return uc.findPage(ctx, requesterID, domain.FilterFromPreferences(prefs), page, pageSize)
}

// Search is the ad-hoc variant: identical semantics, but the filter comes
// from the request and is never persisted. It has no dependency on a
// stored preferences row.
func (uc *DiscoverUseCase) Search(ctx context.Context, requesterID string, filters *Filters, page, pageSize int) ([]*ProfileCard, error) {
	return uc.findPage(ctx, requesterID, filters.toCandidateFilter(), page, pageSize)
}

// ByInterest lists discoverable users sharing a hobby.
func (uc *DiscoverUseCase) ByInterest(ctx context.Context, requesterID, interest string, page, pageSize int) ([]*ProfileCard, error) {
	return uc.findPage(ctx, requesterID, &domain.CandidateFilter{Interest: &interest}, page, pageSize)
}

// ByVerse lists discoverable users whose favorite verse reference
// contains the given fragment, so "John 3" finds "John 3:16".
func (uc *DiscoverUseCase) ByVerse(ctx context.Context, requesterID, verse string, page, pageSize int) ([]*ProfileCard, error) {
	return uc.findPage(ctx, requesterID, &domain.CandidateFilter{Verse: &verse}, page, pageSize)
}

// ActiveUsers lists discoverable users seen within the last hour.
func (uc *DiscoverUseCase) ActiveUsers(ctx context.Context, requesterID string, page, pageSize int) ([]*ProfileCard, error) {
	since := time.Now().Add(-activeWindow)
	return uc.findPage(ctx, requesterID, &domain.CandidateFilter{OnlineSince: &since}, page, pageSize)
}

func (uc *DiscoverUseCase) findPage(ctx context.Context, requesterID string, filter *domain.CandidateFilter, page, pageSize int) ([]*ProfileCard, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := (page - 1) * pageSize

	excludeIDs, err := uc.exclusionSet(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to build exclusion set: %w", err)
	}

	users, err := uc.userRepo.FindCandidates(ctx, filter, excludeIDs, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}

	if len(users) == 0 && uc.policy == RelaxStrictThenUnfiltered && !filter.Empty() {
		uc.logger.Debug("strict candidate query empty, relaxing to base predicate",
			zap.String("requester_id", requesterID))
		users, err = uc.userRepo.FindCandidates(ctx, &domain.CandidateFilter{}, excludeIDs, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to query relaxed candidates: %w", err)
		}
	}

	cards := make([]*ProfileCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, cardFromUser(u))
	}
	return cards, nil
}

// exclusionSet is the requester plus everyone they already liked.
func (uc *DiscoverUseCase) exclusionSet(ctx context.Context, requesterID string) ([]string, error) {
	likedIDs, err := uc.likeRepo.LikedUserIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return append(likedIDs, requesterID), nil
}

// GetStats returns the landing-page counters. "Nearby" is a substring
// match on the first segment of the requester's location, not a
// geographic query.
func (uc *DiscoverUseCase) GetStats(ctx context.Context, requesterID string) (*Stats, error) {
	requester, err := uc.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	exclude := []string{requesterID}

	city := strings.TrimSpace(strings.SplitN(requester.Location, ",", 2)[0])
	var nearby int
	if city != "" {
		nearby, err = uc.userRepo.CountCandidates(ctx, &domain.CandidateFilter{Location: &city}, exclude)
		if err != nil {
			return nil, err
		}
	}

	daySince := time.Now().Add(-24 * time.Hour)
	activeToday, err := uc.userRepo.CountCandidates(ctx, &domain.CandidateFilter{OnlineSince: &daySince}, exclude)
	if err != nil {
		return nil, err
	}

	onlineNow, err := uc.presence.OnlineCount(ctx)
	if err != nil {
		// Presence is advisory; fall back to the last-seen window.
		uc.logger.Warn("presence count unavailable, falling back to last_seen", zap.Error(err))
		since := time.Now().Add(-onlineWindow)
		onlineNow, err = uc.userRepo.CountCandidates(ctx, &domain.CandidateFilter{OnlineSince: &since}, exclude)
		if err != nil {
			return nil, err
		}
	}

	return &Stats{
		NearbyBelievers: nearby,
		ActiveToday:     activeToday,
		OnlineNow:       onlineNow,
	}, nil
}

func (f *Filters) toCandidateFilter() *domain.CandidateFilter {
	cf := &domain.CandidateFilter{
		Gender:            f.Gender,
		Denominations:     f.Denominations,
		MinAge:            f.MinAge,
		MaxAge:            f.MaxAge,
		FaithJourneys:     f.FaithJourneys,
		ChurchAttendance:  f.ChurchAttendance,
		RelationshipGoals: f.RelationshipGoals,
		Location:          f.Location,
		Interest:          f.Interest,
		VerifiedOnly:      f.VerifiedOnly,
	}
	if f.OnlineOnly {
		since := time.Now().Add(-onlineWindow)
		cf.OnlineSince = &since
	}
	return cf
}

func cardFromUser(u *domain.User) *ProfileCard {
	return &ProfileCard{
		ID:            u.ID,
		Name:          u.Name,
		Age:           u.Age,
		Gender:        u.Gender,
		Denomination:  u.Denomination,
		Location:      u.Location,
		Bio:           u.Bio,
		ProfilePhoto1: u.ProfilePhoto1,
		IsVerified:    u.IsVerified,
		FavoriteVerse: u.FavoriteVerse,
		Hobbies:       u.Hobbies,
	}
}
