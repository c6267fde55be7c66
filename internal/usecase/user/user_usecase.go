package user

import (
	"context"
	"fmt"
	"time"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"go.uber.org/zap"
)

const maxProfilePhotos = 3

// PhotoStore persists uploaded photo bytes and returns a reference the
// profile can carry.
type PhotoStore interface {
	Put(ctx context.Context, userID string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, ref string) error
}

type UserUseCase struct {
	userRepo    repository.UserRepository
	prefsRepo   repository.PreferencesRepository
	sessionRepo repository.SessionRepository
	photos      PhotoStore
	logger      *zap.Logger
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	prefsRepo repository.PreferencesRepository,
	sessionRepo repository.SessionRepository,
	photos PhotoStore,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		prefsRepo:   prefsRepo,
		sessionRepo: sessionRepo,
		photos:      photos,
		logger:      logger,
	}
}

// UpdateProfileInput carries the editable profile fields. Nil pointers
// and nil slices leave the stored value untouched.
type UpdateProfileInput struct {
	Name           *string                  `json:"name" binding:"omitempty,min=2,max=100"`
	Age            *int                     `json:"age" binding:"omitempty,min=18,max=100"`
	Denomination   *domain.Denomination     `json:"denomination" binding:"omitempty,denomination"`
	Location       *string                  `json:"location"`
	Latitude       *float64                 `json:"latitude"`
	Longitude      *float64                 `json:"longitude"`
	Bio            *string                  `json:"bio" binding:"omitempty,max=500"`
	FieldOfStudy   *string                  `json:"field_of_study"`
	Profession     *string                  `json:"profession"`
	Hobbies        []string                 `json:"hobbies"`
	Values         []string                 `json:"values"`
	FavoriteVerse  *string                  `json:"favorite_verse"`
	FaithJourney   *domain.FaithJourney     `json:"faith_journey" binding:"omitempty,faith_journey"`
	SundayActivity *domain.ChurchAttendance `json:"sunday_activity" binding:"omitempty,church_attendance"`
	LookingFor     []domain.RelationshipGoal
}

// UpdatePreferencesInput mirrors the stored preferences row. Nil means
// keep, an explicit empty slice means clear the constraint.
type UpdatePreferencesInput struct {
	PreferredGender           *domain.Gender            `json:"preferred_gender" binding:"omitempty,gender"`
	PreferredDenomination     []domain.Denomination     `json:"preferred_denomination"`
	MinAge                    *int                      `json:"min_age" binding:"omitempty,min=18"`
	MaxAge                    *int                      `json:"max_age" binding:"omitempty,max=100"`
	PreferredFaithJourney     []domain.FaithJourney     `json:"preferred_faith_journey"`
	PreferredChurchAttendance []domain.ChurchAttendance `json:"preferred_church_attendance"`
	PreferredRelationshipGoal []domain.RelationshipGoal `json:"preferred_relationship_goals"`
	MaxDistance               *int                      `json:"max_distance" binding:"omitempty,min=1"`
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in *UpdateProfileInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Denomination != nil {
		user.Denomination = *in.Denomination
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.Latitude != nil {
		user.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		user.Longitude = in.Longitude
	}
	if in.Bio != nil {
		user.Bio = in.Bio
	}
	if in.FieldOfStudy != nil {
		user.FieldOfStudy = in.FieldOfStudy
	}
	if in.Profession != nil {
		user.Profession = in.Profession
	}
	if in.Hobbies != nil {
		user.Hobbies = in.Hobbies
	}
	if in.Values != nil {
		user.Values = in.Values
	}
	if in.FavoriteVerse != nil {
		user.FavoriteVerse = in.FavoriteVerse
	}
	if in.FaithJourney != nil {
		user.FaithJourney = in.FaithJourney
	}
	if in.SundayActivity != nil {
		user.SundayActivity = in.SundayActivity
	}
	if in.LookingFor != nil {
		user.LookingFor = in.LookingFor
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CompleteOnboarding flips the flag that lets the user appear in
// discovery feeds.
func (uc *UserUseCase) CompleteOnboarding(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.OnboardingCompleted {
		return user, nil
	}
	user.OnboardingCompleted = true
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	uc.logger.Info("onboarding completed", zap.String("user_id", userID))
	return user, nil
}

func (uc *UserUseCase) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	return uc.prefsRepo.GetByUserID(ctx, userID)
}

// UpdatePreferences applies a partial preferences update. Both age bounds
// are validated together against the merged result so a single-sided
// update cannot invert the window.
func (uc *UserUseCase) UpdatePreferences(ctx context.Context, userID string, in *UpdatePreferencesInput) (*domain.Preferences, error) {
	prefs, err := uc.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.PreferredGender != nil {
		prefs.PreferredGender = in.PreferredGender
	}
	if in.PreferredDenomination != nil {
		prefs.PreferredDenomination = in.PreferredDenomination
	}
	if in.MinAge != nil {
		prefs.MinAge = in.MinAge
	}
	if in.MaxAge != nil {
		prefs.MaxAge = in.MaxAge
	}
	if in.PreferredFaithJourney != nil {
		prefs.PreferredFaithJourney = in.PreferredFaithJourney
	}
	if in.PreferredChurchAttendance != nil {
		prefs.PreferredChurchAttendance = in.PreferredChurchAttendance
	}
	if in.PreferredRelationshipGoal != nil {
		prefs.PreferredRelationshipGoal = in.PreferredRelationshipGoal
	}
	if in.MaxDistance != nil {
		prefs.MaxDistance = in.MaxDistance
	}

	if prefs.MinAge != nil && prefs.MaxAge != nil && *prefs.MinAge > *prefs.MaxAge {
		return nil, domain.ErrInvalidAgeRange
	}

	if err := uc.prefsRepo.Update(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// UploadPhoto stores the image and fills the first free photo slot.
func (uc *UserUseCase) UploadPhoto(ctx context.Context, userID string, data []byte, contentType string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var slot **string
	switch {
	case user.ProfilePhoto1 == nil:
		slot = &user.ProfilePhoto1
	case user.ProfilePhoto2 == nil:
		slot = &user.ProfilePhoto2
	case user.ProfilePhoto3 == nil:
		slot = &user.ProfilePhoto3
	default:
		return nil, domain.ErrTooManyPhotos
	}

	ref, err := uc.photos.Put(ctx, userID, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}
	*slot = &ref

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeletePhoto removes the photo in the given slot (1..3) and shifts the
// remaining photos up so slot 1 is always filled first.
func (uc *UserUseCase) DeletePhoto(ctx context.Context, userID string, slot int) (*domain.User, error) {
	if slot < 1 || slot > maxProfilePhotos {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	photos := []*string{user.ProfilePhoto1, user.ProfilePhoto2, user.ProfilePhoto3}
	if photos[slot-1] == nil {
		return nil, domain.ErrPhotoNotFound
	}

	removed := *photos[slot-1]
	photos = append(photos[:slot-1], photos[slot:]...)
	photos = append(photos, nil)
	user.ProfilePhoto1, user.ProfilePhoto2, user.ProfilePhoto3 = photos[0], photos[1], photos[2]

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.photos.Delete(ctx, removed); err != nil {
		uc.logger.Warn("failed to delete photo blob", zap.String("ref", removed), zap.Error(err))
	}
	return user, nil
}

// Deactivate hides the account from discovery and revokes every session.
func (uc *UserUseCase) Deactivate(ctx context.Context, userID string) error {
	if err := uc.userRepo.SetActive(ctx, userID, false); err != nil {
		return err
	}
	if err := uc.sessionRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	uc.logger.Info("account deactivated", zap.String("user_id", userID))
	return nil
}

// TouchLastSeen records activity. Called from the auth middleware, so
// failures do not block the request.
func (uc *UserUseCase) TouchLastSeen(ctx context.Context, userID string) {
	if err := uc.userRepo.SetLastSeen(ctx, userID, time.Now()); err != nil {
		uc.logger.Warn("failed to update last_seen", zap.String("user_id", userID), zap.Error(err))
	}
}
