package domain

import "errors"

// Not found.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrPreferencesNotFound   = errors.New("preferences not found")
	ErrMatchNotFound         = errors.New("match not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrSessionNotFound       = errors.New("session not found")
	ErrPostNotFound          = errors.New("post not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrPrayerRequestNotFound = errors.New("prayer request not found")
	ErrPhotoNotFound         = errors.New("photo not found")
)

// Conflict.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrAlreadyLiked       = errors.New("user already liked")
	ErrMatchAlreadyExists = errors.New("match already exists for this pair")
	ErrPostAlreadyLiked   = errors.New("post already liked")
	ErrAlreadyAttending   = errors.New("already joined this event")
	ErrAlreadyPrayed      = errors.New("already prayed for this request")
)

// Invalid operation.
var (
	ErrSelfLike        = errors.New("cannot like yourself")
	ErrInvalidAgeRange = errors.New("min age must not exceed max age")
	ErrTooManyPhotos   = errors.New("at most three profile photos allowed")
	ErrInvalidInput    = errors.New("invalid input")
)

// Unauthorized.
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrNotMatchParticipant = errors.New("user is not part of this match")
	ErrNotMessageReceiver  = errors.New("only the receiver may mark a message read")
	ErrAccountDeactivated  = errors.New("account is deactivated")
)
