package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// currentUserID reads the user id the auth middleware stored on the
// context. The bool mirrors the middleware contract: false means the
// route was wired without RequireAuth.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return v.(string), true
}

// respondError maps domain sentinel errors onto HTTP statuses. Unknown
// errors become an opaque 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPreferencesNotFound),
		errors.Is(err, domain.ErrMatchNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrPrayerRequestNotFound),
		errors.Is(err, domain.ErrPhotoNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyLiked),
		errors.Is(err, domain.ErrMatchAlreadyExists),
		errors.Is(err, domain.ErrPostAlreadyLiked),
		errors.Is(err, domain.ErrAlreadyAttending),
		errors.Is(err, domain.ErrAlreadyPrayed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSelfLike),
		errors.Is(err, domain.ErrInvalidAgeRange),
		errors.Is(err, domain.ErrTooManyPhotos),
		errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrAccountDeactivated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotMatchParticipant),
		errors.Is(err, domain.ErrNotMessageReceiver):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
