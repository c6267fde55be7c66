package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/faithbliss/backend/internal/usecase/user"
	"github.com/gin-gonic/gin"
)

const maxPhotoBytes = 5 << 20

type UserHandler struct {
	userUseCase *user.UserUseCase
}

func NewUserHandler(userUseCase *user.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// GetMe handles GET /users/me
// @Summary Get my profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	u, err := h.userUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// UpdateMe handles PUT /users/me
// @Summary Update my profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body user.UpdateProfileInput true "Profile fields"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req user.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	u, err := h.userUseCase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// GetUser handles GET /users/:user_id
// @Summary Get another user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{user_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	u, err := h.userUseCase.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// CompleteOnboarding handles POST /users/me/complete-onboarding
// @Summary Complete onboarding
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /users/me/complete-onboarding [post]
func (h *UserHandler) CompleteOnboarding(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	u, err := h.userUseCase.CompleteOnboarding(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// GetPreferences handles GET /users/me/preferences
// @Summary Get my matching preferences
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Preferences
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/me/preferences [get]
func (h *UserHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	prefs, err := h.userUseCase.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /users/me/preferences
// @Summary Update my matching preferences
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body user.UpdatePreferencesInput true "Preference fields"
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me/preferences [put]
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req user.UpdatePreferencesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	prefs, err := h.userUseCase.UpdatePreferences(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UploadPhoto handles POST /users/me/photos
// @Summary Upload a profile photo
// @Tags users
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param photo formData file true "Image file"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me/photos [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxPhotoBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo exceeds 5MB limit"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read photo"})
		return
	}

	u, err := h.userUseCase.UploadPhoto(c.Request.Context(), userID, data, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// DeletePhoto handles DELETE /users/me/photos/:slot
// @Summary Delete a profile photo
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param slot path int true "Photo slot (1-3)"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/me/photos/{slot} [delete]
func (h *UserHandler) DeletePhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid slot"})
		return
	}

	u, err := h.userUseCase.DeletePhoto(c.Request.Context(), userID, slot)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// Deactivate handles POST /users/me/deactivate
// @Summary Deactivate my account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Router /users/me/deactivate [post]
func (h *UserHandler) Deactivate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.userUseCase.Deactivate(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
