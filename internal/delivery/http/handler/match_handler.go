package handler

import (
	"net/http"

	"github.com/faithbliss/backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

type likeRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// Like handles POST /matches/like
// @Summary Like a profile
// @Description Records a like; a reciprocal like creates a match
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body likeRequest true "Liked user"
// @Success 200 {object} match.LikeResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /matches/like [post]
func (h *MatchHandler) Like(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.matchUseCase.Like(c.Request.Context(), userID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Pass handles POST /matches/pass
// @Summary Pass on a profile
// @Description Acknowledges a skip; nothing is persisted
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body likeRequest true "Passed user"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/pass [post]
func (h *MatchHandler) Pass(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.matchUseCase.Pass(c.Request.Context(), userID, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "passed"})
}

// List handles GET /matches
// @Summary List my matches
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} match.MatchView
// @Failure 401 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.matchUseCase.UserMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// LikesReceived handles GET /matches/likes-received
// @Summary Users who liked me
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.UserSummary
// @Failure 401 {object} ErrorResponse
// @Router /matches/likes-received [get]
func (h *MatchHandler) LikesReceived(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	if page < 1 {
		page = 1
	}
	summaries, err := h.matchUseCase.LikesReceived(c.Request.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}
