package handler

import (
	"net/http"

	"github.com/faithbliss/backend/internal/usecase/community"
	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityUseCase *community.CommunityUseCase
}

func NewCommunityHandler(communityUseCase *community.CommunityUseCase) *CommunityHandler {
	return &CommunityHandler{
		communityUseCase: communityUseCase,
	}
}

type contentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// CreatePost handles POST /community/posts
// @Summary Create a community post
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body community.CreatePostInput true "Post data"
// @Success 201 {object} domain.CommunityPost
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /community/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req community.CreatePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.communityUseCase.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts handles GET /community/posts
// @Summary List community posts
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.CommunityPost
// @Failure 401 {object} ErrorResponse
// @Router /community/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	page, pageSize := pageParams(c)
	posts, err := h.communityUseCase.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// LikePost handles POST /community/posts/:post_id/like
// @Summary Like a post
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /community/posts/{post_id}/like [post]
func (h *CommunityHandler) LikePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.communityUseCase.LikePost(c.Request.Context(), userID, c.Param("post_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

// UnlikePost handles DELETE /community/posts/:post_id/like
// @Summary Remove a post like
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /community/posts/{post_id}/like [delete]
func (h *CommunityHandler) UnlikePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.communityUseCase.UnlikePost(c.Request.Context(), userID, c.Param("post_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unliked"})
}

// CommentOnPost handles POST /community/posts/:post_id/comments
// @Summary Comment on a post
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param request body contentRequest true "Comment content"
// @Success 201 {object} domain.PostComment
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /community/posts/{post_id}/comments [post]
func (h *CommunityHandler) CommentOnPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	comment, err := h.communityUseCase.CommentOnPost(c.Request.Context(), userID, c.Param("post_id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// CreateEvent handles POST /community/events
// @Summary Create an event
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body community.CreateEventInput true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /community/events [post]
func (h *CommunityHandler) CreateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req community.CreateEventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	event, err := h.communityUseCase.CreateEvent(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListEvents handles GET /community/events
// @Summary List upcoming events
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.Event
// @Failure 401 {object} ErrorResponse
// @Router /community/events [get]
func (h *CommunityHandler) ListEvents(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	page, pageSize := pageParams(c)
	events, err := h.communityUseCase.ListUpcomingEvents(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// JoinEvent handles POST /community/events/:event_id/join
// @Summary Join an event
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /community/events/{event_id}/join [post]
func (h *CommunityHandler) JoinEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.communityUseCase.JoinEvent(c.Request.Context(), userID, c.Param("event_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "joined"})
}

// LeaveEvent handles POST /community/events/:event_id/leave
// @Summary Leave an event
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /community/events/{event_id}/leave [post]
func (h *CommunityHandler) LeaveEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.communityUseCase.LeaveEvent(c.Request.Context(), userID, c.Param("event_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "left"})
}

// CreatePrayerRequest handles POST /community/prayer-requests
// @Summary Create a prayer request
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body community.CreatePrayerRequestInput true "Prayer request data"
// @Success 201 {object} domain.PrayerRequest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /community/prayer-requests [post]
func (h *CommunityHandler) CreatePrayerRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req community.CreatePrayerRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	pr, err := h.communityUseCase.CreatePrayerRequest(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pr)
}

// ListPrayerRequests handles GET /community/prayer-requests
// @Summary List prayer requests
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.PrayerRequest
// @Failure 401 {object} ErrorResponse
// @Router /community/prayer-requests [get]
func (h *CommunityHandler) ListPrayerRequests(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	page, pageSize := pageParams(c)
	requests, err := h.communityUseCase.ListPrayerRequests(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Pray handles POST /community/prayer-requests/:request_id/pray
// @Summary Pray for a request
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param request_id path string true "Prayer request ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /community/prayer-requests/{request_id}/pray [post]
func (h *CommunityHandler) Pray(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.communityUseCase.Pray(c.Request.Context(), userID, c.Param("request_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "prayed"})
}

// CreateBlessWallEntry handles POST /community/bless-wall
// @Summary Post to the bless wall
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body contentRequest true "Entry content"
// @Success 201 {object} domain.BlessWallEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /community/bless-wall [post]
func (h *CommunityHandler) CreateBlessWallEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	entry, err := h.communityUseCase.CreateBlessWallEntry(c.Request.Context(), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListBlessWall handles GET /community/bless-wall
// @Summary List bless wall entries
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.BlessWallEntry
// @Failure 401 {object} ErrorResponse
// @Router /community/bless-wall [get]
func (h *CommunityHandler) ListBlessWall(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	page, pageSize := pageParams(c)
	entries, err := h.communityUseCase.ListBlessWall(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
