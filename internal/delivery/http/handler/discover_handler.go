package handler

import (
	"net/http"

	"github.com/faithbliss/backend/internal/usecase/discover"
	"github.com/gin-gonic/gin"
)

type DiscoverHandler struct {
	discoverUseCase *discover.DiscoverUseCase
}

func NewDiscoverHandler(discoverUseCase *discover.DiscoverUseCase) *DiscoverHandler {
	return &DiscoverHandler{
		discoverUseCase: discoverUseCase,
	}
}

// GetCandidates handles GET /discover
// @Summary Get candidates
// @Description Page through candidates matching stored preferences
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} discover.ProfileCard
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /discover [get]
func (h *DiscoverHandler) GetCandidates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	cards, err := h.discoverUseCase.GetCandidates(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// Search handles POST /discover/search
// @Summary Ad-hoc candidate search
// @Description Same pipeline as the feed but the filter comes from the request and is not persisted
// @Tags discover
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body discover.Filters true "Filters"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} discover.ProfileCard
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /discover/search [post]
func (h *DiscoverHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filters discover.Filters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	page, pageSize := pageParams(c)
	cards, err := h.discoverUseCase.Search(c.Request.Context(), userID, &filters, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// ByInterest handles GET /discover/interest/:interest
// @Summary Candidates by shared interest
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Param interest path string true "Interest"
// @Success 200 {array} discover.ProfileCard
// @Failure 401 {object} ErrorResponse
// @Router /discover/interest/{interest} [get]
func (h *DiscoverHandler) ByInterest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	cards, err := h.discoverUseCase.ByInterest(c.Request.Context(), userID, c.Param("interest"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// ByVerse handles GET /discover/verse/:verse
// @Summary Candidates sharing a favorite verse
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Param verse path string true "Verse reference fragment"
// @Success 200 {array} discover.ProfileCard
// @Failure 401 {object} ErrorResponse
// @Router /discover/verse/{verse} [get]
func (h *DiscoverHandler) ByVerse(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	cards, err := h.discoverUseCase.ByVerse(c.Request.Context(), userID, c.Param("verse"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// ActiveUsers handles GET /discover/active
// @Summary Recently active candidates
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Success 200 {array} discover.ProfileCard
// @Failure 401 {object} ErrorResponse
// @Router /discover/active [get]
func (h *DiscoverHandler) ActiveUsers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	cards, err := h.discoverUseCase.ActiveUsers(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// GetStats handles GET /discover/stats
// @Summary Discovery counters
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Success 200 {object} discover.Stats
// @Failure 401 {object} ErrorResponse
// @Router /discover/stats [get]
func (h *DiscoverHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.discoverUseCase.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
