package handler

import (
	"net/http"

	"github.com/faithbliss/backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// Send handles POST /matches/:match_id/messages
// @Summary Send a message
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match_id path string true "Match ID"
// @Param request body sendMessageRequest true "Message content"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{match_id}/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	msg, err := h.messageUseCase.Send(c.Request.Context(), userID, c.Param("match_id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// History handles GET /matches/:match_id/messages
// @Summary Message history
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param match_id path string true "Match ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{match_id}/messages [get]
func (h *MessageHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	if page < 1 {
		page = 1
	}
	msgs, err := h.messageUseCase.History(c.Request.Context(), userID, c.Param("match_id"), pageSize, (page-1)*pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}

// MarkRead handles POST /messages/:message_id/read
// @Summary Mark a message read
// @Description Receiver only; marking twice is a no-op
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param message_id path string true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages/{message_id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.messageUseCase.MarkRead(c.Request.Context(), userID, c.Param("message_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// UnreadCount handles GET /messages/unread-count
// @Summary Total unread messages
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} ErrorResponse
// @Router /messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.messageUseCase.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// Conversations handles GET /conversations
// @Summary Chat inbox
// @Description Matches as conversations ordered by recent activity
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Conversation
// @Failure 401 {object} ErrorResponse
// @Router /conversations [get]
func (h *MessageHandler) Conversations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	convs, err := h.messageUseCase.Conversations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, convs)
}
