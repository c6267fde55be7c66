package handler

import (
	"net/http"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/realtime"
	"github.com/faithbliss/backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client runs on a separate origin; auth is carried by
	// the bearer token, not cookies.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub            *realtime.Hub
	messageUseCase *message.MessageUseCase
	logger         *zap.Logger
}

func NewWSHandler(hub *realtime.Hub, messageUseCase *message.MessageUseCase, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:            hub,
		messageUseCase: messageUseCase,
		logger:         logger,
	}
}

// Connect handles GET /ws
// @Summary Open the live event connection
// @Description Upgrades to a WebSocket carrying push events; clients may send join_match, leave_match and typing commands
// @Tags realtime
// @Security BearerAuth
// @Success 101
// @Failure 401 {object} ErrorResponse
// @Router /ws [get]
func (h *WSHandler) Connect(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.String("user_id", userID), zap.Error(err))
		return
	}

	client := realtime.NewWSClient(userID, conn, h.hub, h.logger)
	h.hub.Register(c.Request.Context(), client)

	// Seed the badge immediately so the client does not wait for the
	// next message to learn its unread total.
	if count, err := h.messageUseCase.UnreadCount(c.Request.Context(), userID); err == nil {
		h.hub.Deliver(userID, domain.PushEvent{
			Type:        domain.PushUnreadCount,
			UnreadCount: &count,
		})
	}

	client.Run(c.Request.Context())
}
