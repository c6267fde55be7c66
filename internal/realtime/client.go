package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// clientCommand is what a connected client may send upstream: room
// membership changes and typing signals. Chat messages themselves go
// through the REST endpoint so they are persisted before fan-out.
type clientCommand struct {
	Action  string `json:"action"`
	MatchID string `json:"match_id"`
}

const (
	actionJoinMatch  = "join_match"
	actionLeaveMatch = "leave_match"
	actionTyping     = "typing"
	actionStopTyping = "stop_typing"
)

// WSClient is the gorilla-backed Client implementation. One instance per
// upgraded connection, with separate read and write pumps.
type WSClient struct {
	userID string
	conn   *websocket.Conn
	hub    *Hub
	send   chan domain.PushEvent
	logger *zap.Logger
}

func NewWSClient(userID string, conn *websocket.Conn, hub *Hub, logger *zap.Logger) *WSClient {
	return &WSClient{
		userID: userID,
		conn:   conn,
		hub:    hub,
		send:   make(chan domain.PushEvent, sendBufferSize),
		logger: logger,
	}
}

func (c *WSClient) UserID() string                { return c.userID }
func (c *WSClient) Send() chan<- domain.PushEvent { return c.send }

// Close stops the write pump. The read pump exits when the connection
// closes underneath it.
func (c *WSClient) Close() {
	close(c.send)
}

// Run starts both pumps and blocks until the read pump exits.
func (c *WSClient) Run(ctx context.Context) {
	go c.writePump()
	c.readPump(ctx)
}

func (c *WSClient) readPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(ctx, c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		c.hub.RefreshPresence(ctx, c.userID)
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}

		var cmd clientCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			c.logger.Debug("bad client command", zap.String("user_id", c.userID), zap.Error(err))
			continue
		}
		c.handleCommand(cmd)
	}
}

func (c *WSClient) handleCommand(cmd clientCommand) {
	switch cmd.Action {
	case actionJoinMatch:
		if cmd.MatchID != "" {
			c.hub.JoinMatch(c, cmd.MatchID)
		}
	case actionLeaveMatch:
		if cmd.MatchID != "" {
			c.hub.LeaveMatch(c, cmd.MatchID)
		}
	case actionTyping, actionStopTyping:
		if cmd.MatchID == "" {
			return
		}
		typing := cmd.Action == actionTyping
		c.hub.BroadcastToMatch(cmd.MatchID, domain.PushEvent{
			Type:     domain.PushTyping,
			MatchID:  cmd.MatchID,
			SenderID: c.userID,
			IsTyping: &typing,
		})
	default:
		c.logger.Debug("unknown client action", zap.String("action", cmd.Action))
	}
}

func (c *WSClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
