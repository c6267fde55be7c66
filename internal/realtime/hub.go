package realtime

import (
	"context"
	"sync"

	"github.com/faithbliss/backend/internal/domain"
	"go.uber.org/zap"
)

// PresenceStore marks users online and offline as their connections come
// and go. Implemented by the redis presence repository.
type PresenceStore interface {
	SetOnline(ctx context.Context, userID string) error
	SetOffline(ctx context.Context, userID string) error
}

// Client is one live connection owned by a user. The hub only ever talks
// to it through its send channel, so tests can use a plain fake.
type Client interface {
	UserID() string
	// Send returns the channel the hub writes events into. A full channel
	// means the client is too slow; the hub drops it.
	Send() chan<- domain.PushEvent
	Close()
}

// Hub keeps the registry of live connections and the per-match rooms.
// It implements domain.Notifier. A user may hold several connections at
// once (phone and laptop); events go to all of them.
type Hub struct {
	mu sync.RWMutex

	// clients maps userID to that user's open connections.
	clients map[string]map[Client]struct{}
	// rooms maps matchID to the connections currently joined to it.
	rooms map[string]map[Client]struct{}
	// memberships is the reverse index used to clean rooms up on
	// disconnect.
	memberships map[Client]map[string]struct{}

	presence PresenceStore
	logger   *zap.Logger
}

func NewHub(presence PresenceStore, logger *zap.Logger) *Hub {
	return &Hub{
		clients:     make(map[string]map[Client]struct{}),
		rooms:       make(map[string]map[Client]struct{}),
		memberships: make(map[Client]map[string]struct{}),
		presence:    presence,
		logger:      logger,
	}
}

// Register adds a connection to the registry and marks the user online.
func (h *Hub) Register(ctx context.Context, c Client) {
	h.mu.Lock()
	conns, ok := h.clients[c.UserID()]
	if !ok {
		conns = make(map[Client]struct{})
		h.clients[c.UserID()] = conns
	}
	conns[c] = struct{}{}
	h.memberships[c] = make(map[string]struct{})
	h.mu.Unlock()

	if err := h.presence.SetOnline(ctx, c.UserID()); err != nil {
		h.logger.Warn("failed to mark user online", zap.String("user_id", c.UserID()), zap.Error(err))
	}
	h.logger.Debug("client registered", zap.String("user_id", c.UserID()))
}

// Unregister removes a connection, leaves its rooms, and clears presence
// once the user's last connection is gone.
func (h *Hub) Unregister(ctx context.Context, c Client) {
	h.mu.Lock()
	conns, ok := h.clients[c.UserID()]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, registered := conns[c]; !registered {
		h.mu.Unlock()
		return
	}
	delete(conns, c)
	lastConnection := len(conns) == 0
	if lastConnection {
		delete(h.clients, c.UserID())
	}
	for matchID := range h.memberships[c] {
		h.leaveLocked(c, matchID)
	}
	delete(h.memberships, c)
	// Closed under the write lock: sends only happen under the read
	// lock, so no send can interleave with the close.
	c.Close()
	h.mu.Unlock()

	if lastConnection {
		if err := h.presence.SetOffline(ctx, c.UserID()); err != nil {
			h.logger.Warn("failed to mark user offline", zap.String("user_id", c.UserID()), zap.Error(err))
		}
	}
	h.logger.Debug("client unregistered", zap.String("user_id", c.UserID()))
}

// JoinMatch subscribes a connection to a match room so it receives
// BroadcastToMatch events for it.
func (h *Hub) JoinMatch(c Client, matchID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, registered := h.memberships[c]; !registered {
		return
	}
	room, ok := h.rooms[matchID]
	if !ok {
		room = make(map[Client]struct{})
		h.rooms[matchID] = room
	}
	room[c] = struct{}{}
	h.memberships[c][matchID] = struct{}{}
}

// LeaveMatch removes a connection from a match room.
func (h *Hub) LeaveMatch(c Client, matchID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c, matchID)
	if members, ok := h.memberships[c]; ok {
		delete(members, matchID)
	}
}

func (h *Hub) leaveLocked(c Client, matchID string) {
	room, ok := h.rooms[matchID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, matchID)
	}
}

// Deliver pushes an event to every connection the user holds. Offline
// users are skipped silently. Sends are non-blocking and happen under
// the read lock, so a registered channel cannot be closed underneath
// them by a concurrent unregister.
func (h *Hub) Deliver(userID string, event domain.PushEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		h.send(c, event)
	}
}

// BroadcastToMatch pushes an event to every connection joined to the
// match room.
func (h *Hub) BroadcastToMatch(matchID string, event domain.PushEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[matchID] {
		h.send(c, event)
	}
}

// RefreshPresence re-arms the presence TTL for a user who still holds a
// live connection. Called from the connection's pong handler.
func (h *Hub) RefreshPresence(ctx context.Context, userID string) {
	if err := h.presence.SetOnline(ctx, userID); err != nil {
		h.logger.Warn("failed to refresh presence", zap.String("user_id", userID), zap.Error(err))
	}
}

// OnlineLocally reports whether the user has a connection on this
// instance.
func (h *Hub) OnlineLocally(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

// send is called with h.mu held (read side). The drop happens on a
// separate goroutine because Unregister needs the write lock.
func (h *Hub) send(c Client, event domain.PushEvent) {
	select {
	case c.Send() <- event:
	default:
		// The client's buffer is full; it is not draining its socket.
		h.logger.Warn("dropping slow client", zap.String("user_id", c.UserID()))
		go h.Unregister(context.Background(), c)
	}
}
