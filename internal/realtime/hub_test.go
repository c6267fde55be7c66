package realtime_test

import (
	"context"
	"sync"
	"testing"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/realtime"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeClient struct {
	userID string
	send   chan domain.PushEvent
	closed bool
	mu     sync.Mutex
}

func newFakeClient(userID string) *fakeClient {
	return &fakeClient{
		userID: userID,
		send:   make(chan domain.PushEvent, 8),
	}
}

func (c *fakeClient) UserID() string                { return c.userID }
func (c *fakeClient) Send() chan<- domain.PushEvent { return c.send }

func (c *fakeClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *fakeClient) received() []domain.PushEvent {
	var events []domain.PushEvent
	for {
		select {
		case e := <-c.send:
			events = append(events, e)
		default:
			return events
		}
	}
}

type fakePresence struct {
	mu     sync.Mutex
	online map[string]bool
}

func newFakePresence() *fakePresence {
	return &fakePresence{online: make(map[string]bool)}
}

func (p *fakePresence) SetOnline(_ context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.online[userID] = true
	return nil
}

func (p *fakePresence) SetOffline(_ context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.online, userID)
	return nil
}

func (p *fakePresence) isOnline(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.online[userID]
}

func TestHub_DeliverToAllConnections(t *testing.T) {
	hub := realtime.NewHub(newFakePresence(), zap.NewNop())
	ctx := context.Background()

	phone := newFakeClient("user-a")
	laptop := newFakeClient("user-a")
	hub.Register(ctx, phone)
	hub.Register(ctx, laptop)

	hub.Deliver("user-a", domain.PushEvent{Type: domain.PushProfileLiked})

	assert.Len(t, phone.received(), 1)
	assert.Len(t, laptop.received(), 1)
}

func TestHub_DeliverToOfflineUserIsDropped(t *testing.T) {
	hub := realtime.NewHub(newFakePresence(), zap.NewNop())

	// No connection registered for user-b; must not panic or block.
	hub.Deliver("user-b", domain.PushEvent{Type: domain.PushNewMatch})
}

func TestHub_BroadcastToMatchRoom(t *testing.T) {
	hub := realtime.NewHub(newFakePresence(), zap.NewNop())
	ctx := context.Background()

	inRoom := newFakeClient("user-a")
	outOfRoom := newFakeClient("user-b")
	hub.Register(ctx, inRoom)
	hub.Register(ctx, outOfRoom)
	hub.JoinMatch(inRoom, "match-1")

	hub.BroadcastToMatch("match-1", domain.PushEvent{Type: domain.PushTyping})

	assert.Len(t, inRoom.received(), 1)
	assert.Empty(t, outOfRoom.received())
}

func TestHub_LeaveMatchStopsBroadcasts(t *testing.T) {
	hub := realtime.NewHub(newFakePresence(), zap.NewNop())
	ctx := context.Background()

	c := newFakeClient("user-a")
	hub.Register(ctx, c)
	hub.JoinMatch(c, "match-1")
	hub.LeaveMatch(c, "match-1")

	hub.BroadcastToMatch("match-1", domain.PushEvent{Type: domain.PushTyping})

	assert.Empty(t, c.received())
}

func TestHub_PresenceFollowsLastConnection(t *testing.T) {
	presence := newFakePresence()
	hub := realtime.NewHub(presence, zap.NewNop())
	ctx := context.Background()

	phone := newFakeClient("user-a")
	laptop := newFakeClient("user-a")
	hub.Register(ctx, phone)
	hub.Register(ctx, laptop)
	assert.True(t, presence.isOnline("user-a"))

	hub.Unregister(ctx, phone)
	assert.True(t, presence.isOnline("user-a"), "still one live connection")

	hub.Unregister(ctx, laptop)
	assert.False(t, presence.isOnline("user-a"))
	assert.False(t, hub.OnlineLocally("user-a"))
}

func TestHub_UnregisterLeavesRooms(t *testing.T) {
	hub := realtime.NewHub(newFakePresence(), zap.NewNop())
	ctx := context.Background()

	c := newFakeClient("user-a")
	hub.Register(ctx, c)
	hub.JoinMatch(c, "match-1")
	hub.Unregister(ctx, c)

	hub.BroadcastToMatch("match-1", domain.PushEvent{Type: domain.PushTyping})
	// The channel is closed by Unregister; nothing more to assert beyond
	// the broadcast not panicking on a stale room member.
}

func TestHub_DeliverRacingDisconnectDoesNotPanic(t *testing.T) {
	hub := realtime.NewHub(newFakePresence(), zap.NewNop())
	ctx := context.Background()

	// An unbuffered channel models a write pump that stopped draining,
	// which is exactly when the hub's slow-client drop closes the
	// channel while deliveries are still in flight.
	for i := 0; i < 1000; i++ {
		c := &fakeClient{userID: "user-a", send: make(chan domain.PushEvent)}
		hub.Register(ctx, c)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 3; j++ {
				hub.Deliver("user-a", domain.PushEvent{Type: domain.PushNewMessage})
			}
		}()
		go func() {
			defer wg.Done()
			hub.Unregister(ctx, c)
		}()
		wg.Wait()

		// Late delivery after the connection is fully gone must be a
		// silent drop, never a send on the closed channel.
		hub.Deliver("user-a", domain.PushEvent{Type: domain.PushNewMessage})
	}
}

func TestHub_UnregisterTwiceIsSafe(t *testing.T) {
	hub := realtime.NewHub(newFakePresence(), zap.NewNop())
	ctx := context.Background()

	c := newFakeClient("user-a")
	hub.Register(ctx, c)
	hub.Unregister(ctx, c)
	hub.Unregister(ctx, c)
}
