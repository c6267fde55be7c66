package realtime

import (
	"context"
	"encoding/json"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pushChannel = "push:broadcast"

// pushEnvelope is the wire shape on the redis channel. Exactly one of
// UserID or MatchID is set.
type pushEnvelope struct {
	UserID  string           `json:"user_id,omitempty"`
	MatchID string           `json:"match_id,omitempty"`
	Event   domain.PushEvent `json:"event"`
}

// Broadcaster is a domain.Notifier that fans events out through redis
// pub/sub so a recipient connected to another instance still gets them.
// Local delivery happens via the subscriber loop like everyone else's,
// which keeps single-instance and multi-instance behavior identical.
type Broadcaster struct {
	client *redis.Client
	hub    *Hub
	logger *zap.Logger
}

func NewBroadcaster(client *redis.Client, hub *Hub, logger *zap.Logger) *Broadcaster {
	return &Broadcaster{client: client, hub: hub, logger: logger}
}

func (b *Broadcaster) Deliver(userID string, event domain.PushEvent) {
	b.publish(pushEnvelope{UserID: userID, Event: event})
}

func (b *Broadcaster) BroadcastToMatch(matchID string, event domain.PushEvent) {
	b.publish(pushEnvelope{MatchID: matchID, Event: event})
}

func (b *Broadcaster) publish(env pushEnvelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		b.logger.Error("failed to encode push envelope", zap.Error(err))
		return
	}
	if err := b.client.Publish(context.Background(), pushChannel, payload).Err(); err != nil {
		// Push delivery is best-effort; fall back to local-only.
		b.logger.Warn("redis publish failed, delivering locally", zap.Error(err))
		b.deliverLocal(env)
	}
}

// Listen consumes the redis channel and hands events to the local hub.
// It blocks until the context is cancelled.
func (b *Broadcaster) Listen(ctx context.Context) {
	pubsub := b.client.Subscribe(ctx, pushChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env pushEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				b.logger.Warn("bad push envelope on redis channel", zap.Error(err))
				continue
			}
			b.deliverLocal(env)
		}
	}
}

func (b *Broadcaster) deliverLocal(env pushEnvelope) {
	if env.UserID != "" {
		b.hub.Deliver(env.UserID, env.Event)
		return
	}
	if env.MatchID != "" {
		b.hub.BroadcastToMatch(env.MatchID, env.Event)
	}
}
