package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	presenceKeyPrefix = "presence:"
	// presenceTTL matches the "online now" window used by discovery
	// stats; the hub refreshes the key while the connection lives.
	presenceTTL = 5 * time.Minute
)

// PresenceRepository tracks which users currently hold a live connection.
// It is advisory only: correctness-critical state never lives here.
type PresenceRepository struct {
	client *redis.Client
}

func NewPresenceRepository(client *redis.Client) *PresenceRepository {
	return &PresenceRepository{client: client}
}

func (r *PresenceRepository) SetOnline(ctx context.Context, userID string) error {
	return r.client.Set(ctx, presenceKeyPrefix+userID, "1", presenceTTL).Err()
}

func (r *PresenceRepository) SetOffline(ctx context.Context, userID string) error {
	return r.client.Del(ctx, presenceKeyPrefix+userID).Err()
}

func (r *PresenceRepository) IsOnline(ctx context.Context, userID string) (bool, error) {
	_, err := r.client.Get(ctx, presenceKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PresenceRepository) OnlineCount(ctx context.Context) (int, error) {
	var (
		cursor uint64
		count  int
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, presenceKeyPrefix+"*", 100).Result()
		if err != nil {
			return 0, err
		}
		count += len(keys)
		cursor = next
		if cursor == 0 {
			return count, nil
		}
	}
}
