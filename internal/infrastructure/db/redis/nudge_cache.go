package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

// Leave and learning records do not change often enough to warrant
// recomputing nudges on every visit.
const nudgeTTL = 15 * time.Minute

// NudgeCache stores computed nudge lists per user with a TTL.
// Key format: nudges:<user_id>
type NudgeCache struct {
	client *redis.Client
}

// NewNudgeCache creates a NudgeCache wrapping the given Redis client.
func NewNudgeCache(client *redis.Client) *NudgeCache {
	return &NudgeCache{client: client}
}

// Get returns the cached nudges and whether the key was present.
func (c *NudgeCache) Get(ctx context.Context, userID uint) ([]domain.Nudge, bool, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("nudge cache get: %w", err)
	}

	var nudges []domain.Nudge
	if err := json.Unmarshal([]byte(val), &nudges); err != nil {
		return nil, false, fmt.Errorf("nudge cache decode: %w", err)
	}
	return nudges, true, nil
}

// Set stores the nudges, replacing any previous entry (expires after nudgeTTL).
func (c *NudgeCache) Set(ctx context.Context, userID uint, nudges []domain.Nudge) error {
	b, err := json.Marshal(nudges)
	if err != nil {
		return fmt.Errorf("nudge cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), b, nudgeTTL).Err()
}

func (c *NudgeCache) key(userID uint) string {
	return fmt.Sprintf("nudges:%d", userID)
}
