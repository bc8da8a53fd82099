package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
	"github.com/redis/go-redis/v9"
)

// MoveCache stores finished engine decisions as JSON under caller-built keys.
type MoveCache struct {
	client *redis.Client
}

func NewMoveCache(client *redis.Client) *MoveCache {
	return &MoveCache{client: client}
}

// Lookup returns the cached decision for key; a miss is not an error.
func (m *MoveCache) Lookup(ctx context.Context, key string) (*domain.MoveDecision, bool, error) {
	raw, err := m.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var decision domain.MoveDecision
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached decision %s: %v", key, err)
	}
	return &decision, true, nil
}

func (m *MoveCache) Store(ctx context.Context, key string, decision *domain.MoveDecision, ttl time.Duration) error {
	data, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("failed to encode decision: %v", err)
	}
	return m.client.Set(ctx, key, data, ttl).Err()
}
