package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// StatsCache keeps rendered dashboard payloads in Redis for a short TTL so
// repeated dashboard loads don't re-scan the record tables. Entries expire on
// their own; nothing invalidates them explicitly.
type StatsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{Client: client, TTL: ttl}
}

// Get unmarshals the cached payload into dest. The bool reports a hit.
func (c *StatsCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil || c.Client == nil {
		return false, nil
	}
	val, err := c.Client.Get(ctx, "stats:"+key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *StatsCache) Set(ctx context.Context, key string, value interface{}) error {
	if c == nil || c.Client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, "stats:"+key, data, c.TTL).Err()
}
