package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const trackingTTL = 5 * time.Minute

// Cache is a thin Redis wrapper for public tracking lookups. A nil *Cache is
// valid and degrades to no caching, so Redis stays optional.
type Cache struct {
	client *redis.Client
}

// Connect opens a Redis connection. Returns nil (cache disabled) when addr is
// empty or the server is unreachable.
func Connect(addr, password string, db int) (*Cache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Cache{client: client}, nil
}

func trackingKey(trackingID string) string {
	return "repair:tracking:" + trackingID
}

// GetRepair fetches a cached tracking lookup into dest.
func (c *Cache) GetRepair(ctx context.Context, trackingID string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, trackingKey(trackingID)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetRepair caches a tracking lookup for a short TTL.
func (c *Cache) SetRepair(ctx context.Context, trackingID string, repair interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(repair)
	if err != nil {
		return
	}
	c.client.Set(ctx, trackingKey(trackingID), raw, trackingTTL)
}

// InvalidateRepair drops a cached lookup after a staff update.
func (c *Cache) InvalidateRepair(ctx context.Context, trackingID string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, trackingKey(trackingID))
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
