// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client used for slot-search
// result caching.
func InitCache(addr, password string, db int) {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// SlotVersionKey holds the global slot-cache version counter. Cached
// slot searches embed the counter in their keys, so bumping it
// invalidates every cached search at once.
const SlotVersionKey = "slots:version"

// BumpSlotVersion invalidates cached slot searches. Best-effort: a nil
// client or a Redis failure only means the next searches recompute.
func BumpSlotVersion(ctx context.Context, client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Incr(ctx, SlotVersionKey).Err(); err != nil {
		GetLogger().Warn("failed to bump slot cache version: " + err.Error())
	}
}
