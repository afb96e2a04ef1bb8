package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
)

// redisReportCache stores serialized reports in Redis. Failures are logged
// and treated as cache misses; the derivation pipeline recomputes.
type redisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache connects to Redis and returns a ReportCache backed by
// it. The connection is verified with a short ping.
func NewRedisReportCache(ctx context.Context, addr, password string, db int) (portsrepo.ReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}
	return &redisReportCache{client: client}, nil
}

var _ portsrepo.ReportCache = (*redisReportCache)(nil)

func (c *redisReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Redis report cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	return payload, true
}

func (c *redisReportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		slog.Warn("Redis report cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
