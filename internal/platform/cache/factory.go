package cache

import (
	"context"
	"log/slog"

	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
)

// NewReportCache returns a Redis-backed cache when an address is configured
// and reachable, otherwise it falls back to the in-memory cache.
func NewReportCache(ctx context.Context, addr, password string, db int) portsrepo.ReportCache {
	if addr == "" {
		slog.Info("Redis not configured, using in-memory report cache")
		return NewMemoryReportCache()
	}
	redisCache, err := NewRedisReportCache(ctx, addr, password, db)
	if err != nil {
		slog.Warn("Redis unreachable, falling back to in-memory report cache",
			slog.String("addr", addr), slog.String("error", err.Error()))
		return NewMemoryReportCache()
	}
	slog.Info("Redis report cache connected", slog.String("addr", addr))
	return redisCache
}
