package services

import (
	"context"
	"encoding/json"
	"time"

	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
)

// cachedReport wraps a report computation with a short-lived read-through
// cache. The cache never affects correctness: a miss, a stale marshal or a
// nil cache all just mean recomputation from a fresh snapshot.
func cachedReport[T any](ctx context.Context, cache portsrepo.ReportCache, ttl time.Duration, key string, compute func() (*T, error)) (*T, error) {
	if cache != nil {
		if payload, found := cache.Get(ctx, key); found {
			var report T
			if err := json.Unmarshal(payload, &report); err == nil {
				return &report, nil
			}
		}
	}

	report, err := compute()
	if err != nil || report == nil {
		return report, err
	}

	if cache != nil {
		if payload, merr := json.Marshal(report); merr == nil {
			cache.Set(ctx, key, payload, ttl)
		}
	}
	return report, nil
}
