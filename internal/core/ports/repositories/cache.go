package repositories

import (
	"context"
	"time"
)

// ReportCache is a short-lived read-through cache for computed reports,
// keyed by (report kind, period, filters). It is a pure performance
// optimization: a miss or a failure only means recomputation, never an
// incorrect result, because every computation works from its own snapshot.
type ReportCache interface {
	// Get returns the cached payload for key, or found=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, found bool)

	// Set stores payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
}
