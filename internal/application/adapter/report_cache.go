// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ReportCache defines the interface for caching computed team reports.
// Values are opaque JSON blobs; the usecase owns serialization.
type ReportCache interface {
	// Get retrieves a cached report by key. Returns nil without error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a report under the given key with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate removes all cached reports.
	Invalidate(ctx context.Context) error
}
