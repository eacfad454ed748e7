// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by CalculationCache.Get when no entry exists for
// the key.
var ErrCacheMiss = errors.New("cache miss")

// CalculationCache caches serialized calculator results keyed by their input
// tuple. Cache failures are advisory: calculators log and recompute, they
// never fail a request on a cache error.
type CalculationCache interface {
	// Get retrieves a cached value, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given time to live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
