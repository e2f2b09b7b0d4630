// Package cache provides the advisory cache used by the work-order read
// path. The store stays authoritative: callers treat any cache failure as a
// miss and fall back to the database.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned when a key is absent. Backend failures are reported as
// their own errors so callers can tell a miss from an outage.
var ErrMiss = errors.New("cache: key not found")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
