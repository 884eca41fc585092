package cache

import (
	"context"
	"time"
)

// Store is a string key-value cache with per-entry expiration
type Store interface {
	// Get returns the value and true, or "" and false on a miss
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Incr atomically adds one to the integer stored under key and returns
	// the new value. A missing or expired key starts at 1 and expires after
	// ttl; later increments keep the original expiry.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Delete removes keys; missing keys are ignored
	Delete(ctx context.Context, keys ...string) error

	// Close releases the underlying resources
	Close() error
}
