// Package cache stores rendered pages keyed by request shape.
//
// Every page of the site is a pure function of (path, selected feature,
// fragment or full page), so a rendered body can be reused until the binary
// changes. Backends are interchangeable behind Cache: an in-process map, redis
// for a fleet sharing one cache, or a no-op.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownBackend is returned when a backend name is not recognised.
var ErrUnknownBackend = errors.New("unknown cache backend")

// Backend names accepted in configuration.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Cache is a byte-slice store with optional per-entry expiry.
// A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
