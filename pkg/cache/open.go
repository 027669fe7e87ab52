package cache

import (
	"context"
	"fmt"
)

// Options selects and configures a backend.
type Options struct {
	Backend   string
	RedisAddr string
	RedisDB   int
}

// Open builds the backend named by opts.Backend. An empty name is memory.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryCache(), nil
	case BackendNone:
		return NewNullCache(), nil
	case BackendRedis:
		c, err := NewRedisCache(ctx, opts.RedisAddr, opts.RedisDB)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
