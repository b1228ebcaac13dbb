package cache

import (
	"context"
	"time"
)

// Store is a small key-value cache used for meeting lookups. Implementations
// are best-effort: a failed cache operation never fails the request.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
