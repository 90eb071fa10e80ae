package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized evaluations by key. A ttl of zero
// means no expiry.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
