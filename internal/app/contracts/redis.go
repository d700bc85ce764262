package contracts

import (
	"context"
	"time"
)

// RedisRepository is the injected cache abstraction. Schedule reads go
// through it with a short TTL; writes do not evict by default.
type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
