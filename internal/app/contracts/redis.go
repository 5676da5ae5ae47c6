package contracts

import (
	"context"
	"time"
)

// RedisRepository stores values JSON encoded.
type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	DeleteIfValue(ctx context.Context, key string, value interface{}) (bool, error)
	ExpireIfValue(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
