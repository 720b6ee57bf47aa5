package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"go-edustream-app/internal/core/ports"
)

type Adapter struct {
	client *redis.Client
}

func NewAdapter(addr string) *Adapter {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Adapter{client: rdb}
}

// Ensure Adapter implements ports.Cache
var _ ports.Cache = (*Adapter)(nil)

const (
	Prefix = "profile:"
	TTL    = 24 * time.Hour
)

func (a *Adapter) Set(ctx context.Context, id string, data []byte) error {
	return a.client.Set(ctx, Prefix+id, data, TTL).Err()
}

// Get returns nil data on a cache miss; redis.Nil never escapes the adapter.
func (a *Adapter) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := a.client.Get(ctx, Prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (a *Adapter) Invalidate(ctx context.Context, id string) error {
	return a.client.Del(ctx, Prefix+id).Err()
}
