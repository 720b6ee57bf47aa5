package observability

import (
	"context"

	"go-edustream-app/internal/core/ports"
)

// InstrumentedCache is a decorator to intercept cache calls and record metrics.
type InstrumentedCache struct {
	inner ports.Cache
}

// NewInstrumentedCache creates a new instrumented cache wrapper.
func NewInstrumentedCache(inner ports.Cache) *InstrumentedCache {
	return &InstrumentedCache{inner: inner}
}

var _ ports.Cache = (*InstrumentedCache)(nil)

func (c *InstrumentedCache) Set(ctx context.Context, id string, data []byte) error {
	return c.inner.Set(ctx, id, data)
}

func (c *InstrumentedCache) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := c.inner.Get(ctx, id)
	if err == nil {
		if data != nil {
			profileCacheHits.Inc()
		} else {
			profileCacheMisses.Inc()
		}
	}
	return data, err
}

func (c *InstrumentedCache) Invalidate(ctx context.Context, id string) error {
	return c.inner.Invalidate(ctx, id)
}
