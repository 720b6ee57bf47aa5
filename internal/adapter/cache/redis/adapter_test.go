package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisAdapter_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("failed to start redis: %v", err)
	}
	defer func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis: %v", err)
		}
	}()

	endpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// The redis-container module returns a URL like redis://localhost:port
	// but redis.NewClient expects just the host:port.
	addr := endpoint
	if len(addr) > 8 && addr[:8] == "redis://" {
		addr = addr[8:]
	}

	adapter := NewAdapter(addr)
	defer adapter.client.Close()

	t.Run("set and get", func(t *testing.T) {
		data := []byte(`{"name":"Ada","education_institution":"Analytical University"}`)

		err := adapter.Set(ctx, "user-1", data)
		assert.NoError(t, err)

		got, err := adapter.Get(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		got, err := adapter.Get(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalidate", func(t *testing.T) {
		err := adapter.Set(ctx, "user-2", []byte("data"))
		assert.NoError(t, err)

		err = adapter.Invalidate(ctx, "user-2")
		assert.NoError(t, err)

		got, err := adapter.Get(ctx, "user-2")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
