package resultcache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	rediscon "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/hermes-rf/cstmcp/resultcache"
)

func Test_RedisCache(t *testing.T) {
	ctx := context.Background()
	redisContainer, err := rediscon.Run(ctx, "redis:7",
		testcontainers.WithConfigModifier(func(config *container.Config) {
			config.Env = []string{
				"ALLOW_EMPTY_PASSWORD=yes",
				"REDIS_PASSWORD=redis",
				"REDIS_TLS_PORT=16379",
			}
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, redisContainer.Terminate(ctx))
	})

	state, err := redisContainer.State(ctx)
	require.NoError(t, err)
	require.True(t, state.Running)

	root := fmt.Sprintf("test-%d", time.Now().Unix())

	host, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	options, err := redis.ParseURL(host)
	require.NoError(t, err)

	client := redis.NewClient(options)

	rs := client.Ping(ctx) // Ensure the connection is established
	require.NoError(t, rs.Err(), "failed to connect to Redis")

	c := resultcache.NewRedisCache(client, root, 0)

	req1 := gainRequest(0.868)
	req2 := gainRequest(2.45)

	_, ok := c.Get(ctx, req1)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, req1, []float64{3.0, 3.0}))
	require.NoError(t, c.Put(ctx, req2, []float64{2.0, 0.0}))

	samples, ok := c.Get(ctx, req1)
	require.True(t, ok)
	assert.Equal(t, []float64{3.0, 3.0}, samples)

	samples, ok = c.Get(ctx, req2)
	require.True(t, ok)
	assert.Equal(t, []float64{2.0, 0.0}, samples)

	require.NoError(t, c.InvalidateAll(ctx))
	_, ok = c.Get(ctx, req1)
	assert.False(t, ok)
	_, ok = c.Get(ctx, req2)
	assert.False(t, ok)
}
