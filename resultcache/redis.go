package resultcache

import (
	"context"
	"encoding/json"
	"path"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/redis/go-redis/v9"

	"github.com/hermes-rf/cstmcp/engine"
)

// The redis cache implements the Cache interface using Redis as the backend,
// so that several server instances pointed at the same project share solved
// results. The keys namespace is organized as follows:
// - `/<prefix>/farfield/<requestHash>` for storing sample vectors

type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache returns a Cache backed by the given Redis client. Entries
// expire after ttl; ttl 0 keeps them until the next invalidation.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) Cache {
	return &redisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (m *redisCache) getRedisSamplesKey(requestHash string) string {
	return path.Join(m.prefix, "farfield", requestHash)
}

func (m *redisCache) Get(ctx context.Context, req engine.FarFieldRequest) ([]float64, bool) {
	key := m.getRedisSamplesKey(Key(req))
	data, err := m.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.ContextKV(ctx, xlog.ERROR, "reason", "GetRedisSamples", "err", err.Error())
		}
		return nil, false
	}

	var samples []float64
	if err := json.Unmarshal([]byte(data), &samples); err != nil {
		logger.ContextKV(ctx, xlog.ERROR, "reason", "unmarshal samples", "err", err.Error())
		return nil, false
	}
	return samples, true
}

func (m *redisCache) Put(ctx context.Context, req engine.FarFieldRequest, samples []float64) error {
	data, err := json.Marshal(samples)
	if err != nil {
		return errors.Wrap(err, "failed to marshal samples")
	}

	key := m.getRedisSamplesKey(Key(req))
	err = m.client.Set(ctx, key, data, m.ttl).Err()
	if err != nil {
		return errors.Wrap(err, "failed to store samples in Redis")
	}
	return nil
}

func (m *redisCache) InvalidateAll(ctx context.Context) error {
	pattern := path.Join(m.prefix, "farfield") + "/*"
	// Use SCAN instead of KEYS for better performance
	iter := m.client.Scan(ctx, 0, pattern, 0).Iterator()

	pipe := m.client.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan farfield keys from Redis")
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete farfield keys from Redis")
	}
	return nil
}
