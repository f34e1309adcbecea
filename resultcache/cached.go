package resultcache

import (
	"context"

	"github.com/effective-security/xlog"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/pkg/metricskey"
)

type cachedResults struct {
	next    engine.ResultsService
	cache   Cache
	backend string
}

// WithCache wraps a ResultsService so that farfield queries are answered
// from the cache when possible. backend labels the cache in metrics
// ("memory" or "redis"). S-parameter queries pass through uncached.
func WithCache(next engine.ResultsService, cache Cache, backend string) engine.ResultsService {
	return &cachedResults{
		next:    next,
		cache:   cache,
		backend: backend,
	}
}

func (c *cachedResults) FarField(ctx context.Context, req engine.FarFieldRequest) ([]float64, error) {
	if samples, ok := c.cache.Get(ctx, req); ok {
		metricskey.StatsResultCacheHits.IncrCounter(1, c.backend)
		return samples, nil
	}
	metricskey.StatsResultCacheMisses.IncrCounter(1, c.backend)

	samples, err := c.next.FarField(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Put(ctx, req, samples); err != nil {
		// a write failure only costs a future recompute
		logger.ContextKV(ctx, xlog.ERROR, "reason", "cache put", "err", err.Error())
	}
	return samples, nil
}

func (c *cachedResults) SParameters(ctx context.Context, req engine.SParameterRequest) ([]engine.SParameterPoint, error) {
	return c.next.SParameters(ctx, req)
}
