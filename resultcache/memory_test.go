package resultcache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/resultcache"
)

func gainRequest(freq float64) engine.FarFieldRequest {
	return engine.FarFieldRequest{
		Frequency:      freq,
		Theta:          []float64{0},
		Phi:            []float64{0},
		Port:           1,
		Quantity:       engine.PlotRealizedGain,
		CoordSystem:    engine.CoordSpherical,
		Polarization:   engine.PolarizationCircular,
		Components:     []string{"theta", "phi"},
		ComponentForms: []engine.ComponentForm{engine.FormAbs, engine.FormAbs},
	}
}

func Test_Key(t *testing.T) {
	req := gainRequest(0.868)
	assert.Equal(t, resultcache.Key(req), resultcache.Key(req))
	assert.NotEqual(t, resultcache.Key(req), resultcache.Key(gainRequest(2.45)))
}

func Test_MemoryCache(t *testing.T) {
	ctx := context.Background()
	c := resultcache.NewMemoryCache()

	req := gainRequest(0.868)
	_, ok := c.Get(ctx, req)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, req, []float64{3.0, 3.0}))
	samples, ok := c.Get(ctx, req)
	require.True(t, ok)
	assert.Equal(t, []float64{3.0, 3.0}, samples)

	// a different query misses
	_, ok = c.Get(ctx, gainRequest(2.45))
	assert.False(t, ok)

	require.NoError(t, c.InvalidateAll(ctx))
	_, ok = c.Get(ctx, req)
	assert.False(t, ok)
}
