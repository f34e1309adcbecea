package resultcache_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hermes-rf/cstmcp/mocks/mockengine"
	"github.com/hermes-rf/cstmcp/resultcache"
)

func Test_CachedResults(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	results := mockengine.NewMockResultsService(ctrl)

	cached := resultcache.WithCache(results, resultcache.NewMemoryCache(), "memory")

	req := gainRequest(0.868)
	results.EXPECT().FarField(ctx, req).Return([]float64{3.0, 3.0}, nil).Times(1)

	samples, err := cached.FarField(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.0, 3.0}, samples)

	// second identical query is served from the cache
	samples, err = cached.FarField(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.0, 3.0}, samples)

	// failures are not cached
	req2 := gainRequest(2.45)
	results.EXPECT().FarField(ctx, req2).Return(nil, errors.New("monitor not found")).Times(2)
	_, err = cached.FarField(ctx, req2)
	assert.EqualError(t, err, "monitor not found")
	_, err = cached.FarField(ctx, req2)
	assert.EqualError(t, err, "monitor not found")
}
