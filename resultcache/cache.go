// Package resultcache caches solved farfield sample vectors. A farfield
// query is pure with respect to one solver run, so entries stay valid until
// the next run; callers invalidate the whole cache after Solver.Run.
package resultcache

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/effective-security/xlog"

	"github.com/hermes-rf/cstmcp/engine"
)

var logger = xlog.NewPackageLogger("github.com/hermes-rf/cstmcp", "resultcache")

// Cache stores sample vectors keyed by the query that produced them.
type Cache interface {
	// Get returns the cached samples for req, or ok=false on a miss.
	Get(ctx context.Context, req engine.FarFieldRequest) (samples []float64, ok bool)
	// Put stores the samples for req.
	Put(ctx context.Context, req engine.FarFieldRequest, samples []float64) error
	// InvalidateAll drops every entry. Called after each solver run.
	InvalidateAll(ctx context.Context) error
}

// Key derives the cache key for a farfield request. Struct marshalling is
// deterministic, so the hash is stable for equal requests.
func Key(req engine.FarFieldRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		// FarFieldRequest has no unmarshalable fields; keep the
		// signature simple and treat this as unreachable.
		panic(err)
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
