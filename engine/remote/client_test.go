package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/engine/remote"
)

type bridgeCall struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

type fakeBridge struct {
	mu      sync.Mutex
	calls   []bridgeCall
	results map[string]any
	errors  map[string]string
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{
		results: make(map[string]any),
		errors:  make(map[string]string),
	}
}

func (b *fakeBridge) handler(w http.ResponseWriter, r *http.Request) {
	var call bridgeCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	b.calls = append(b.calls, call)
	b.mu.Unlock()

	resp := map[string]any{"id": call.ID}
	if msg, ok := b.errors[call.Method]; ok {
		resp["error"] = map[string]any{"message": msg}
	} else if result, ok := b.results[call.Method]; ok {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (b *fakeBridge) lastCall(t *testing.T) bridgeCall {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.calls)
	return b.calls[len(b.calls)-1]
}

func setup(t *testing.T) (*fakeBridge, *engine.Project) {
	t.Helper()
	bridge := newFakeBridge()
	srv := httptest.NewServer(http.HandlerFunc(bridge.handler))
	t.Cleanup(srv.Close)

	client := remote.NewClient(srv.URL).WithHTTPClient(srv.Client())
	return bridge, client.Project()
}

func Test_BuildCalls(t *testing.T) {
	ctx := context.Background()
	bridge, prj := setup(t)

	err := prj.Build.AddBrick(ctx, engine.Brick{
		Name:      "Patch",
		Component: "component1",
		Material:  "Copper (annealed)",
		XRange:    [2]float64{-20, 20},
		YRange:    [2]float64{-20, 20},
		ZRange:    [2]float64{0, 0.035},
	})
	require.NoError(t, err)

	call := bridge.lastCall(t)
	assert.Equal(t, "Build.Shape.addBrick", call.Method)
	assert.NotEmpty(t, call.ID)

	var spec engine.Brick
	require.NoError(t, json.Unmarshal(call.Params, &spec))
	assert.Equal(t, "Patch", spec.Name)
	assert.Equal(t, [2]float64{0, 0.035}, spec.ZRange)

	err = prj.Build.BooleanSubtract(ctx, "component1:Groundplane", "Coax:CoaxCut")
	require.NoError(t, err)
	assert.Equal(t, "Build.Boolean.subtract", bridge.lastCall(t).Method)
}

func Test_ResultDecoding(t *testing.T) {
	ctx := context.Background()
	bridge, prj := setup(t)

	bridge.results["Results.getFarField"] = []float64{3.5, -1.25}
	values, err := prj.Results.FarField(ctx, engine.FarFieldRequest{
		Frequency:  0.868,
		Theta:      []float64{0},
		Phi:        []float64{0},
		Port:       1,
		Quantity:   engine.PlotRealizedGain,
		Components: []string{"theta", "phi"},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, -1.25}, values)

	bridge.results["Parameter.retrieve"] = 2.05
	value, err := prj.Params.RetrieveParameter(ctx, "consub_outer_rad")
	require.NoError(t, err)
	assert.InDelta(t, 2.05, value, 0)

	bridge.results["Build.Component.exist"] = true
	exists, err := prj.Build.ComponentExists(ctx, "Coax")
	require.NoError(t, err)
	assert.True(t, exists)
}

func Test_BridgeErrors(t *testing.T) {
	ctx := context.Background()
	bridge, prj := setup(t)

	bridge.errors["Solver.runSimulation"] = "solver license not available"
	err := prj.Solver.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrEngineFailure))
	assert.Contains(t, err.Error(), "solver license not available")

	// a result-bearing call answered with neither result nor error is a
	// shape mismatch, not an engine failure
	_, err = prj.Solver.SolverType(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrIncompleteResults))
}

func Test_TransportFailure(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bridge busy", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	prj := remote.NewClient(srv.URL).Project()
	err := prj.File.Save(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrEngineFailure))
	assert.Contains(t, err.Error(), "bridge busy")
}
