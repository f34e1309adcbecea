package farfield_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/farfield"
)

type fakeResults struct {
	mu      sync.Mutex
	calls   []engine.FarFieldRequest
	respond func(req engine.FarFieldRequest) ([]float64, error)
}

func (f *fakeResults) FarField(_ context.Context, req engine.FarFieldRequest) ([]float64, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	return f.respond(req)
}

func (f *fakeResults) SParameters(_ context.Context, _ engine.SParameterRequest) ([]engine.SParameterPoint, error) {
	return nil, nil
}

func (f *fakeResults) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newProject(respond func(req engine.FarFieldRequest) ([]float64, error)) (*engine.Project, *fakeResults) {
	res := &fakeResults{respond: respond}
	return &engine.Project{Results: res}, res
}

func constResponse(values ...float64) func(engine.FarFieldRequest) ([]float64, error) {
	return func(engine.FarFieldRequest) ([]float64, error) {
		return values, nil
	}
}

func Test_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := farfield.GainAtFreq(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidArgument))

	prj, res := newProject(constResponse(1, 1))

	tcases := []struct {
		name string
		opts []farfield.Option
		kind error
	}{
		{"nan_freq", []farfield.Option{farfield.WithFrequency(math.NaN())}, engine.ErrInvalidArgument},
		{"inf_freq", []farfield.Option{farfield.WithFrequency(math.Inf(1))}, engine.ErrInvalidArgument},
		{"neg_inf_freq", []farfield.Option{farfield.WithFrequency(math.Inf(-1))}, engine.ErrInvalidArgument},
		{"zero_port", []farfield.Option{farfield.WithPort(0)}, engine.ErrOutOfRange},
		{"negative_port", []farfield.Option{farfield.WithPort(-3)}, engine.ErrOutOfRange},
		{"negative_mode", []farfield.Option{farfield.WithMode(-1)}, engine.ErrOutOfRange},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := farfield.GainAtFreq(ctx, prj, tc.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "unexpected error kind: %v", err)

			_, err = farfield.AxialRatioAtFreq(ctx, prj, tc.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "unexpected error kind: %v", err)
		})
	}

	// rejected requests must never reach the engine
	assert.Equal(t, 0, res.callCount())

	// large port numbers and zero mode are fine
	_, err = farfield.GainAtFreq(ctx, prj, farfield.WithPort(128), farfield.WithMode(0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.callCount())
}

func Test_GainAtFreq(t *testing.T) {
	ctx := context.Background()

	prj, res := newProject(constResponse(3.0, 3.0))

	gain, err := farfield.GainAtFreq(ctx, prj)
	require.NoError(t, err)

	exp := 10 * math.Log10(2*math.Pow(10, 0.3))
	assert.InDelta(t, exp, gain, 1e-6)
	assert.InDelta(t, 6.0103, gain, 1e-3)

	// the query must ask for both polarization components of the realized
	// gain at boresight, in dB scale, with the documented defaults
	require.Equal(t, 1, res.callCount())
	req := res.calls[0]
	assert.Equal(t, []float64{0}, req.Theta)
	assert.Equal(t, []float64{0}, req.Phi)
	assert.InDelta(t, farfield.DefaultFrequency, req.Frequency, 0)
	assert.Equal(t, farfield.DefaultPort, req.Port)
	assert.Equal(t, farfield.DefaultMode, req.Mode)
	assert.Equal(t, engine.PlotRealizedGain, req.Quantity)
	assert.Equal(t, engine.CoordSpherical, req.CoordSystem)
	assert.Equal(t, engine.PolarizationCircular, req.Polarization)
	assert.Equal(t, []string{"theta", "phi"}, req.Components)
	assert.Equal(t, []engine.ComponentForm{engine.FormAbs, engine.FormAbs}, req.ComponentForms)
	assert.False(t, req.LinearScale)
}

func Test_GainAtFreq_Symmetry(t *testing.T) {
	ctx := context.Background()

	prjA, _ := newProject(constResponse(-2.5, 7.25))
	prjB, _ := newProject(constResponse(7.25, -2.5))

	gainA, err := farfield.GainAtFreq(ctx, prjA)
	require.NoError(t, err)
	gainB, err := farfield.GainAtFreq(ctx, prjB)
	require.NoError(t, err)

	assert.InDelta(t, gainA, gainB, 1e-12)
}

func Test_AxialRatioAtFreq(t *testing.T) {
	ctx := context.Background()

	t.Run("equal_components", func(t *testing.T) {
		// the floored denominator must produce a very large finite value,
		// not an infinity, a NaN or a panic
		prj, res := newProject(constResponse(1.0, 1.0))
		ar, err := farfield.AxialRatioAtFreq(ctx, prj)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(ar))
		assert.False(t, math.IsInf(ar, 0))
		assert.Greater(t, ar, 1000.0)

		req := res.calls[0]
		assert.Equal(t, engine.PlotEField, req.Quantity)
		assert.Equal(t, []string{"right", "left"}, req.Components)
		assert.True(t, req.LinearScale)
	})

	t.Run("single_component", func(t *testing.T) {
		prj, _ := newProject(constResponse(2.0, 0.0))
		ar, err := farfield.AxialRatioAtFreq(ctx, prj)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, ar, 1e-12)
	})

	t.Run("component_order_independent", func(t *testing.T) {
		prjA, _ := newProject(constResponse(0.25, 1.5))
		prjB, _ := newProject(constResponse(1.5, 0.25))

		arA, err := farfield.AxialRatioAtFreq(ctx, prjA)
		require.NoError(t, err)
		arB, err := farfield.AxialRatioAtFreq(ctx, prjB)
		require.NoError(t, err)
		assert.InDelta(t, arA, arB, 1e-12)

		exp := 20 * math.Log10((1.5+0.25)/(1.5-0.25))
		assert.InDelta(t, exp, arA, 1e-6)
	})
}

func Test_IncompleteResults(t *testing.T) {
	ctx := context.Background()

	for _, values := range [][]float64{nil, {}, {4.25}} {
		prj, _ := newProject(constResponse(values...))

		_, err := farfield.GainAtFreq(ctx, prj)
		require.Error(t, err)
		assert.True(t, errors.Is(err, engine.ErrIncompleteResults), "unexpected error kind: %v", err)

		_, err = farfield.AxialRatioAtFreq(ctx, prj)
		require.Error(t, err)
		assert.True(t, errors.Is(err, engine.ErrIncompleteResults), "unexpected error kind: %v", err)
	}
}

func Test_EngineFailure(t *testing.T) {
	ctx := context.Background()

	prj, _ := newProject(func(engine.FarFieldRequest) ([]float64, error) {
		return nil, errors.New("no farfield monitor defined at 0.868")
	})

	_, err := farfield.GainAtFreq(ctx, prj)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrEngineFailure))
	assert.Contains(t, err.Error(), "no farfield monitor defined at 0.868")

	_, err = farfield.AxialRatioAtFreq(ctx, prj)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrEngineFailure))
	assert.Contains(t, err.Error(), "no farfield monitor defined at 0.868")
}

func Test_ParseFailure(t *testing.T) {
	ctx := context.Background()

	for _, values := range [][]float64{
		{math.NaN(), 1.0},
		{1.0, math.NaN()},
		{math.Inf(1), 1.0},
		{1.0, math.Inf(-1)},
	} {
		prj, _ := newProject(constResponse(values...))

		_, err := farfield.GainAtFreq(ctx, prj)
		require.Error(t, err)
		assert.True(t, errors.Is(err, engine.ErrParseFailure), "unexpected error kind: %v", err)

		_, err = farfield.AxialRatioAtFreq(ctx, prj)
		require.Error(t, err)
		assert.True(t, errors.Is(err, engine.ErrParseFailure), "unexpected error kind: %v", err)
	}
}

func Test_ConcurrentQueries(t *testing.T) {
	ctx := context.Background()

	// the metric functions hold no shared state: a frequency sweep running
	// gain and axial-ratio extractions in parallel must yield the same
	// values as the sequential run
	prj, _ := newProject(func(req engine.FarFieldRequest) ([]float64, error) {
		if req.Quantity == engine.PlotRealizedGain {
			return []float64{req.Frequency, req.Frequency}, nil
		}
		return []float64{2 * req.Frequency, 0}, nil
	})

	freqs := []float64{0.4, 0.868, 1.2, 2.45, 5.8}

	var wg sync.WaitGroup
	gains := make([]float64, len(freqs))
	ratios := make([]float64, len(freqs))
	for i, f := range freqs {
		wg.Add(2)
		go func() {
			defer wg.Done()
			g, err := farfield.GainAtFreq(ctx, prj, farfield.WithFrequency(f))
			assert.NoError(t, err)
			gains[i] = g
		}()
		go func() {
			defer wg.Done()
			ar, err := farfield.AxialRatioAtFreq(ctx, prj, farfield.WithFrequency(f))
			assert.NoError(t, err)
			ratios[i] = ar
		}()
	}
	wg.Wait()

	for i, f := range freqs {
		expGain := 10 * math.Log10(2*math.Pow(10, f/10))
		assert.InDelta(t, expGain, gains[i], 1e-9, "freq %v", f)
		assert.InDelta(t, 0.0, ratios[i], 1e-9, "freq %v", f)
	}
}
