// Package farfield derives scalar antenna metrics from boresight farfield
// samples: total realized gain in dBi and polarization axial ratio in dB.
// Both operations validate their inputs, issue exactly one engine query,
// and reduce the two returned polarization magnitudes with a fixed formula.
package farfield

import (
	"context"
	"math"

	"github.com/effective-security/xlog"
	"github.com/hermes-rf/cstmcp/engine"
)

var logger = xlog.NewPackageLogger("github.com/hermes-rf/cstmcp", "farfield")

// Defaults match the farfield monitor the reference antenna projects
// define: the 868 MHz ISM band, first port, single-mode excitation.
const (
	DefaultFrequency = 0.868
	DefaultPort      = 1
	DefaultMode      = 0
)

// axialRatioFloor keeps the axial-ratio denominator positive when the two
// circular components are exactly equal (perfect circular polarization).
// The result stays a large finite dB value instead of +Inf or NaN.
const axialRatioFloor = 1e-300

type query struct {
	freq float64
	port int
	mode int
}

// Option overrides one of the query defaults.
type Option func(*query)

// WithFrequency sets the target frequency, in the project frequency unit.
func WithFrequency(freq float64) Option {
	return func(q *query) { q.freq = freq }
}

// WithPort sets the excitation port number. Ports count from 1.
func WithPort(port int) Option {
	return func(q *query) { q.port = port }
}

// WithMode sets the port mode number. Use 0 for single-mode ports.
func WithMode(mode int) Option {
	return func(q *query) { q.mode = mode }
}

func newQuery(opts []Option) query {
	q := query{
		freq: DefaultFrequency,
		port: DefaultPort,
		mode: DefaultMode,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// validateInputs guards the metric operations before any engine call is
// made. It is pure: acceptance is silent, rejection reports the first
// violated constraint.
func validateInputs(prj *engine.Project, q query) error {
	if prj == nil || prj.Results == nil {
		return engine.InvalidArgumentf("project must be provided")
	}
	if math.IsNaN(q.freq) || math.IsInf(q.freq, 0) {
		return engine.InvalidArgumentf("target frequency must be a real number")
	}
	if q.port < 1 {
		return engine.OutOfRangef("port must be >= 1")
	}
	if q.mode < 0 {
		return engine.OutOfRangef("mode must be >= 0")
	}
	return nil
}

// boresightComponents issues the single engine query shared by both
// metrics and extracts the two requested component magnitudes.
func boresightComponents(ctx context.Context, prj *engine.Project, req engine.FarFieldRequest) (float64, float64, error) {
	res, err := prj.Results.FarField(ctx, req)
	if err != nil {
		return 0, 0, engine.WrapEngineFailure(err, "failed to retrieve farfield data")
	}
	if len(res) < 2 {
		return 0, 0, engine.IncompleteResultsf("farfield results are empty or incomplete")
	}
	first, second := res[0], res[1]
	if math.IsNaN(first) || math.IsInf(first, 0) || math.IsNaN(second) || math.IsInf(second, 0) {
		return 0, 0, engine.ParseFailuref("could not extract %s/%s components from farfield results",
			req.Components[0], req.Components[1])
	}
	return first, second, nil
}

// GainAtFreq returns the total realized gain in dBi at boresight
// (theta=0, phi=0) for the farfield monitor at the target frequency.
// The project must already be solved with a monitor at that frequency.
//
// The engine reports the theta- and phi-polarised realized gain in dB;
// total gain is their incoherent power sum, so the components are
// converted to linear scale before summing:
//
//	gain = 10*log10(10^(gTheta/10) + 10^(gPhi/10))
func GainAtFreq(ctx context.Context, prj *engine.Project, opts ...Option) (float64, error) {
	q := newQuery(opts)
	if err := validateInputs(prj, q); err != nil {
		return 0, err
	}

	gTheta, gPhi, err := boresightComponents(ctx, prj, engine.FarFieldRequest{
		Frequency:      q.freq,
		Theta:          []float64{0},
		Phi:            []float64{0},
		Port:           q.port,
		Mode:           q.mode,
		Quantity:       engine.PlotRealizedGain,
		CoordSystem:    engine.CoordSpherical,
		Polarization:   engine.PolarizationCircular,
		Components:     []string{"theta", "phi"},
		ComponentForms: []engine.ComponentForm{engine.FormAbs, engine.FormAbs},
		LinearScale:    false,
	})
	if err != nil {
		return 0, err
	}

	gain := 10 * math.Log10(math.Pow(10, gTheta/10)+math.Pow(10, gPhi/10))
	logger.ContextKV(ctx, xlog.DEBUG,
		"freq", q.freq,
		"port", q.port,
		"mode", q.mode,
		"gain_dBi", gain,
	)
	return gain, nil
}

// AxialRatioAtFreq returns the polarization axial ratio in dB at
// boresight (theta=0, phi=0) for the farfield monitor at the target
// frequency. 0 dB means one circular component carries all the field;
// the ratio grows without bound as the two components approach equality.
//
// The engine reports the right- and left-hand circular electric field
// magnitudes in linear scale; axial ratio is the field ratio
//
//	ar = 20*log10((emax + emin) / (emax - emin))
//
// with the denominator floored to keep the function total when the two
// components are equal.
func AxialRatioAtFreq(ctx context.Context, prj *engine.Project, opts ...Option) (float64, error) {
	q := newQuery(opts)
	if err := validateInputs(prj, q); err != nil {
		return 0, err
	}

	right, left, err := boresightComponents(ctx, prj, engine.FarFieldRequest{
		Frequency:      q.freq,
		Theta:          []float64{0},
		Phi:            []float64{0},
		Port:           q.port,
		Mode:           q.mode,
		Quantity:       engine.PlotEField,
		CoordSystem:    engine.CoordSpherical,
		Polarization:   engine.PolarizationCircular,
		Components:     []string{"right", "left"},
		ComponentForms: []engine.ComponentForm{engine.FormAbs, engine.FormAbs},
		LinearScale:    true,
	})
	if err != nil {
		return 0, err
	}

	emax, emin := right, left
	if emin > emax {
		emax, emin = emin, emax
	}
	ar := 20 * math.Log10((emax+emin)/math.Max(emax-emin, axialRatioFloor))
	logger.ContextKV(ctx, xlog.DEBUG,
		"freq", q.freq,
		"port", q.port,
		"mode", q.mode,
		"axial_ratio_dB", ar,
	)
	return ar, nil
}
