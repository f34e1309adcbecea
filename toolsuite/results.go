package toolsuite

import (
	"context"
	"strconv"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/farfield"
	"github.com/hermes-rf/cstmcp/mcp"
	"github.com/hermes-rf/cstmcp/utils"
)

// GetSParametersRequest selects one S-parameter trace of the last solve.
type GetSParametersRequest struct {
	PortA int `json:"portA" jsonschema:"required,description=Observed port. 0 addresses Floquet ports; -1 requests all combinations." validate:"gte=-1"`
	PortB int `json:"portB" jsonschema:"required,description=Excited port. 0 addresses Floquet ports; -1 requests all combinations." validate:"gte=-1"`
	RunID int `json:"runID" jsonschema:"description=Parameter-sweep run; 0 for the current run." validate:"gte=0"`
}

func (s *Suite) getSParameters(ctx context.Context, req *GetSParametersRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Results.getSParameters", req, func(ctx context.Context) (string, error) {
		points, err := s.prj.Results.SParameters(ctx, engine.SParameterRequest{
			PortA: req.PortA,
			PortB: req.PortB,
			RunID: req.RunID,
		})
		if err != nil {
			return "", err
		}
		return utils.ToJSON(points), nil
	})
}

// GetFarFieldRequest reads farfield component magnitudes at a set of
// directions from a solved monitor.
type GetFarFieldRequest struct {
	Frequency      float64   `json:"frequency" jsonschema:"required,description=Monitor frequency in project frequency units."`
	Theta          []float64 `json:"theta" jsonschema:"required,description=Theta angles in degrees; one per direction." validate:"min=1"`
	Phi            []float64 `json:"phi" jsonschema:"required,description=Phi angles in degrees; one per direction." validate:"min=1"`
	Port           int       `json:"port" jsonschema:"description=Excitation port (default 1)." validate:"gte=0"`
	Mode           int       `json:"mode" jsonschema:"description=Port mode; 0 for all modes." validate:"gte=0"`
	PlotQuantity   string    `json:"plotQuantity" jsonschema:"description=Quantity to read such as realized gain or efield."`
	Polarization   string    `json:"polarizationBasis" jsonschema:"description=Polarization decomposition: linear|circular|slant."`
	Components     []string  `json:"components" jsonschema:"required,description=Component per returned value such as theta or phi or right or left." validate:"min=1"`
	ComponentForms []string  `json:"componentForm" jsonschema:"description=Complex form per component: abs|phase|real|imaginary."`
	UseLinearScale bool      `json:"useLinearScale" jsonschema:"description=Return linear magnitudes instead of dB."`
}

func (s *Suite) getFarField(ctx context.Context, req *GetFarFieldRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Results.getFarField", req, func(ctx context.Context) (string, error) {
		if len(req.Theta) != len(req.Phi) {
			return "", engine.InvalidArgumentf("theta and phi must have the same length")
		}

		forms := make([]engine.ComponentForm, 0, len(req.Components))
		for i := range req.Components {
			if i < len(req.ComponentForms) {
				forms = append(forms, engine.ComponentForm(req.ComponentForms[i]))
			} else {
				forms = append(forms, engine.FormAbs)
			}
		}

		quantity := engine.PlotQuantity(req.PlotQuantity)
		if quantity == "" {
			quantity = engine.PlotRealizedGain
		}
		port := req.Port
		if port == 0 {
			port = 1
		}

		samples, err := s.prj.Results.FarField(ctx, engine.FarFieldRequest{
			Frequency:      req.Frequency,
			Theta:          req.Theta,
			Phi:            req.Phi,
			Port:           port,
			Mode:           req.Mode,
			Quantity:       quantity,
			CoordSystem:    engine.CoordSpherical,
			Polarization:   engine.PolarizationBasis(req.Polarization),
			Components:     req.Components,
			ComponentForms: forms,
			LinearScale:    req.UseLinearScale,
		})
		if err != nil {
			return "", err
		}
		return utils.ToJSON(samples), nil
	})
}

// BoresightMetricRequest selects the monitor and excitation for a
// boresight farfield metric. Zero values fall back to the tool defaults:
// 0.868 for frequency, port 1, mode 0 (all modes).
type BoresightMetricRequest struct {
	Frequency float64 `json:"frequency" jsonschema:"description=Monitor frequency in project frequency units (default 0.868)."`
	Port      int     `json:"port" jsonschema:"description=Excitation port (default 1)."`
	Mode      int     `json:"mode" jsonschema:"description=Port mode; 0 for all modes."`
}

func (req *BoresightMetricRequest) options() []farfield.Option {
	var opts []farfield.Option
	if req.Frequency != 0 {
		opts = append(opts, farfield.WithFrequency(req.Frequency))
	}
	if req.Port != 0 {
		opts = append(opts, farfield.WithPort(req.Port))
	}
	if req.Mode != 0 {
		opts = append(opts, farfield.WithMode(req.Mode))
	}
	return opts
}

func (s *Suite) getGainAtFreq(ctx context.Context, req *BoresightMetricRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "get_gain_at_freq", req, func(ctx context.Context) (string, error) {
		gain, err := farfield.GainAtFreq(ctx, s.prj, req.options()...)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(gain, 'g', -1, 64), nil
	})
}

func (s *Suite) getAxialRatioAtFreq(ctx context.Context, req *BoresightMetricRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "get_axial_ratio_at_freq", req, func(ctx context.Context) (string, error) {
		ar, err := farfield.AxialRatioAtFreq(ctx, s.prj, req.options()...)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(ar, 'g', -1, 64), nil
	})
}
