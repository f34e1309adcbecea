package toolsuite

import (
	"context"
	"time"

	"github.com/effective-security/xlog"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/mcp"
	"github.com/hermes-rf/cstmcp/pkg/metricskey"
)

// SetFrequencyRangeRequest sets the solver frequency range in project
// frequency units.
type SetFrequencyRangeRequest struct {
	FMin float64 `json:"fMin" jsonschema:"required,description=Lower frequency bound."`
	FMax float64 `json:"fMax" jsonschema:"required,description=Upper frequency bound." validate:"gtfield=FMin"`
}

func (s *Suite) setFrequencyRange(ctx context.Context, req *SetFrequencyRangeRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.setFrequencyRange", req, ok("frequency range set", func(ctx context.Context) error {
		return s.prj.Solver.SetFrequencyRange(ctx, req.FMin, req.FMax)
	}))
}

func (s *Suite) getSolverType(ctx context.Context, req *EmptyRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.getSolverType", req, func(ctx context.Context) (string, error) {
		return s.prj.Solver.SolverType(ctx)
	})
}

// ChangeSolverTypeRequest switches the active solver.
type ChangeSolverTypeRequest struct {
	SolverType string `json:"solverType" jsonschema:"required,description=Solver type: HF Time Domain or HF Frequency Domain." validate:"oneof='HF Time Domain' 'HF Frequency Domain'"`
}

func (s *Suite) changeSolverType(ctx context.Context, req *ChangeSolverTypeRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.changeSolverType", req, ok("solver type set to "+req.SolverType, func(ctx context.Context) error {
		return s.prj.Solver.ChangeSolverType(ctx, req.SolverType)
	}))
}

// SetBoundaryConditionRequest sets the condition on each bounding-box face.
type SetBoundaryConditionRequest struct {
	XMin string `json:"xMin" jsonschema:"required,description=Condition on the Xmin face." validate:"required"`
	XMax string `json:"xMax" jsonschema:"required,description=Condition on the Xmax face." validate:"required"`
	YMin string `json:"yMin" jsonschema:"required,description=Condition on the Ymin face." validate:"required"`
	YMax string `json:"yMax" jsonschema:"required,description=Condition on the Ymax face." validate:"required"`
	ZMin string `json:"zMin" jsonschema:"required,description=Condition on the Zmin face." validate:"required"`
	ZMax string `json:"zMax" jsonschema:"required,description=Condition on the Zmax face." validate:"required"`
}

func (s *Suite) setBoundaryCondition(ctx context.Context, req *SetBoundaryConditionRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.setBoundaryCondition", req, ok("boundary conditions set", func(ctx context.Context) error {
		return s.prj.Solver.SetBoundaryCondition(ctx, engine.Boundaries{
			XMin: req.XMin,
			XMax: req.XMax,
			YMin: req.YMin,
			YMax: req.YMax,
			ZMin: req.ZMin,
			ZMax: req.ZMax,
		})
	}))
}

// AddSymmetryPlaneRequest adds a symmetry plane.
type AddSymmetryPlaneRequest struct {
	Normal string `json:"normal" jsonschema:"required,description=Plane normal: x|y|z." validate:"oneof=x y z"`
	Value  string `json:"value" jsonschema:"required,description=Symmetry kind: electric|magnetic|none." validate:"oneof=electric magnetic none"`
}

func (s *Suite) addSymmetryPlane(ctx context.Context, req *AddSymmetryPlaneRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.addSymmetryPlane", req, ok("symmetry plane set", func(ctx context.Context) error {
		return s.prj.Solver.AddSymmetryPlane(ctx, req.Normal, req.Value)
	}))
}

// AddFieldMonitorRequest adds a field monitor at one frequency.
type AddFieldMonitorRequest struct {
	Kind      string  `json:"kind" jsonschema:"required,description=Monitor kind: Efield|Hfield|Farfield|Powerflow|Energy." validate:"oneof=Efield Hfield Farfield Powerflow Energy"`
	Frequency float64 `json:"frequency" jsonschema:"required,description=Monitor frequency in project frequency units." validate:"gt=0"`
}

func (s *Suite) addFieldMonitor(ctx context.Context, req *AddFieldMonitorRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.addFieldMonitor", req, ok("monitor added", func(ctx context.Context) error {
		return s.prj.Solver.AddFieldMonitor(ctx, req.Kind, req.Frequency)
	}))
}

// SetBackgroundMaterialRequest sets the material around the model.
type SetBackgroundMaterialRequest struct {
	Kind string  `json:"kind" jsonschema:"required,description=Background kind: normal|pec|vacuum." validate:"oneof=normal pec vacuum"`
	Eps  float64 `json:"eps" jsonschema:"description=Relative permittivity for kind normal." validate:"gte=0"`
	Mu   float64 `json:"mu" jsonschema:"description=Relative permeability for kind normal." validate:"gte=0"`
}

func (s *Suite) setBackgroundMaterial(ctx context.Context, req *SetBackgroundMaterialRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.setBackgroundMaterial", req, ok("background material set", func(ctx context.Context) error {
		return s.prj.Solver.SetBackgroundMaterial(ctx, engine.BackgroundMaterial{
			Kind: req.Kind,
			Eps:  req.Eps,
			Mu:   req.Mu,
		})
	}))
}

// SetBackgroundLimitsRequest pads the bounding box around the model.
type SetBackgroundLimitsRequest struct {
	XMin float64 `json:"xMin" jsonschema:"description=Padding beyond the Xmin face." validate:"gte=0"`
	XMax float64 `json:"xMax" jsonschema:"description=Padding beyond the Xmax face." validate:"gte=0"`
	YMin float64 `json:"yMin" jsonschema:"description=Padding beyond the Ymin face." validate:"gte=0"`
	YMax float64 `json:"yMax" jsonschema:"description=Padding beyond the Ymax face." validate:"gte=0"`
	ZMin float64 `json:"zMin" jsonschema:"description=Padding beyond the Zmin face." validate:"gte=0"`
	ZMax float64 `json:"zMax" jsonschema:"description=Padding beyond the Zmax face." validate:"gte=0"`
}

func (s *Suite) setBackgroundLimits(ctx context.Context, req *SetBackgroundLimitsRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.setBackgroundLimits", req, ok("background limits set", func(ctx context.Context) error {
		return s.prj.Solver.SetBackgroundLimits(ctx, engine.BackgroundLimits{
			XMin: req.XMin,
			XMax: req.XMax,
			YMin: req.YMin,
			YMax: req.YMax,
			ZMin: req.ZMin,
			ZMax: req.ZMax,
		})
	}))
}

// DefineFloquetModesRequest configures the Floquet port mode set.
type DefineFloquetModesRequest struct {
	NModes         int     `json:"nModes" jsonschema:"required,description=Number of Floquet modes." validate:"gte=1"`
	Theta          float64 `json:"theta" jsonschema:"description=Scan angle theta in degrees."`
	Phi            float64 `json:"phi" jsonschema:"description=Scan angle phi in degrees."`
	ForcePolar     bool    `json:"forcePolar" jsonschema:"description=Force a fixed polarization."`
	PolarAngle     float64 `json:"polarAngle" jsonschema:"description=Polarization angle in degrees when forced."`
	DetailsVisible bool    `json:"detailsVisible" jsonschema:"description=Show mode details in the navigation tree."`
}

func (s *Suite) defineFloquetModes(ctx context.Context, req *DefineFloquetModesRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.defineFloquetModes", req, ok("floquet modes defined", func(ctx context.Context) error {
		return s.prj.Solver.DefineFloquetModes(ctx, engine.FloquetModes{
			NModes:         req.NModes,
			Theta:          req.Theta,
			Phi:            req.Phi,
			ForcePolar:     req.ForcePolar,
			PolarAngle:     req.PolarAngle,
			DetailsVisible: req.DetailsVisible,
		})
	}))
}

func (s *Suite) runSimulation(ctx context.Context, req *EmptyRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Solver.runSimulation", req, ok("simulation finished", func(ctx context.Context) error {
		solverType, err := s.prj.Solver.SolverType(ctx)
		if err != nil {
			solverType = "unknown"
		}

		started := time.Now()
		if err := s.prj.Solver.Run(ctx); err != nil {
			return err
		}
		metricskey.PerfSolverRun.MeasureSince(started, solverType)

		// a new solve invalidates every cached result
		if s.cache != nil {
			if err := s.cache.InvalidateAll(ctx); err != nil {
				logger.ContextKV(ctx, xlog.ERROR, "reason", "invalidate cache", "err", err.Error())
			}
		}
		return nil
	}))
}

// AddWaveguidePortRequest defines a waveguide port on a box face.
type AddWaveguidePortRequest struct {
	XMin        float64 `json:"xMin" jsonschema:"description=Port extent lower X."`
	XMax        float64 `json:"xMax" jsonschema:"description=Port extent upper X."`
	YMin        float64 `json:"yMin" jsonschema:"description=Port extent lower Y."`
	YMax        float64 `json:"yMax" jsonschema:"description=Port extent upper Y."`
	ZMin        float64 `json:"zMin" jsonschema:"description=Port extent lower Z."`
	ZMax        float64 `json:"zMax" jsonschema:"description=Port extent upper Z."`
	Orientation string  `json:"orientation" jsonschema:"required,description=Face carrying the port: xmin|xmax|ymin|ymax|zmin|zmax." validate:"oneof=xmin xmax ymin ymax zmin zmax"`
	NModes      int     `json:"nModes" jsonschema:"required,description=Number of port modes." validate:"gte=1"`
}

func (s *Suite) addWaveguidePort(ctx context.Context, req *AddWaveguidePortRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Port.addWaveguidePort", req, ok("waveguide port added", func(ctx context.Context) error {
		return s.prj.Solver.AddWaveguidePort(ctx, engine.WaveguidePort{
			XMin:        req.XMin,
			XMax:        req.XMax,
			YMin:        req.YMin,
			YMax:        req.YMax,
			ZMin:        req.ZMin,
			ZMax:        req.ZMax,
			Orientation: req.Orientation,
			NModes:      req.NModes,
		})
	}))
}

// AddDiscretePortRequest defines a lumped port between two points.
type AddDiscretePortRequest struct {
	X1        float64 `json:"x1" jsonschema:"description=First point X."`
	Y1        float64 `json:"y1" jsonschema:"description=First point Y."`
	Z1        float64 `json:"z1" jsonschema:"description=First point Z."`
	X2        float64 `json:"x2" jsonschema:"description=Second point X."`
	Y2        float64 `json:"y2" jsonschema:"description=Second point Y."`
	Z2        float64 `json:"z2" jsonschema:"description=Second point Z."`
	Impedance float64 `json:"impedance" jsonschema:"required,description=Port impedance in Ohm." validate:"gt=0"`
	Radius    float64 `json:"radius" jsonschema:"description=Wire radius of the port." validate:"gte=0"`
}

func (s *Suite) addDiscretePort(ctx context.Context, req *AddDiscretePortRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Port.addDiscretePort", req, ok("discrete port added", func(ctx context.Context) error {
		return s.prj.Solver.AddDiscretePort(ctx, engine.DiscretePort{
			X1:        req.X1,
			Y1:        req.Y1,
			Z1:        req.Z1,
			X2:        req.X2,
			Y2:        req.Y2,
			Z2:        req.Z2,
			Impedance: req.Impedance,
			Radius:    req.Radius,
		})
	}))
}
