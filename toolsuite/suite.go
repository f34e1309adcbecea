// Package toolsuite exposes the studio automation object model as MCP
// tools. Each tool is a thin, validated forwarder to one engine call;
// tool names follow the automation objects (Shape.addBrick, Boolean.add,
// Solver.runSimulation) so that agents trained on the VBA and Python
// interfaces recognise them.
package toolsuite

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/go-playground/validator/v10"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/mcp"
	"github.com/hermes-rf/cstmcp/pkg/metricskey"
	"github.com/hermes-rf/cstmcp/resultcache"
	"github.com/hermes-rf/cstmcp/tools"
)

var logger = xlog.NewPackageLogger("github.com/hermes-rf/cstmcp", "toolsuite")

// Suite holds one open project and registers the tool set against an MCP
// server. All handlers share the project handle; the engine serialises
// access to the underlying studio instance.
type Suite struct {
	prj          *engine.Project
	cache        resultcache.Cache
	validate     *validator.Validate
	materialsDir string
}

// Option configures a Suite.
type Option func(*Suite)

// WithResultCache caches farfield sample vectors. The suite wraps the
// project's results service and drops the cache after each solver run.
func WithResultCache(cache resultcache.Cache, backend string) Option {
	return func(s *Suite) {
		s.cache = cache
		prj := *s.prj
		prj.Results = resultcache.WithCache(s.prj.Results, cache, backend)
		s.prj = &prj
	}
}

// WithMaterialsDir exposes the material library directory as a resource.
func WithMaterialsDir(dir string) Option {
	return func(s *Suite) {
		s.materialsDir = dir
	}
}

// NewSuite creates the tool suite over an open project.
func NewSuite(prj *engine.Project, opts ...Option) *Suite {
	s := &Suite{
		prj:      prj,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type registration struct {
	name        string
	description string
	handler     any
}

// RegisterAll registers every tool with the server.
func (s *Suite) RegisterAll(r tools.McpServerRegistrator) error {
	regs := []registration{
		// modeler
		{"Shape.addBrick", "Create an axis-aligned brick solid in a component.", s.addBrick},
		{"Shape.addCylinder", "Create a solid or hollow cylinder along an axis.", s.addCylinder},
		{"Shape.addSphere", "Create a solid or hollow sphere.", s.addSphere},
		{"Shape.addPolygonBlock", "Extrude a closed XY polygon between two Z planes.", s.addPolygonBlock},
		{"Boolean.add", "Boolean-unite two solids; the second solid is consumed.", s.booleanAdd},
		{"Boolean.subtract", "Boolean-subtract the second solid from the first.", s.booleanSubtract},
		{"Boolean.intersect", "Boolean-intersect two solids.", s.booleanIntersect},
		{"Boolean.insert", "Insert the second solid into the first, keeping both.", s.booleanInsert},
		{"Boolean.mergeCommonMaterials", "Merge all solids of a component that share a material.", s.mergeCommonMaterials},
		{"Component.new", "Create a new component folder.", s.newComponent},
		{"Component.delete", "Delete a component and all its solids.", s.deleteComponent},
		{"Component.rename", "Rename a component.", s.renameComponent},
		{"Component.exist", "Report whether a component exists.", s.componentExists},
		{"Component.ensureExistence", "Create a component unless it already exists.", s.ensureComponentExistence},
		{"Material.addNormalMaterial", "Define an isotropic material.", s.addNormalMaterial},
		{"Material.addAnisotropicMaterial", "Define a material with per-axis permittivity and permeability.", s.addAnisotropicMaterial},
		{"Material.addMaterialFromLib", "Load a material from the studio library by name.", s.addMaterialFromLibrary},
		{"Transform.translate", "Translate an object, optionally copying it.", s.translate},
		{"Transform.rotate", "Rotate an object around a center point.", s.rotate},
		{"Transform.mirror", "Mirror an object across a plane.", s.mirror},
		{"Transform.scale", "Scale an object about a center point.", s.scale},
		{"Build.deleteObject", "Delete a named modeler object.", s.deleteObject},

		// parameters and project
		{"Parameter.add", "Add a named project parameter.", s.addParameter},
		{"Parameter.delete", "Delete a project parameter.", s.deleteParameter},
		{"Parameter.exist", "Report whether a project parameter exists.", s.parameterExists},
		{"Parameter.change", "Change the value of an existing project parameter.", s.changeParameter},
		{"Parameter.retrieve", "Read the value of a project parameter.", s.retrieveParameter},
		{"Parameter.addDescription", "Attach a description to a project parameter.", s.addParameterDescription},
		{"Parameter.retrieveDescription", "Read the description of a project parameter.", s.retrieveParameterDescription},
		{"Project.setUnits", "Set the project unit system.", s.setUnits},
		{"CST_MicrowaveStudio.saveFile", "Save the project file.", s.saveFile},
		{"CST_MicrowaveStudio.closeFile", "Close the project file without exiting the studio.", s.closeFile},
		{"CST_MicrowaveStudio.quit", "Close the project and exit the studio.", s.quit},

		// solver and ports
		{"Solver.setFrequencyRange", "Set the solver frequency range.", s.setFrequencyRange},
		{"Solver.getSolverType", "Report the active solver type.", s.getSolverType},
		{"Solver.changeSolverType", "Switch the active solver type.", s.changeSolverType},
		{"Solver.setBoundaryCondition", "Set the boundary condition on each bounding-box face.", s.setBoundaryCondition},
		{"Solver.addSymmetryPlane", "Add a symmetry plane.", s.addSymmetryPlane},
		{"Solver.addFieldMonitor", "Add a field monitor at a frequency.", s.addFieldMonitor},
		{"Solver.setBackgroundMaterial", "Set the background material.", s.setBackgroundMaterial},
		{"Solver.setBackgroundLimits", "Pad the background bounding box.", s.setBackgroundLimits},
		{"Solver.defineFloquetModes", "Configure Floquet port modes for unit-cell solves.", s.defineFloquetModes},
		{"Solver.runSimulation", "Run the solver and wait for completion.", s.runSimulation},
		{"Port.addWaveguidePort", "Define a waveguide port on a box face.", s.addWaveguidePort},
		{"Port.addDiscretePort", "Define a lumped port between two points.", s.addDiscretePort},

		// results
		{"Results.getSParameters", "Read an S-parameter trace of the last solve.", s.getSParameters},
		{"Results.getFarField", "Read farfield component magnitudes at given directions.", s.getFarField},
		{"get_gain_at_freq", "Total realized gain in dB at boresight for a solved farfield monitor.", s.getGainAtFreq},
		{"get_axial_ratio_at_freq", "Axial ratio in dB at boresight for a solved farfield monitor.", s.getAxialRatioAtFreq},

		// assemblies
		{"create_coax_and_port", "Build a vertical coaxial feed with its waveguide port in one call.", s.createCoaxAndPort},
	}

	for _, reg := range regs {
		if err := r.RegisterTool(reg.name, reg.description, reg.handler); err != nil {
			return errors.WithMessagef(err, "failed to register tool %s", reg.name)
		}
	}
	return nil
}

// RegisterResources registers the suite's resources with the server.
func (s *Suite) RegisterResources(srv *mcp.Server) error {
	if s.materialsDir == "" {
		return nil
	}
	return srv.RegisterResource(
		"materials_dir",
		"materials_dir",
		"Directory holding the importable material library files.",
		"text/plain",
		func() (*mcp.ResourceResponse, error) {
			return mcp.NewResourceResponse(
				mcp.NewTextEmbeddedResource("materials_dir", s.materialsDir, "text/plain"),
			), nil
		},
	)
}

// exec validates the request, runs the engine call and accounts for it.
// Validation failures never reach the engine.
func (s *Suite) exec(ctx context.Context, tool string, req any, call func(context.Context) (string, error)) (*mcp.ToolResponse, error) {
	started := time.Now()
	defer metricskey.PerfToolCall.MeasureSince(started, tool)

	if err := s.validate.StructCtx(ctx, req); err != nil {
		metricskey.StatsToolCallsRejected.IncrCounter(1, tool)
		return nil, errors.Mark(errors.WithMessagef(err, "invalid arguments"), engine.ErrInvalidArgument)
	}

	out, err := call(ctx)
	if err != nil {
		metricskey.StatsToolCallsFailed.IncrCounter(1, tool)
		logger.ContextKV(ctx, xlog.ERROR, "tool", tool, "err", err.Error())
		return nil, err
	}

	metricskey.StatsToolCallsSucceeded.IncrCounter(1, tool)
	logger.ContextKV(ctx, xlog.DEBUG, "tool", tool)
	return mcp.NewToolResponse(mcp.NewTextContent(out)), nil
}

// ok adapts a result-less engine call for exec.
func ok(msg string, call func(context.Context) error) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		if err := call(ctx); err != nil {
			return "", err
		}
		return msg, nil
	}
}
