package remote

import (
	"context"

	"github.com/hermes-rf/cstmcp/engine"
)

// The bridge method names mirror the studio automation object model as
// exposed by the original Python wrapper, so one bridge serves both.

type buildService struct {
	c *Client
}

var _ engine.BuildService = (*buildService)(nil)

func (s *buildService) AddBrick(ctx context.Context, spec engine.Brick) error {
	return s.c.call(ctx, "Build.Shape.addBrick", spec, nil)
}

func (s *buildService) AddCylinder(ctx context.Context, spec engine.Cylinder) error {
	return s.c.call(ctx, "Build.Shape.addCylinder", spec, nil)
}

func (s *buildService) AddSphere(ctx context.Context, spec engine.Sphere) error {
	return s.c.call(ctx, "Build.Shape.addSphere", spec, nil)
}

func (s *buildService) AddPolygonBlock(ctx context.Context, spec engine.PolygonBlock) error {
	return s.c.call(ctx, "Build.Shape.addPolygonBlock", spec, nil)
}

type booleanParams struct {
	Target string `json:"target"`
	Tool   string `json:"tool"`
}

func (s *buildService) BooleanAdd(ctx context.Context, target, tool string) error {
	return s.c.call(ctx, "Build.Boolean.add", booleanParams{target, tool}, nil)
}

func (s *buildService) BooleanSubtract(ctx context.Context, target, tool string) error {
	return s.c.call(ctx, "Build.Boolean.subtract", booleanParams{target, tool}, nil)
}

func (s *buildService) BooleanIntersect(ctx context.Context, target, tool string) error {
	return s.c.call(ctx, "Build.Boolean.intersect", booleanParams{target, tool}, nil)
}

func (s *buildService) BooleanInsert(ctx context.Context, target, tool string) error {
	return s.c.call(ctx, "Build.Boolean.insert", booleanParams{target, tool}, nil)
}

func (s *buildService) MergeCommonMaterials(ctx context.Context, component string) error {
	return s.c.call(ctx, "Build.Boolean.mergeCommonMaterials",
		map[string]string{"component": component}, nil)
}

func (s *buildService) NewComponent(ctx context.Context, name string) error {
	return s.c.call(ctx, "Build.Component.new", map[string]string{"name": name}, nil)
}

func (s *buildService) DeleteComponent(ctx context.Context, name string) error {
	return s.c.call(ctx, "Build.Component.delete", map[string]string{"name": name}, nil)
}

func (s *buildService) RenameComponent(ctx context.Context, oldName, newName string) error {
	return s.c.call(ctx, "Build.Component.rename",
		map[string]string{"oldName": oldName, "newName": newName}, nil)
}

func (s *buildService) ComponentExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.c.call(ctx, "Build.Component.exist", map[string]string{"name": name}, &exists)
	return exists, err
}

func (s *buildService) AddNormalMaterial(ctx context.Context, spec engine.NormalMaterial) error {
	return s.c.call(ctx, "Build.Material.addNormalMaterial", spec, nil)
}

func (s *buildService) AddAnisotropicMaterial(ctx context.Context, spec engine.AnisotropicMaterial) error {
	return s.c.call(ctx, "Build.Material.addAnisotropicMaterial", spec, nil)
}

func (s *buildService) AddMaterialFromLibrary(ctx context.Context, name string) error {
	return s.c.call(ctx, "Build.Material.addMaterialFromLib", map[string]string{"name": name}, nil)
}

func (s *buildService) Translate(ctx context.Context, spec engine.Transform) error {
	return s.c.call(ctx, "Build.Transform.translate", spec, nil)
}

func (s *buildService) Rotate(ctx context.Context, spec engine.Transform) error {
	return s.c.call(ctx, "Build.Transform.rotate", spec, nil)
}

func (s *buildService) Mirror(ctx context.Context, spec engine.Transform) error {
	return s.c.call(ctx, "Build.Transform.mirror", spec, nil)
}

func (s *buildService) Scale(ctx context.Context, spec engine.Transform) error {
	return s.c.call(ctx, "Build.Transform.scale", spec, nil)
}

func (s *buildService) DeleteObject(ctx context.Context, kind, name string) error {
	return s.c.call(ctx, "Build.deleteObject",
		map[string]string{"kind": kind, "name": name}, nil)
}

type solverService struct {
	c *Client
}

var _ engine.SolverService = (*solverService)(nil)

func (s *solverService) SetFrequencyRange(ctx context.Context, fmin, fmax float64) error {
	return s.c.call(ctx, "Solver.setFrequencyRange",
		map[string]float64{"fmin": fmin, "fmax": fmax}, nil)
}

func (s *solverService) SolverType(ctx context.Context) (string, error) {
	var st string
	err := s.c.call(ctx, "Solver.getSolverType", nil, &st)
	return st, err
}

func (s *solverService) ChangeSolverType(ctx context.Context, solverType string) error {
	return s.c.call(ctx, "Solver.changeSolverType",
		map[string]string{"solverType": solverType}, nil)
}

func (s *solverService) SetBoundaryCondition(ctx context.Context, spec engine.Boundaries) error {
	return s.c.call(ctx, "Solver.setBoundaryCondition", spec, nil)
}

func (s *solverService) AddSymmetryPlane(ctx context.Context, normal, value string) error {
	return s.c.call(ctx, "Solver.addSymmetryPlane",
		map[string]string{"normal": normal, "value": value}, nil)
}

func (s *solverService) AddFieldMonitor(ctx context.Context, kind string, frequency float64) error {
	return s.c.call(ctx, "Solver.addFieldMonitor",
		map[string]any{"kind": kind, "frequency": frequency}, nil)
}

func (s *solverService) SetBackgroundMaterial(ctx context.Context, spec engine.BackgroundMaterial) error {
	return s.c.call(ctx, "Solver.setBackgroundMaterial", spec, nil)
}

func (s *solverService) SetBackgroundLimits(ctx context.Context, spec engine.BackgroundLimits) error {
	return s.c.call(ctx, "Solver.setBackgroundLimits", spec, nil)
}

func (s *solverService) DefineFloquetModes(ctx context.Context, spec engine.FloquetModes) error {
	return s.c.call(ctx, "Solver.defineFloquetModes", spec, nil)
}

func (s *solverService) AddWaveguidePort(ctx context.Context, spec engine.WaveguidePort) error {
	return s.c.call(ctx, "Solver.Port.addWaveguidePort", spec, nil)
}

func (s *solverService) AddDiscretePort(ctx context.Context, spec engine.DiscretePort) error {
	return s.c.call(ctx, "Solver.Port.addDiscretePort", spec, nil)
}

func (s *solverService) Run(ctx context.Context) error {
	// Long-running by design: the bridge answers when the solve finishes.
	return s.c.call(ctx, "Solver.runSimulation", nil, nil)
}

type resultsService struct {
	c *Client
}

var _ engine.ResultsService = (*resultsService)(nil)

func (s *resultsService) FarField(ctx context.Context, req engine.FarFieldRequest) ([]float64, error) {
	var values []float64
	err := s.c.call(ctx, "Results.getFarField", req, &values)
	return values, err
}

func (s *resultsService) SParameters(ctx context.Context, req engine.SParameterRequest) ([]engine.SParameterPoint, error) {
	var points []engine.SParameterPoint
	err := s.c.call(ctx, "Results.getSParameters", req, &points)
	return points, err
}

type parameterService struct {
	c *Client
}

var _ engine.ParameterService = (*parameterService)(nil)

type paramValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func (s *parameterService) AddParameter(ctx context.Context, name string, value float64) error {
	return s.c.call(ctx, "Parameter.add", paramValue{name, value}, nil)
}

func (s *parameterService) DeleteParameter(ctx context.Context, name string) error {
	return s.c.call(ctx, "Parameter.delete", map[string]string{"name": name}, nil)
}

func (s *parameterService) ParameterExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.c.call(ctx, "Parameter.exist", map[string]string{"name": name}, &exists)
	return exists, err
}

func (s *parameterService) ChangeParameter(ctx context.Context, name string, value float64) error {
	return s.c.call(ctx, "Parameter.change", paramValue{name, value}, nil)
}

func (s *parameterService) RetrieveParameter(ctx context.Context, name string) (float64, error) {
	var value float64
	err := s.c.call(ctx, "Parameter.retrieve", map[string]string{"name": name}, &value)
	return value, err
}

func (s *parameterService) AddParameterDescription(ctx context.Context, name, description string) error {
	return s.c.call(ctx, "Parameter.addDescription",
		map[string]string{"name": name, "description": description}, nil)
}

func (s *parameterService) RetrieveParameterDescription(ctx context.Context, name string) (string, error) {
	var description string
	err := s.c.call(ctx, "Parameter.retrieveDescription", map[string]string{"name": name}, &description)
	return description, err
}

type projectService struct {
	c *Client
}

var _ engine.ProjectService = (*projectService)(nil)

func (s *projectService) SetUnits(ctx context.Context, spec engine.Units) error {
	return s.c.call(ctx, "Project.setUnits", spec, nil)
}

func (s *projectService) Save(ctx context.Context) error {
	return s.c.call(ctx, "Project.saveFile", nil, nil)
}

func (s *projectService) Close(ctx context.Context) error {
	return s.c.call(ctx, "Project.closeFile", nil, nil)
}

func (s *projectService) Quit(ctx context.Context) error {
	return s.c.call(ctx, "Project.quit", nil, nil)
}
