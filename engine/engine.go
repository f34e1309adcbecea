// Package engine defines the interfaces through which the rest of the
// module talks to a CST Studio Suite project. The interfaces mirror the
// facets of the studio automation object model (modeler, solver, results,
// parameters, project file) so that tool handlers stay thin forwarding
// code and tests can substitute a stand-in implementation.
package engine

import (
	"context"
)

//go:generate mockgen -source=engine.go -destination=../mocks/mockengine/engine_mock.gen.go -package mockengine

// Project is a handle to one open simulation project. The handle is owned
// by the surrounding server; packages receiving it must treat it as
// read-only unless the operation explicitly mutates the model.
type Project struct {
	Build   BuildService
	Solver  SolverService
	Results ResultsService
	Params  ParameterService
	File    ProjectService
}

// BuildService covers the modeler: solids, boolean operations, components,
// materials and geometric transforms.
type BuildService interface {
	AddBrick(ctx context.Context, spec Brick) error
	AddCylinder(ctx context.Context, spec Cylinder) error
	AddSphere(ctx context.Context, spec Sphere) error
	AddPolygonBlock(ctx context.Context, spec PolygonBlock) error

	// Boolean operations reference solids as "component:solid".
	BooleanAdd(ctx context.Context, target, tool string) error
	BooleanSubtract(ctx context.Context, target, tool string) error
	BooleanIntersect(ctx context.Context, target, tool string) error
	BooleanInsert(ctx context.Context, target, tool string) error
	MergeCommonMaterials(ctx context.Context, component string) error

	NewComponent(ctx context.Context, name string) error
	DeleteComponent(ctx context.Context, name string) error
	RenameComponent(ctx context.Context, oldName, newName string) error
	ComponentExists(ctx context.Context, name string) (bool, error)

	AddNormalMaterial(ctx context.Context, spec NormalMaterial) error
	AddAnisotropicMaterial(ctx context.Context, spec AnisotropicMaterial) error
	AddMaterialFromLibrary(ctx context.Context, name string) error

	Translate(ctx context.Context, spec Transform) error
	Rotate(ctx context.Context, spec Transform) error
	Mirror(ctx context.Context, spec Transform) error
	Scale(ctx context.Context, spec Transform) error

	DeleteObject(ctx context.Context, kind, name string) error
}

// SolverService configures and runs the field solver, including port
// definitions, boundaries, monitors and background material.
type SolverService interface {
	SetFrequencyRange(ctx context.Context, fmin, fmax float64) error
	SolverType(ctx context.Context) (string, error)
	ChangeSolverType(ctx context.Context, solverType string) error
	SetBoundaryCondition(ctx context.Context, spec Boundaries) error
	AddSymmetryPlane(ctx context.Context, normal, value string) error
	AddFieldMonitor(ctx context.Context, kind string, frequency float64) error
	SetBackgroundMaterial(ctx context.Context, spec BackgroundMaterial) error
	SetBackgroundLimits(ctx context.Context, spec BackgroundLimits) error
	DefineFloquetModes(ctx context.Context, spec FloquetModes) error

	AddWaveguidePort(ctx context.Context, spec WaveguidePort) error
	AddDiscretePort(ctx context.Context, spec DiscretePort) error

	// Run starts the simulation and blocks until the engine reports
	// completion. Cancellation is a pass-through concern of ctx.
	Run(ctx context.Context) error
}

// ResultsService queries solved results. Queries never mutate the model.
type ResultsService interface {
	// FarField returns one magnitude per requested component, in the
	// order the components were requested.
	FarField(ctx context.Context, req FarFieldRequest) ([]float64, error)
	SParameters(ctx context.Context, req SParameterRequest) ([]SParameterPoint, error)
}

// ParameterService manages named project parameters.
type ParameterService interface {
	AddParameter(ctx context.Context, name string, value float64) error
	DeleteParameter(ctx context.Context, name string) error
	ParameterExists(ctx context.Context, name string) (bool, error)
	ChangeParameter(ctx context.Context, name string, value float64) error
	RetrieveParameter(ctx context.Context, name string) (float64, error)
	AddParameterDescription(ctx context.Context, name, description string) error
	RetrieveParameterDescription(ctx context.Context, name string) (string, error)
}

// ProjectService covers project-level operations: units and file lifecycle.
type ProjectService interface {
	SetUnits(ctx context.Context, spec Units) error
	Save(ctx context.Context) error
	Close(ctx context.Context) error
	Quit(ctx context.Context) error
}
