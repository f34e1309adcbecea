package toolsuite

import (
	"context"
	"strconv"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/mcp"
)

// AddBrickRequest creates an axis-aligned brick solid.
type AddBrickRequest struct {
	Name      string     `json:"name" jsonschema:"required,description=Solid name." validate:"required"`
	Component string     `json:"component" jsonschema:"required,description=Component receiving the solid." validate:"required"`
	Material  string     `json:"material" jsonschema:"required,description=Material of the solid." validate:"required"`
	XRange    [2]float64 `json:"xRange" jsonschema:"required,description=Min and max X in geometry units."`
	YRange    [2]float64 `json:"yRange" jsonschema:"required,description=Min and max Y in geometry units."`
	ZRange    [2]float64 `json:"zRange" jsonschema:"required,description=Min and max Z in geometry units."`
}

func (s *Suite) addBrick(ctx context.Context, req *AddBrickRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Shape.addBrick", req, ok("created brick "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.AddBrick(ctx, engine.Brick{
			Name:      req.Name,
			Component: req.Component,
			Material:  req.Material,
			XRange:    req.XRange,
			YRange:    req.YRange,
			ZRange:    req.ZRange,
		})
	}))
}

// AddCylinderRequest creates a solid or hollow cylinder. XMin and YMin
// locate the axis centre in the plane orthogonal to Orientation.
type AddCylinderRequest struct {
	Name        string  `json:"name" jsonschema:"required,description=Solid name." validate:"required"`
	Component   string  `json:"component" jsonschema:"required,description=Component receiving the solid." validate:"required"`
	Material    string  `json:"material" jsonschema:"required,description=Material of the solid." validate:"required"`
	XMin        float64 `json:"xMin" jsonschema:"description=Axis centre first in-plane coordinate."`
	YMin        float64 `json:"yMin" jsonschema:"description=Axis centre second in-plane coordinate."`
	ZMin        float64 `json:"zMin" jsonschema:"description=Lower end along the axis."`
	ZMax        float64 `json:"zMax" jsonschema:"description=Upper end along the axis."`
	ExtRad      float64 `json:"extRad" jsonschema:"required,description=Outer radius." validate:"gt=0"`
	IntRad      float64 `json:"intRad" jsonschema:"description=Inner radius; 0 for a solid cylinder." validate:"gte=0"`
	Orientation string  `json:"orientation" jsonschema:"required,description=Axis direction: x|y|z." validate:"oneof=x y z"`
}

func (s *Suite) addCylinder(ctx context.Context, req *AddCylinderRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Shape.addCylinder", req, ok("created cylinder "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.AddCylinder(ctx, engine.Cylinder{
			Name:        req.Name,
			Component:   req.Component,
			Material:    req.Material,
			XMin:        req.XMin,
			YMin:        req.YMin,
			ZMin:        req.ZMin,
			ZMax:        req.ZMax,
			ExtRad:      req.ExtRad,
			IntRad:      req.IntRad,
			Orientation: req.Orientation,
		})
	}))
}

// AddSphereRequest creates a solid or hollow sphere.
type AddSphereRequest struct {
	Name      string  `json:"name" jsonschema:"required,description=Solid name." validate:"required"`
	Component string  `json:"component" jsonschema:"required,description=Component receiving the solid." validate:"required"`
	Material  string  `json:"material" jsonschema:"required,description=Material of the solid." validate:"required"`
	XCenter   float64 `json:"xCenter" jsonschema:"description=Centre X."`
	YCenter   float64 `json:"yCenter" jsonschema:"description=Centre Y."`
	ZCenter   float64 `json:"zCenter" jsonschema:"description=Centre Z."`
	ExtRad    float64 `json:"extRad" jsonschema:"required,description=Outer radius." validate:"gt=0"`
	IntRad    float64 `json:"intRad" jsonschema:"description=Inner radius; 0 for a solid sphere." validate:"gte=0"`
}

func (s *Suite) addSphere(ctx context.Context, req *AddSphereRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Shape.addSphere", req, ok("created sphere "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.AddSphere(ctx, engine.Sphere{
			Name:      req.Name,
			Component: req.Component,
			Material:  req.Material,
			XCenter:   req.XCenter,
			YCenter:   req.YCenter,
			ZCenter:   req.ZCenter,
			ExtRad:    req.ExtRad,
			IntRad:    req.IntRad,
		})
	}))
}

// AddPolygonBlockRequest extrudes a closed XY polygon between two Z planes.
type AddPolygonBlockRequest struct {
	Name      string       `json:"name" jsonschema:"required,description=Solid name." validate:"required"`
	Component string       `json:"component" jsonschema:"required,description=Component receiving the solid." validate:"required"`
	Material  string       `json:"material" jsonschema:"required,description=Material of the solid." validate:"required"`
	Points    [][2]float64 `json:"points" jsonschema:"required,description=Polygon vertices in the XY plane in drawing order." validate:"min=3"`
	ZMin      float64      `json:"zMin" jsonschema:"description=Lower extrusion plane."`
	ZMax      float64      `json:"zMax" jsonschema:"description=Upper extrusion plane."`
}

func (s *Suite) addPolygonBlock(ctx context.Context, req *AddPolygonBlockRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Shape.addPolygonBlock", req, ok("created polygon block "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.AddPolygonBlock(ctx, engine.PolygonBlock{
			Name:      req.Name,
			Component: req.Component,
			Material:  req.Material,
			Points:    req.Points,
			ZMin:      req.ZMin,
			ZMax:      req.ZMax,
		})
	}))
}

// BooleanRequest names the two solids of a boolean operation as
// "component:solid".
type BooleanRequest struct {
	Target string `json:"target" jsonschema:"required,description=Solid that receives the result as component:solid." validate:"required"`
	Tool   string `json:"tool" jsonschema:"required,description=Second solid of the operation as component:solid." validate:"required"`
}

func (s *Suite) booleanAdd(ctx context.Context, req *BooleanRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Boolean.add", req, ok("united "+req.Tool+" into "+req.Target, func(ctx context.Context) error {
		return s.prj.Build.BooleanAdd(ctx, req.Target, req.Tool)
	}))
}

func (s *Suite) booleanSubtract(ctx context.Context, req *BooleanRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Boolean.subtract", req, ok("subtracted "+req.Tool+" from "+req.Target, func(ctx context.Context) error {
		return s.prj.Build.BooleanSubtract(ctx, req.Target, req.Tool)
	}))
}

func (s *Suite) booleanIntersect(ctx context.Context, req *BooleanRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Boolean.intersect", req, ok("intersected "+req.Target+" with "+req.Tool, func(ctx context.Context) error {
		return s.prj.Build.BooleanIntersect(ctx, req.Target, req.Tool)
	}))
}

func (s *Suite) booleanInsert(ctx context.Context, req *BooleanRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Boolean.insert", req, ok("inserted "+req.Tool+" into "+req.Target, func(ctx context.Context) error {
		return s.prj.Build.BooleanInsert(ctx, req.Target, req.Tool)
	}))
}

// MergeCommonMaterialsRequest merges all solids of a component that share
// a material.
type MergeCommonMaterialsRequest struct {
	Component string `json:"component" jsonschema:"required,description=Component whose solids are merged." validate:"required"`
}

func (s *Suite) mergeCommonMaterials(ctx context.Context, req *MergeCommonMaterialsRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Boolean.mergeCommonMaterials", req, ok("merged common materials in "+req.Component, func(ctx context.Context) error {
		return s.prj.Build.MergeCommonMaterials(ctx, req.Component)
	}))
}

// ComponentRequest names one component.
type ComponentRequest struct {
	Name string `json:"name" jsonschema:"required,description=Component name." validate:"required"`
}

func (s *Suite) newComponent(ctx context.Context, req *ComponentRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Component.new", req, ok("created component "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.NewComponent(ctx, req.Name)
	}))
}

func (s *Suite) deleteComponent(ctx context.Context, req *ComponentRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Component.delete", req, ok("deleted component "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.DeleteComponent(ctx, req.Name)
	}))
}

func (s *Suite) componentExists(ctx context.Context, req *ComponentRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Component.exist", req, func(ctx context.Context) (string, error) {
		exists, err := s.prj.Build.ComponentExists(ctx, req.Name)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(exists), nil
	})
}

func (s *Suite) ensureComponentExistence(ctx context.Context, req *ComponentRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Component.ensureExistence", req, func(ctx context.Context) (string, error) {
		exists, err := s.prj.Build.ComponentExists(ctx, req.Name)
		if err != nil {
			return "", err
		}
		if exists {
			return "component " + req.Name + " already exists", nil
		}
		if err := s.prj.Build.NewComponent(ctx, req.Name); err != nil {
			return "", err
		}
		return "created component " + req.Name, nil
	})
}

// RenameComponentRequest renames a component.
type RenameComponentRequest struct {
	OldName string `json:"oldName" jsonschema:"required,description=Current component name." validate:"required"`
	NewName string `json:"newName" jsonschema:"required,description=New component name." validate:"required"`
}

func (s *Suite) renameComponent(ctx context.Context, req *RenameComponentRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Component.rename", req, ok("renamed component to "+req.NewName, func(ctx context.Context) error {
		return s.prj.Build.RenameComponent(ctx, req.OldName, req.NewName)
	}))
}

// AddNormalMaterialRequest defines an isotropic material.
type AddNormalMaterialRequest struct {
	Name      string     `json:"name" jsonschema:"required,description=Material name." validate:"required"`
	Eps       float64    `json:"eps" jsonschema:"required,description=Relative permittivity." validate:"gt=0"`
	Mu        float64    `json:"mu" jsonschema:"required,description=Relative permeability." validate:"gt=0"`
	Colour    [3]float64 `json:"colour" jsonschema:"description=Display colour RGB with each channel 0 to 1."`
	TanD      float64    `json:"tanD" jsonschema:"description=Electric loss tangent." validate:"gte=0"`
	Sigma     float64    `json:"sigma" jsonschema:"description=Electric conductivity in S/m." validate:"gte=0"`
	TanDM     float64    `json:"tanDM" jsonschema:"description=Magnetic loss tangent." validate:"gte=0"`
	SigmaM    float64    `json:"sigmaM" jsonschema:"description=Magnetic conductivity." validate:"gte=0"`
	FreqForD  float64    `json:"tanDFreq" jsonschema:"description=Frequency at which tanD is given." validate:"gte=0"`
	FreqForDM float64    `json:"tanDMFreq" jsonschema:"description=Frequency at which tanDM is given." validate:"gte=0"`
}

func (s *Suite) addNormalMaterial(ctx context.Context, req *AddNormalMaterialRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Material.addNormalMaterial", req, ok("created material "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.AddNormalMaterial(ctx, engine.NormalMaterial{
			Name:      req.Name,
			Eps:       req.Eps,
			Mu:        req.Mu,
			Colour:    req.Colour,
			TanD:      req.TanD,
			Sigma:     req.Sigma,
			TanDM:     req.TanDM,
			SigmaM:    req.SigmaM,
			FreqForD:  req.FreqForD,
			FreqForDM: req.FreqForDM,
		})
	}))
}

// AddAnisotropicMaterialRequest defines a material with per-axis
// permittivity and permeability.
type AddAnisotropicMaterialRequest struct {
	Name   string     `json:"name" jsonschema:"required,description=Material name." validate:"required"`
	EpsX   float64    `json:"epsX" jsonschema:"required,description=Permittivity along X." validate:"gt=0"`
	EpsY   float64    `json:"epsY" jsonschema:"required,description=Permittivity along Y." validate:"gt=0"`
	EpsZ   float64    `json:"epsZ" jsonschema:"required,description=Permittivity along Z." validate:"gt=0"`
	MuX    float64    `json:"muX" jsonschema:"required,description=Permeability along X." validate:"gt=0"`
	MuY    float64    `json:"muY" jsonschema:"required,description=Permeability along Y." validate:"gt=0"`
	MuZ    float64    `json:"muZ" jsonschema:"required,description=Permeability along Z." validate:"gt=0"`
	Colour [3]float64 `json:"colour" jsonschema:"description=Display colour RGB with each channel 0 to 1."`
}

func (s *Suite) addAnisotropicMaterial(ctx context.Context, req *AddAnisotropicMaterialRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Material.addAnisotropicMaterial", req, ok("created material "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.AddAnisotropicMaterial(ctx, engine.AnisotropicMaterial{
			Name:   req.Name,
			EpsX:   req.EpsX,
			EpsY:   req.EpsY,
			EpsZ:   req.EpsZ,
			MuX:    req.MuX,
			MuY:    req.MuY,
			MuZ:    req.MuZ,
			Colour: req.Colour,
		})
	}))
}

// AddMaterialFromLibraryRequest loads a library material by name.
type AddMaterialFromLibraryRequest struct {
	Name string `json:"name" jsonschema:"required,description=Library material name such as Copper (annealed)." validate:"required"`
}

func (s *Suite) addMaterialFromLibrary(ctx context.Context, req *AddMaterialFromLibraryRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Material.addMaterialFromLib", req, ok("loaded material "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.AddMaterialFromLibrary(ctx, req.Name)
	}))
}

// TranslateRequest moves an object along a vector.
type TranslateRequest struct {
	Object      string     `json:"object" jsonschema:"required,description=Object to move as component:solid." validate:"required"`
	Vector      [3]float64 `json:"vector" jsonschema:"required,description=Translation vector."`
	Copy        bool       `json:"copy" jsonschema:"description=Keep the original and create translated copies."`
	Repetitions int        `json:"repetitions" jsonschema:"description=Number of repeated applications (at least 1)." validate:"gte=0"`
}

func (s *Suite) translate(ctx context.Context, req *TranslateRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Transform.translate", req, ok("translated "+req.Object, func(ctx context.Context) error {
		return s.prj.Build.Translate(ctx, engine.Transform{
			Object:      req.Object,
			Vector:      req.Vector,
			Copy:        req.Copy,
			Repetitions: req.Repetitions,
		})
	}))
}

// RotateRequest rotates an object around a center point.
type RotateRequest struct {
	Object      string     `json:"object" jsonschema:"required,description=Object to rotate as component:solid." validate:"required"`
	Center      [3]float64 `json:"center" jsonschema:"description=Rotation center."`
	Angles      [3]float64 `json:"angles" jsonschema:"required,description=Rotation angles around X then Y then Z in degrees."`
	Copy        bool       `json:"copy" jsonschema:"description=Keep the original and create rotated copies."`
	Repetitions int        `json:"repetitions" jsonschema:"description=Number of repeated applications (at least 1)." validate:"gte=0"`
}

func (s *Suite) rotate(ctx context.Context, req *RotateRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Transform.rotate", req, ok("rotated "+req.Object, func(ctx context.Context) error {
		return s.prj.Build.Rotate(ctx, engine.Transform{
			Object:      req.Object,
			Center:      req.Center,
			Angles:      req.Angles,
			Copy:        req.Copy,
			Repetitions: req.Repetitions,
		})
	}))
}

// MirrorRequest mirrors an object across a plane.
type MirrorRequest struct {
	Object      string     `json:"object" jsonschema:"required,description=Object to mirror as component:solid." validate:"required"`
	Center      [3]float64 `json:"center" jsonschema:"description=Point on the mirror plane."`
	PlaneNormal [3]float64 `json:"planeNormal" jsonschema:"required,description=Normal of the mirror plane."`
	Copy        bool       `json:"copy" jsonschema:"description=Keep the original and create the mirrored copy."`
}

func (s *Suite) mirror(ctx context.Context, req *MirrorRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Transform.mirror", req, ok("mirrored "+req.Object, func(ctx context.Context) error {
		return s.prj.Build.Mirror(ctx, engine.Transform{
			Object:      req.Object,
			Center:      req.Center,
			PlaneNormal: req.PlaneNormal,
			Copy:        req.Copy,
		})
	}))
}

// ScaleRequest scales an object about a center point.
type ScaleRequest struct {
	Object  string     `json:"object" jsonschema:"required,description=Object to scale as component:solid." validate:"required"`
	Center  [3]float64 `json:"center" jsonschema:"description=Scaling center."`
	Factors [3]float64 `json:"factors" jsonschema:"required,description=Scale factors along X then Y then Z."`
	Copy    bool       `json:"copy" jsonschema:"description=Keep the original and create the scaled copy."`
}

func (s *Suite) scale(ctx context.Context, req *ScaleRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Transform.scale", req, ok("scaled "+req.Object, func(ctx context.Context) error {
		return s.prj.Build.Scale(ctx, engine.Transform{
			Object:  req.Object,
			Center:  req.Center,
			Factors: req.Factors,
			Copy:    req.Copy,
		})
	}))
}

// DeleteObjectRequest deletes a named modeler object.
type DeleteObjectRequest struct {
	Kind string `json:"kind" jsonschema:"required,description=Object kind: Solid|Component|Port|Material." validate:"oneof=Solid Component Port Material"`
	Name string `json:"name" jsonschema:"required,description=Object name; solids as component:solid." validate:"required"`
}

func (s *Suite) deleteObject(ctx context.Context, req *DeleteObjectRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Build.deleteObject", req, ok("deleted "+req.Name, func(ctx context.Context) error {
		return s.prj.Build.DeleteObject(ctx, req.Kind, req.Name)
	}))
}
