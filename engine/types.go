package engine

// Field names below follow the studio automation vocabulary so that tool
// schemas stay recognisable to users of the VBA and Python interfaces.

// Brick is an axis-aligned box solid.
type Brick struct {
	Name      string     `json:"name"`
	Component string     `json:"component"`
	Material  string     `json:"material"`
	XRange    [2]float64 `json:"xRange"`
	YRange    [2]float64 `json:"yRange"`
	ZRange    [2]float64 `json:"zRange"`
}

// Cylinder is a solid or hollow cylinder. XMin and YMin locate the axis
// centre in the plane orthogonal to Orientation, matching the studio
// modeler convention.
type Cylinder struct {
	Name        string  `json:"name"`
	Component   string  `json:"component"`
	Material    string  `json:"material"`
	XMin        float64 `json:"xMin"`
	YMin        float64 `json:"yMin"`
	ZMin        float64 `json:"zMin"`
	ZMax        float64 `json:"zMax"`
	ExtRad      float64 `json:"extRad"`
	IntRad      float64 `json:"intRad"`
	Orientation string  `json:"orientation"`
}

// Sphere is a solid or hollow sphere centred at (XCenter, YCenter, ZCenter).
type Sphere struct {
	Name      string  `json:"name"`
	Component string  `json:"component"`
	Material  string  `json:"material"`
	XCenter   float64 `json:"xCenter"`
	YCenter   float64 `json:"yCenter"`
	ZCenter   float64 `json:"zCenter"`
	ExtRad    float64 `json:"extRad"`
	IntRad    float64 `json:"intRad"`
}

// PolygonBlock is a prism extruded between ZMin and ZMax from a closed
// polygon in the XY plane.
type PolygonBlock struct {
	Name      string       `json:"name"`
	Component string       `json:"component"`
	Material  string       `json:"material"`
	Points    [][2]float64 `json:"points"`
	ZMin      float64      `json:"zMin"`
	ZMax      float64      `json:"zMax"`
}

// NormalMaterial is an isotropic material definition.
type NormalMaterial struct {
	Name      string     `json:"name"`
	Eps       float64    `json:"eps"`
	Mu        float64    `json:"mu"`
	Colour    [3]float64 `json:"colour"`
	TanD      float64    `json:"tanD"`
	Sigma     float64    `json:"sigma"`
	TanDM     float64    `json:"tanDM"`
	SigmaM    float64    `json:"sigmaM"`
	FreqForD  float64    `json:"tanDFreq"`
	FreqForDM float64    `json:"tanDMFreq"`
}

// AnisotropicMaterial carries per-axis permittivity and permeability.
type AnisotropicMaterial struct {
	Name   string     `json:"name"`
	EpsX   float64    `json:"epsX"`
	EpsY   float64    `json:"epsY"`
	EpsZ   float64    `json:"epsZ"`
	MuX    float64    `json:"muX"`
	MuY    float64    `json:"muY"`
	MuZ    float64    `json:"muZ"`
	Colour [3]float64 `json:"colour"`
}

// Transform moves, rotates, mirrors or scales a named object. Unused
// fields are ignored by operations that do not need them.
type Transform struct {
	Object      string     `json:"object"`
	Vector      [3]float64 `json:"vector"`
	Center      [3]float64 `json:"center"`
	Angles      [3]float64 `json:"angles"`
	PlaneNormal [3]float64 `json:"planeNormal"`
	Factors     [3]float64 `json:"factors"`
	Copy        bool       `json:"copy"`
	Repetitions int        `json:"repetitions"`
}

// Boundaries sets the boundary condition on each face of the bounding box.
// Valid values follow the studio vocabulary: "electric", "magnetic",
// "open", "expanded open", "periodic", "unit cell", "conducting wall".
type Boundaries struct {
	XMin string `json:"xMin"`
	XMax string `json:"xMax"`
	YMin string `json:"yMin"`
	YMax string `json:"yMax"`
	ZMin string `json:"zMin"`
	ZMax string `json:"zMax"`
}

// BackgroundMaterial sets the material filling the space around the model.
type BackgroundMaterial struct {
	Kind string  `json:"kind"` // "normal", "pec", "vacuum"
	Eps  float64 `json:"eps"`
	Mu   float64 `json:"mu"`
}

// BackgroundLimits pads the bounding box around the model, per direction.
type BackgroundLimits struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
	ZMin float64 `json:"zMin"`
	ZMax float64 `json:"zMax"`
}

// FloquetModes configures the Floquet port mode set for unit-cell solves.
type FloquetModes struct {
	NModes         int     `json:"nModes"`
	Theta          float64 `json:"theta"`
	Phi            float64 `json:"phi"`
	ForcePolar     bool    `json:"forcePolar"`
	PolarAngle     float64 `json:"polarAngle"`
	DetailsVisible bool    `json:"detailsVisible"`
}

// WaveguidePort defines a waveguide port on a box face.
type WaveguidePort struct {
	XMin        float64 `json:"xMin"`
	XMax        float64 `json:"xMax"`
	YMin        float64 `json:"yMin"`
	YMax        float64 `json:"yMax"`
	ZMin        float64 `json:"zMin"`
	ZMax        float64 `json:"zMax"`
	Orientation string  `json:"orientation"` // "xmin".."zmax"
	NModes      int     `json:"nModes"`
}

// DiscretePort defines a lumped port between two points.
type DiscretePort struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	Z1        float64 `json:"z1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Z2        float64 `json:"z2"`
	Impedance float64 `json:"impedance"`
	Radius    float64 `json:"radius"`
}

// Units sets the project unit system.
type Units struct {
	Geometry    string `json:"geometry"`    // "mm", "cm", "m", ...
	Frequency   string `json:"frequency"`   // "Hz", "MHz", "GHz", ...
	Time        string `json:"time"`        // "ns", "us", ...
	Temperature string `json:"temperature"` // "Kelvin", "Celsius"
}
