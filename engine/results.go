package engine

// PlotQuantity selects which farfield quantity a query reads.
type PlotQuantity string

const (
	PlotRealizedGain PlotQuantity = "realized gain"
	PlotEField       PlotQuantity = "efield"
)

// CoordinateSystem selects the farfield coordinate system.
type CoordinateSystem string

const CoordSpherical CoordinateSystem = "spherical"

// PolarizationBasis selects the polarization decomposition of a query.
type PolarizationBasis string

const PolarizationCircular PolarizationBasis = "circular"

// ComponentForm selects the complex form returned per component.
type ComponentForm string

const FormAbs ComponentForm = "abs"

// FarFieldRequest asks a solved farfield monitor for component magnitudes
// at a set of directions. Theta and Phi are in degrees; Frequency uses the
// project frequency unit. The engine answers with one value per entry of
// Components, in request order.
type FarFieldRequest struct {
	Frequency      float64           `json:"frequency"`
	Theta          []float64         `json:"theta"`
	Phi            []float64         `json:"phi"`
	Port           int               `json:"port"`
	Mode           int               `json:"mode"`
	Quantity       PlotQuantity      `json:"plotQuantity"`
	CoordSystem    CoordinateSystem  `json:"coordinateSystem"`
	Polarization   PolarizationBasis `json:"polarizationBasis"`
	Components     []string          `json:"components"`
	ComponentForms []ComponentForm   `json:"componentForm"`
	LinearScale    bool              `json:"useLinearScale"`
}

// SParameterRequest selects one S-parameter trace. Port numbers follow
// the studio convention: 0 addresses Floquet ports by their Zmin/Zmax
// denomination, -1 requests all combinations.
type SParameterRequest struct {
	PortA int `json:"portA"`
	PortB int `json:"portB"`
	RunID int `json:"runID"`
}

// SParameterPoint is one frequency sample of a complex S-parameter.
type SParameterPoint struct {
	Frequency float64 `json:"frequency"`
	Real      float64 `json:"real"`
	Imag      float64 `json:"imag"`
}
