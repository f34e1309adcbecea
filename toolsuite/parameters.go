package toolsuite

import (
	"context"
	"strconv"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/mcp"
)

// AddParameterRequest adds a named project parameter.
type AddParameterRequest struct {
	Name  string  `json:"name" jsonschema:"required,description=Parameter name." validate:"required"`
	Value float64 `json:"value" jsonschema:"required,description=Parameter value."`
}

func (s *Suite) addParameter(ctx context.Context, req *AddParameterRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Parameter.add", req, ok("added parameter "+req.Name, func(ctx context.Context) error {
		return s.prj.Params.AddParameter(ctx, req.Name, req.Value)
	}))
}

// ParameterRequest names one project parameter.
type ParameterRequest struct {
	Name string `json:"name" jsonschema:"required,description=Parameter name." validate:"required"`
}

func (s *Suite) deleteParameter(ctx context.Context, req *ParameterRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Parameter.delete", req, ok("deleted parameter "+req.Name, func(ctx context.Context) error {
		return s.prj.Params.DeleteParameter(ctx, req.Name)
	}))
}

func (s *Suite) parameterExists(ctx context.Context, req *ParameterRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Parameter.exist", req, func(ctx context.Context) (string, error) {
		exists, err := s.prj.Params.ParameterExists(ctx, req.Name)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(exists), nil
	})
}

// ChangeParameterRequest changes the value of an existing parameter.
type ChangeParameterRequest struct {
	Name  string  `json:"name" jsonschema:"required,description=Parameter name." validate:"required"`
	Value float64 `json:"value" jsonschema:"required,description=New parameter value."`
}

func (s *Suite) changeParameter(ctx context.Context, req *ChangeParameterRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Parameter.change", req, ok("changed parameter "+req.Name, func(ctx context.Context) error {
		return s.prj.Params.ChangeParameter(ctx, req.Name, req.Value)
	}))
}

func (s *Suite) retrieveParameter(ctx context.Context, req *ParameterRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Parameter.retrieve", req, func(ctx context.Context) (string, error) {
		value, err := s.prj.Params.RetrieveParameter(ctx, req.Name)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	})
}

// AddParameterDescriptionRequest attaches a description to a parameter.
type AddParameterDescriptionRequest struct {
	Name        string `json:"name" jsonschema:"required,description=Parameter name." validate:"required"`
	Description string `json:"description" jsonschema:"required,description=Description text." validate:"required"`
}

func (s *Suite) addParameterDescription(ctx context.Context, req *AddParameterDescriptionRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Parameter.addDescription", req, ok("described parameter "+req.Name, func(ctx context.Context) error {
		return s.prj.Params.AddParameterDescription(ctx, req.Name, req.Description)
	}))
}

func (s *Suite) retrieveParameterDescription(ctx context.Context, req *ParameterRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Parameter.retrieveDescription", req, func(ctx context.Context) (string, error) {
		return s.prj.Params.RetrieveParameterDescription(ctx, req.Name)
	})
}

// SetUnitsRequest sets the project unit system.
type SetUnitsRequest struct {
	Geometry    string `json:"geometry" jsonschema:"required,description=Geometry unit: mm|cm|m|um|nm|ft|mil|in." validate:"oneof=mm cm m um nm ft mil in"`
	Frequency   string `json:"frequency" jsonschema:"required,description=Frequency unit: Hz|kHz|MHz|GHz|THz|PHz." validate:"oneof=Hz kHz MHz GHz THz PHz"`
	Time        string `json:"time" jsonschema:"required,description=Time unit: fs|ps|ns|us|ms|s." validate:"oneof=fs ps ns us ms s"`
	Temperature string `json:"temperature" jsonschema:"required,description=Temperature unit: Kelvin|Celsius|Fahrenheit." validate:"oneof=Kelvin Celsius Fahrenheit"`
}

func (s *Suite) setUnits(ctx context.Context, req *SetUnitsRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "Project.setUnits", req, ok("units set", func(ctx context.Context) error {
		return s.prj.File.SetUnits(ctx, engine.Units{
			Geometry:    req.Geometry,
			Frequency:   req.Frequency,
			Time:        req.Time,
			Temperature: req.Temperature,
		})
	}))
}

// EmptyRequest is the argument of tools that take no parameters.
type EmptyRequest struct{}

func (s *Suite) saveFile(ctx context.Context, req *EmptyRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "CST_MicrowaveStudio.saveFile", req, ok("project saved", func(ctx context.Context) error {
		return s.prj.File.Save(ctx)
	}))
}

func (s *Suite) closeFile(ctx context.Context, req *EmptyRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "CST_MicrowaveStudio.closeFile", req, ok("project closed", func(ctx context.Context) error {
		return s.prj.File.Close(ctx)
	}))
}

func (s *Suite) quit(ctx context.Context, req *EmptyRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "CST_MicrowaveStudio.quit", req, ok("studio closed", func(ctx context.Context) error {
		return s.prj.File.Quit(ctx)
	}))
}
