package schema_test

import (
	"reflect"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermes-rf/cstmcp/schema"
)

type gainQuery struct {
	Frequency float64 `json:"frequency,omitempty" jsonschema:"title=Frequency,description=Target frequency in project units,default=0.868"`
	Port      int     `json:"port,omitempty" jsonschema:"title=Port,description=Excitation port number,default=1"`
	Mode      int     `json:"mode,omitempty" jsonschema:"title=Mode,description=Excitation mode number,default=0"`
}

type monitorRequest struct {
	Kind      string  `json:"kind" jsonschema:"required,description=Monitor kind,enum=farfield,enum=efield,enum=hfield"`
	Frequency float64 `json:"frequency" jsonschema:"required,description=Monitor frequency"`
}

func TestSchema(t *testing.T) {
	s, err := schema.New(reflect.TypeOf(monitorRequest{}))
	require.NoError(t, err)

	params, ok := s.Parameters.(*jsonschema.Schema)
	require.True(t, ok)
	assert.Equal(t, "object", params.Type)
	assert.Equal(t, []string{"kind", "frequency"}, params.Required)

	kind, ok := params.Properties.Get("kind")
	require.True(t, ok)
	assert.Equal(t, "string", kind.Type)
	assert.Len(t, kind.Enum, 3)

	// cached second call returns the same instance
	s2, err := schema.New(reflect.TypeOf(monitorRequest{}))
	require.NoError(t, err)
	assert.Same(t, s, s2)
}

func TestSchemaOptionalFields(t *testing.T) {
	s, err := schema.New(reflect.TypeOf(gainQuery{}))
	require.NoError(t, err)

	params, ok := s.Parameters.(*jsonschema.Schema)
	require.True(t, ok)
	assert.Empty(t, params.Required)

	freq, ok := params.Properties.Get("frequency")
	require.True(t, ok)
	assert.Equal(t, "number", freq.Type)
	assert.Equal(t, "Frequency", freq.Title)

	js := s.String()
	assert.Contains(t, js, `"port"`)
	assert.Contains(t, js, `"mode"`)
}

func TestSchemaNestedTypes(t *testing.T) {
	type span struct {
		Min float64 `json:"min" jsonschema:"required"`
		Max float64 `json:"max" jsonschema:"required"`
	}
	type portRequest struct {
		Label string `json:"label" jsonschema:"required"`
		XSpan span   `json:"xSpan" jsonschema:"required"`
		YSpan span   `json:"ySpan" jsonschema:"required"`
	}

	s, err := schema.New(reflect.TypeOf(portRequest{}))
	require.NoError(t, err)

	params, ok := s.Parameters.(*jsonschema.Schema)
	require.True(t, ok)

	// nested refs are resolved in place
	xSpan, ok := params.Properties.Get("xSpan")
	require.True(t, ok)
	require.NotNil(t, xSpan.Properties)
	_, ok = xSpan.Properties.Get("min")
	assert.True(t, ok)
	assert.Empty(t, xSpan.Ref)
}
