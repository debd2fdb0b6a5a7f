package chatsy

import (
	"bytes"
	"encoding/json"
	"testing"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compileSchema round-trips a schema map through JSON and compiles it, so the
// exact document sent to the model is what gets validated against.
func compileSchema(t *testing.T, schemaMap map[string]any) *jsonschema.Schema {
	t.Helper()
	data, err := json.Marshal(schemaMap)
	require.NoError(t, err)
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	require.NoError(t, err)
	compiler := jsonschema.NewCompiler()
	require.NoError(t, compiler.AddResource("tool.json", doc))
	schema, err := compiler.Compile("tool.json")
	require.NoError(t, err)
	return schema
}

// decodeInstance parses an instance the way a JSON decoder would, matching
// what the validator expects.
func decodeInstance(t *testing.T, s string) any {
	t.Helper()
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(s)))
	require.NoError(t, err)
	return v
}

func TestStringParameters_Shape(t *testing.T) {
	params := StringParameters([]string{"query", "limit"})
	assert.Equal(t, "object", params["type"])
	assert.Equal(t, false, params["additionalProperties"])
	assert.Equal(t, []string{"query", "limit"}, params["required"])

	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)
	require.Len(t, props, 2)
	assert.Equal(t,
		map[string]any{"type": "string", "description": "Parameter: query"},
		props["query"])
}

func TestStringParameters_Deterministic(t *testing.T) {
	first := StringParameters([]string{"a", "b", "c"})
	second := StringParameters([]string{"a", "b", "c"})
	assert.Equal(t, first, second)
}

func TestSchemaOf(t *testing.T) {
	tool := NewTool("echo", "Echo the input message.", []string{"msg"}, nil)
	schema := SchemaOf(tool)
	assert.Equal(t, "echo", schema.Name)
	assert.Equal(t, "Echo the input message.", schema.Description)
	assert.Equal(t, tool.Parameters(), schema.Parameters)

	again := SchemaOf(tool)
	assert.Equal(t, schema, again, "synthesis is deterministic")
}

func TestToolDefinition_JSONShape(t *testing.T) {
	tool := NewTool("echo", "Echo the input message.", []string{"msg"}, nil)
	data, err := json.Marshal(definitionOf(tool))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "function",
		"function": {
			"name": "echo",
			"description": "Echo the input message.",
			"parameters": {
				"type": "object",
				"properties": {
					"msg": {"type": "string", "description": "Parameter: msg"}
				},
				"required": ["msg"],
				"additionalProperties": false
			}
		}
	}`, string(data))
}

func TestStringParameters_IsValidJSONSchema(t *testing.T) {
	schema := compileSchema(t, StringParameters([]string{"a", "b"}))

	assert.NoError(t, schema.Validate(decodeInstance(t, `{"a":"2","b":"3"}`)))
	assert.Error(t, schema.Validate(decodeInstance(t, `{"a":"2"}`)), "missing parameter")
	assert.Error(t, schema.Validate(decodeInstance(t, `{"a":"2","b":"3","c":"4"}`)), "extra key")
	assert.Error(t, schema.Validate(decodeInstance(t, `{"a":2,"b":"3"}`)), "non-string value")
}

func TestReflectedSchema_IsValidJSONSchema(t *testing.T) {
	tool := weatherTool(t)
	schema := compileSchema(t, tool.Parameters())

	assert.NoError(t, schema.Validate(decodeInstance(t, `{"city":"Moscow","days":3}`)))
	assert.NoError(t, schema.Validate(decodeInstance(t, `{"city":"Moscow"}`)))
	assert.Error(t, schema.Validate(decodeInstance(t, `{"days":3}`)), "missing required city")
	assert.Error(t, schema.Validate(decodeInstance(t, `{"city":"Moscow","zip":"1"}`)), "extra key")
	assert.Error(t, schema.Validate(decodeInstance(t, `{"city":"Moscow","days":"3"}`)), "string for integer")
}
