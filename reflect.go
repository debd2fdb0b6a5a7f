package chatsy

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
)

// NewReflectTool builds a Tool whose parameter schema is derived from the
// argument struct T via reflection, giving parameters their real JSON Schema
// types instead of the string-only default of NewTool. Field names follow
// json tags; fields without ",omitempty" are required; extra keys are
// rejected.
//
// Call decodes the argument object into T with weak typing (the model may
// send "2" for an int field), then invokes fn. Unknown keys and values that
// cannot be converted fail with *BindingError.
//
// Returns an error if T does not reflect to an object schema.
func NewReflectTool[T any, R any](
	name, description string,
	fn func(ctx context.Context, args T) (R, error),
) (Tool, error) {
	if description == "" {
		description = "Tool function: " + name
	}
	schemaMap, err := reflectSchema[T]()
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}
	call := func(ctx context.Context, args map[string]any) (any, error) {
		var in T
		if err := decodeArgs(name, args, &in); err != nil {
			return nil, err
		}
		out, err := fn(ctx, in)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return &tool{
		name:        name,
		description: description,
		schema:      func() map[string]any { return cloneSchema(schemaMap) },
		call:        call,
	}, nil
}

// reflectSchema produces an inline JSON Schema map for struct type T.
// additionalProperties is false (Reflector default) so the schema matches the
// closed-object contract of StringParameters.
func reflectSchema[T any]() (map[string]any, error) {
	var v T
	typ := reflect.TypeOf(v)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("argument type must be a struct reflecting to an object schema, got %v", typ)
	}
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := r.ReflectFromType(typ)
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(data, &schemaMap); err != nil {
		return nil, err
	}
	// Resolution must not depend on document identity keywords.
	delete(schemaMap, "$schema")
	delete(schemaMap, "$id")
	delete(schemaMap, "id")
	if typ, _ := schemaMap["type"].(string); typ != "object" {
		return nil, fmt.Errorf("argument type must reflect to an object schema, got %q", typ)
	}
	return schemaMap, nil
}

// decodeArgs binds the parsed argument object onto the typed argument struct.
func decodeArgs(name string, args map[string]any, out any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return &BindingError{ToolName: name, Err: err}
	}
	if err := dec.Decode(args); err != nil {
		return &BindingError{ToolName: name, Err: err}
	}
	return nil
}

// cloneSchema deep-copies a schema map so callers cannot mutate the tool's copy.
func cloneSchema(schemaMap map[string]any) map[string]any {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
