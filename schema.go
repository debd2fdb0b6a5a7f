package chatsy

// ToolSchema is the structured description of one tool as surfaced to the
// remote model: name, purpose, and a JSON Schema for its parameters.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ToolDefinition wraps a ToolSchema in the function-calling envelope expected
// by chat-completion APIs: {"type": "function", "function": {...}}.
type ToolDefinition struct {
	Type     string     `json:"type"`
	Function ToolSchema `json:"function"`
}

// SchemaOf projects a Tool into its ToolSchema. It is pure and deterministic:
// two calls for the same tool yield identical schemas.
func SchemaOf(t Tool) ToolSchema {
	return ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  t.Parameters(),
	}
}

// definitionOf wraps a tool's schema for the outbound tools list.
func definitionOf(t Tool) ToolDefinition {
	return ToolDefinition{Type: "function", Function: SchemaOf(t)}
}

// StringParameters builds the parameter schema used by NewTool: every
// parameter is typed "string" with a generated placeholder description, every
// parameter is required, and no extra keys are accepted.
func StringParameters(params []string) map[string]any {
	properties := make(map[string]any, len(params))
	required := make([]string, 0, len(params))
	for _, p := range params {
		properties[p] = map[string]any{
			"type":        "string",
			"description": "Parameter: " + p,
		}
		required = append(required, p)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}
