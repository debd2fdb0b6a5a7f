package chatsy

import (
	"context"
	"fmt"
	"slices"
)

// tool is the internal implementation of Tool built by NewTool and NewReflectTool.
type tool struct {
	name        string
	description string
	schema      func() map[string]any
	call        func(context.Context, map[string]any) (any, error)
}

// NewTool builds a Tool from a handler and an ordered list of parameter
// names. This is the default, string-typed path: the generated schema types
// every parameter as "string" with the placeholder description
// "Parameter: <name>", marks all of them required, and forbids extra keys.
// An empty description falls back to "Tool function: <name>".
//
// Call binds the parsed argument object against the declared parameter list:
// an unexpected key or a missing parameter fails with *BindingError before
// the handler runs. Argument values are not validated or coerced. A nil fn
// yields a tool that binds its arguments and returns a nil result.
func NewTool(name, description string, params []string, fn ToolFunc) Tool {
	if description == "" {
		description = "Tool function: " + name
	}
	declared := slices.Clone(params)
	call := func(ctx context.Context, args map[string]any) (any, error) {
		if err := bindArgs(name, declared, args); err != nil {
			return nil, err
		}
		if fn == nil {
			return nil, nil
		}
		return fn(ctx, args)
	}
	return &tool{
		name:        name,
		description: description,
		schema:      func() map[string]any { return StringParameters(declared) },
		call:        call,
	}
}

func (t *tool) Name() string        { return t.name }
func (t *tool) Description() string { return t.description }

// Parameters regenerates the schema on every call; it is never cached.
func (t *tool) Parameters() map[string]any { return t.schema() }

func (t *tool) Call(ctx context.Context, args map[string]any) (any, error) {
	return t.call(ctx, args)
}

// bindArgs checks the argument object against the declared parameter names,
// mirroring keyword-argument binding: every key must be declared and every
// declared parameter must be present.
func bindArgs(name string, declared []string, args map[string]any) error {
	for key := range args {
		if !slices.Contains(declared, key) {
			return &BindingError{ToolName: name, Err: fmt.Errorf("unexpected argument %q", key)}
		}
	}
	for _, p := range declared {
		if _, ok := args[p]; !ok {
			return &BindingError{ToolName: name, Err: fmt.Errorf("missing required argument %q", p)}
		}
	}
	return nil
}

var _ Tool = (*tool)(nil)
