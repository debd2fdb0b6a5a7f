package chatsy

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Registry holds tools and dispatches model-issued calls to them. Iteration
// follows registration order; re-registering a name keeps its original
// position. Construct one per driver or application context; there is no
// process-wide instance.
//
// Registry is not safe for concurrent use. Tools are expected to be
// registered once at startup; callers that register and dispatch from
// multiple goroutines must add their own locking.
type Registry struct {
	tools       map[string]Tool // wrapped with middlewares, used by Dispatch
	rawTools    map[string]Tool // unwrapped, used by Use() to re-apply middlewares from scratch
	order       []string
	middlewares []Middleware
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:    make(map[string]Tool),
		rawTools: make(map[string]Tool),
	}
}

// Register adds a tool under its own name. Stored middlewares (see Use) are
// applied before registration. If a tool with the same name already exists it
// is replaced, with no error; its position in iteration order is kept.
func (r *Registry) Register(t Tool) {
	name := t.Name()
	if _, exists := r.rawTools[name]; !exists {
		r.order = append(r.order, name)
	}
	r.rawTools[name] = t
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		t = r.middlewares[i](t)
	}
	r.tools[name] = t
}

// Get returns the tool with the given name (after middlewares are applied),
// or (nil, false) if not found.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Has reports whether a tool is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// Delete removes the tool with the given name. Removing an absent name is a no-op.
func (r *Registry) Delete(name string) {
	if _, ok := r.rawTools[name]; !ok {
		return
	}
	delete(r.rawTools, name)
	delete(r.tools, name)
	if i := slices.Index(r.order, name); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// All iterates over (name, tool) pairs in registration order.
func (r *Registry) All() iter.Seq2[string, Tool] {
	return func(yield func(string, Tool) bool) {
		for _, name := range r.order {
			if !yield(name, r.tools[name]) {
				return
			}
		}
	}
}

// Definitions returns one wrapped schema entry per registered tool, in
// registration order. The list is recomputed from the live tool set on every
// call, so it always reflects the current registry state.
func (r *Registry) Definitions() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, definitionOf(r.tools[name]))
	}
	return defs
}

// Dispatch runs one model-issued tool call: it parses the JSON argument blob,
// looks up the tool, and invokes it with the parsed argument object, returning
// the tool's result unmodified. Malformed argument JSON fails with
// *BindingError; an unknown tool name fails with *ToolNotFoundError. Dispatch
// performs no retries and no recovery; tool errors propagate as returned.
func (r *Registry) Dispatch(ctx context.Context, call ToolCall) (any, error) {
	var args map[string]any
	if err := json.Unmarshal(call.Args, &args); err != nil {
		return nil, &BindingError{ToolName: call.ToolName, Err: fmt.Errorf("parse arguments: %w", err)}
	}
	t, ok := r.tools[call.ToolName]
	if !ok {
		return nil, &ToolNotFoundError{Name: call.ToolName}
	}
	return t.Call(ctx, args)
}
