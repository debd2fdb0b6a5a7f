// Package chatsy is a minimal tool-calling chat orchestration layer for
// chat-completion LLM APIs. It registers plain Go functions as tools, derives
// API-compatible metadata (name, description, parameter schema) for each, and
// drives the conversational loop: send history plus tool schemas to the
// model, dispatch the tool calls it requests, feed the results back, and
// repeat until the model returns a plain answer.
//
// # Overview
//
// Pipeline: NewTool / NewReflectTool → Registry → Chatter.Chat → Client
// (remote model) → Registry.Dispatch → tool result appended to History →
// next round, until a tool-call-free response arrives.
//
// # Key concepts
//
//   - Explicit registry: a Registry is constructed per driver or application
//     context; there is no process-wide singleton, so tests and multi-tenant
//     setups can hold independent tool sets.
//   - Opaque string parameters: NewTool types every parameter "string" in the
//     schema and passes decoded values through unmodified; NewReflectTool is
//     the typed alternative, deriving the schema from an argument struct.
//   - Unrecovered failures: an unknown tool, an argument-binding mismatch, an
//     invalid message role, or a transport error aborts the whole turn. The
//     core retries nothing and reports nothing back to the model.
//
// The remote endpoint is a black box behind the Client interface; package
// openai provides a chat-completions HTTP implementation.
//
// # Example
//
//	reg := chatsy.NewRegistry()
//	reg.Register(chatsy.NewTool("add", "Add two numbers given as strings.",
//	    []string{"a", "b"},
//	    func(_ context.Context, args map[string]any) (any, error) {
//	        a, _ := strconv.Atoi(args["a"].(string))
//	        b, _ := strconv.Atoi(args["b"].(string))
//	        return strconv.Itoa(a + b), nil
//	    }))
//	chatter := chatsy.NewChatter(openai.New(""), reg)
//	history := chatsy.NewHistory()
//	answer, err := chatter.Chat(ctx, "What is 2+3?", history)
package chatsy
