package chatsy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
)

// Fallback texts used when the model or a tool produces empty content.
const (
	defaultSystemMessage = "You are a helpful assistant."
	fallbackToolCall     = "Tool call issued."
	fallbackToolResult   = "No results found."
	fallbackResponse     = "No response."
)

// Chatter drives the request/response/tool-execution cycle for one
// conversation. It sends the full history plus the registry's tool schemas to
// the remote model, dispatches any requested tool calls in order, feeds the
// results back, and repeats until the model returns a plain answer.
//
// A Chatter is synchronous and blocking: each remote invocation and each tool
// invocation blocks the caller, and multiple calls in one response are
// dispatched strictly in the order given. Cancellation and timeouts are the
// transport's (or the ctx's) concern.
type Chatter struct {
	client    Client
	registry  *Registry
	model     string
	system    string
	maxRounds int
	logger    *slog.Logger
}

// NewChatter creates a Chatter over the given remote client and tool
// registry. The registry is read live: tools registered after construction
// are visible to subsequent rounds.
func NewChatter(client Client, registry *Registry, opts ...ChatterOption) *Chatter {
	c := &Chatter{
		client:   client,
		registry: registry,
		system:   defaultSystemMessage,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Chat runs one user turn to completion and returns the model's final textual
// answer. The given text is appended to history as a user message; every
// intermediate assistant and tool message is appended as the loop progresses,
// so history always reflects the exchange the remote API saw.
//
// Every checked failure aborts the turn unrecovered: an unknown tool or an
// argument-binding failure during dispatch, an unrecognized role during
// translation, and any error from the remote call all propagate to the
// caller. No tool-error message is reported back to the model.
func (c *Chatter) Chat(ctx context.Context, message string, history *History) (string, error) {
	history.Append(Message{Role: RoleUser, Content: message})

	for round := 0; ; round++ {
		if c.maxRounds > 0 && round >= c.maxRounds {
			return "", fmt.Errorf("%w: %d rounds", ErrRoundLimit, c.maxRounds)
		}

		outbound, err := c.outbound(history)
		if err != nil {
			return "", err
		}
		resp, err := c.client.Complete(ctx, CompletionRequest{
			Model:      c.model,
			Messages:   outbound,
			Tools:      c.registry.Definitions(),
			ToolChoice: ToolChoiceAuto,
		})
		if err != nil {
			return "", err
		}

		if len(resp.ToolCalls) == 0 {
			content := resp.Content
			if content == "" {
				content = fallbackResponse
			}
			history.Append(Message{Role: RoleAssistant, Content: content})
			return content, nil
		}

		content := resp.Content
		if content == "" {
			content = fallbackToolCall
		}
		history.Append(Message{
			Role:      RoleAssistant,
			Content:   content,
			ToolCalls: slices.Clone(resp.ToolCalls),
		})
		if err := c.runToolCalls(ctx, resp.ToolCalls, history); err != nil {
			return "", err
		}
	}
}

// runToolCalls dispatches the requested calls in order and appends one tool
// message per call, pairing each result with its originating tool_call_id.
func (c *Chatter) runToolCalls(ctx context.Context, calls []ToolCall, history *History) error {
	for _, call := range calls {
		c.logger.Debug("dispatching tool call", "tool", call.ToolName, "call_id", call.ID)
		result, err := c.registry.Dispatch(ctx, call)
		if err != nil {
			return err
		}
		body, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal %s result: %w", call.ToolName, err)
		}
		content := string(body)
		if emptyResult(content) {
			content = fallbackToolResult
		}
		history.Append(Message{
			Role:       RoleTool,
			ToolCallID: call.ID,
			ToolName:   call.ToolName,
			Content:    content,
		})
	}
	return nil
}

// outbound builds the full message list for the next remote call: the
// per-Chatter system message followed by every history entry translated into
// the remote API's message shape.
func (c *Chatter) outbound(history *History) ([]ChatMessage, error) {
	msgs := make([]ChatMessage, 0, history.Len()+1)
	msgs = append(msgs, ChatMessage{Role: RoleSystem, Content: c.system})
	for _, m := range history.Messages() {
		wire, err := translate(m)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, wire)
	}
	return msgs, nil
}

// translate converts one history entry into the remote message shape.
// Assistant messages include their tool-call list only when non-empty; tool
// messages carry tool_call_id, tool name, and content. An unrecognized role
// is a fatal input error.
func translate(m Message) (ChatMessage, error) {
	switch m.Role {
	case RoleSystem, RoleUser:
		return ChatMessage{Role: m.Role, Content: m.Content}, nil
	case RoleAssistant:
		wire := ChatMessage{Role: RoleAssistant, Content: m.Content}
		if len(m.ToolCalls) > 0 {
			wire.ToolCalls = slices.Clone(m.ToolCalls)
		}
		return wire, nil
	case RoleTool:
		return ChatMessage{
			Role:       RoleTool,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			Name:       m.ToolName,
		}, nil
	default:
		return ChatMessage{}, &InvalidRoleError{Role: m.Role}
	}
}

// emptyResult reports whether a serialized tool result carries no content:
// zero bytes, a JSON null, or an empty JSON string.
func emptyResult(serialized string) bool {
	return serialized == "" || serialized == "null" || serialized == `""`
}
