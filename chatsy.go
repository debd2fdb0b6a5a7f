package chatsy

import (
	"context"
	"encoding/json"
	"slices"
)

// Role identifies the author of a conversation Message.
type Role string

// Conversation roles. Any other value is rejected during outbound translation.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolChoiceAuto lets the remote model decide whether to call a tool.
const ToolChoiceAuto = "auto"

// Tool is the contract for an LLM-callable instrument.
// It is provider-agnostic (no knowledge of OpenAI, Anthropic, etc.).
type Tool interface {
	Name() string
	Description() string
	// Parameters returns a valid JSON Schema as map (compatible with LLM tool definitions).
	Parameters() map[string]any
	// Call invokes the tool with the already-parsed argument object. Arguments
	// that do not fit the tool's declared parameters fail with *BindingError.
	Call(ctx context.Context, args map[string]any) (any, error)
}

// ToolFunc is the handler signature for tools built with NewTool.
// Argument values are passed through exactly as they were decoded from the
// model's JSON; the handler does its own conversion.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// ToolCall is a single execution request (as produced by the LLM).
type ToolCall struct {
	ID       string
	ToolName string
	Args     json.RawMessage // JSON payload of arguments
}

// Message is one turn in a conversation history. Fields beyond Role and
// Content are role-specific: ToolCalls is set on assistant messages that
// request tool invocations; ToolCallID and ToolName are set on tool messages
// and must match a call from the immediately preceding assistant message.
type Message struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
}

// History is an ordered, append-only record of a conversation. It is owned by
// the caller for the lifetime of a session; Chatter.Chat appends to it in
// place and never reorders or truncates it. Not safe for concurrent use.
type History struct {
	messages []Message
}

// NewHistory returns a History seeded with the given messages.
func NewHistory(messages ...Message) *History {
	return &History{messages: slices.Clone(messages)}
}

// Append adds a message to the end of the history.
func (h *History) Append(m Message) {
	h.messages = append(h.messages, m)
}

// Messages returns a copy of the history in order. Mutating the returned
// slice does not affect the history.
func (h *History) Messages() []Message {
	return slices.Clone(h.messages)
}

// Len returns the number of messages in the history.
func (h *History) Len() int {
	return len(h.messages)
}

// ChatMessage is a history entry translated into the remote API's message
// shape. The transport (e.g. package openai) maps it onto the provider wire
// format.
type ChatMessage struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
}

// CompletionRequest is one round trip to the remote model.
type CompletionRequest struct {
	Model      string
	Messages   []ChatMessage
	Tools      []ToolDefinition
	ToolChoice string
}

// CompletionResponse is the single message returned by the remote model:
// either plain text content, or a list of tool-call requests (possibly with
// accompanying content).
type CompletionResponse struct {
	Content   string
	ToolCalls []ToolCall
}

// Client is the black-box remote model endpoint. Any API exposing the
// chat-completion shape (messages in, one message out) can implement it.
// Implementations own their transport concerns: timeouts, retries, and
// credentials are not managed by this package.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}
