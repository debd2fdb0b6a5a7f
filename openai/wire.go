package openai

import "github.com/skosovsky/chatsy"

// chatRequest is the outbound chat-completions payload.
type chatRequest struct {
	Model      string                  `json:"model"`
	Messages   []wireMessage           `json:"messages"`
	Tools      []chatsy.ToolDefinition `json:"tools,omitempty"`
	ToolChoice string                  `json:"tool_choice,omitempty"`
}

// wireMessage is one message in the provider's shape. Content is always
// emitted: tool messages require it, and assistant tool-call messages carry
// placeholder text.
type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	Name       string         `json:"name,omitempty"`
}

type wireToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function wireFunctionCall `json:"function"`
}

type wireFunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role      string         `json:"role"`
			Content   string         `json:"content"`
			ToolCalls []wireToolCall `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// toWireMessages maps translated chat messages onto the provider wire format,
// re-nesting flattened tool calls into the function envelope.
func toWireMessages(messages []chatsy.ChatMessage) []wireMessage {
	out := make([]wireMessage, len(messages))
	for i, m := range messages {
		wire := wireMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			Name:       m.Name,
		}
		for _, tc := range m.ToolCalls {
			wire.ToolCalls = append(wire.ToolCalls, wireToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: wireFunctionCall{
					Name:      tc.ToolName,
					Arguments: string(tc.Args),
				},
			})
		}
		out[i] = wire
	}
	return out
}
