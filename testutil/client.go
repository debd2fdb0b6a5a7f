package testutil

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/skosovsky/chatsy"
)

// ScriptedClient is a chatsy.Client that replays queued responses in order
// and records every request it receives, so tests can assert on the exact
// outbound message lists and tool schemas the driver produced.
type ScriptedClient struct {
	Responses []chatsy.CompletionResponse
	Err       error // returned by every Complete call when set
	Requests  []chatsy.CompletionRequest
}

// Complete records the request and pops the next scripted response.
func (s *ScriptedClient) Complete(_ context.Context, req chatsy.CompletionRequest) (chatsy.CompletionResponse, error) {
	s.Requests = append(s.Requests, req)
	if s.Err != nil {
		return chatsy.CompletionResponse{}, s.Err
	}
	if len(s.Responses) == 0 {
		return chatsy.CompletionResponse{}, errors.New("scripted client: no responses left")
	}
	resp := s.Responses[0]
	s.Responses = s.Responses[1:]
	return resp, nil
}

// NewToolCall fabricates a model-issued tool call with a wire-realistic id.
func NewToolCall(name, argsJSON string) chatsy.ToolCall {
	return chatsy.ToolCall{
		ID:       "call_" + uuid.NewString(),
		ToolName: name,
		Args:     json.RawMessage(argsJSON),
	}
}

var _ chatsy.Client = (*ScriptedClient)(nil)
