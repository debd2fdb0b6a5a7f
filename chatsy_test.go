package chatsy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func raw(s string) json.RawMessage { return []byte(s) }

func TestToolCall(t *testing.T) {
	call := ToolCall{ID: "call_1", ToolName: "weather", Args: raw(`{"location":"Moscow"}`)}
	assert.Equal(t, "call_1", call.ID)
	assert.Equal(t, "weather", call.ToolName)
	assert.JSONEq(t, `{"location":"Moscow"}`, string(call.Args))
}

func TestHistory_AppendOrder(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, 0, h.Len())
	h.Append(Message{Role: RoleUser, Content: "hi"})
	h.Append(Message{Role: RoleAssistant, Content: "hello"})
	require.Equal(t, 2, h.Len())
	msgs := h.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
}

func TestHistory_MessagesIsCopy(t *testing.T) {
	h := NewHistory(Message{Role: RoleUser, Content: "original"})
	msgs := h.Messages()
	msgs[0].Content = "mutated"
	assert.Equal(t, "original", h.Messages()[0].Content)
}

func TestHistory_SeededMessages(t *testing.T) {
	seed := []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "u"},
	}
	h := NewHistory(seed...)
	require.Equal(t, 2, h.Len())
	seed[0].Content = "changed"
	assert.Equal(t, "sys", h.Messages()[0].Content)
}

func TestTranslate_Roles(t *testing.T) {
	calls := []ToolCall{{ID: "call_1", ToolName: "add", Args: raw(`{"a":"1"}`)}}
	tests := []struct {
		name string
		in   Message
		want ChatMessage
	}{
		{
			"system",
			Message{Role: RoleSystem, Content: "sys"},
			ChatMessage{Role: RoleSystem, Content: "sys"},
		},
		{
			"user",
			Message{Role: RoleUser, Content: "hi"},
			ChatMessage{Role: RoleUser, Content: "hi"},
		},
		{
			"assistant plain",
			Message{Role: RoleAssistant, Content: "hello"},
			ChatMessage{Role: RoleAssistant, Content: "hello"},
		},
		{
			"assistant with tool calls",
			Message{Role: RoleAssistant, Content: "c", ToolCalls: calls},
			ChatMessage{Role: RoleAssistant, Content: "c", ToolCalls: calls},
		},
		{
			"tool",
			Message{Role: RoleTool, Content: "5", ToolCallID: "call_1", ToolName: "add"},
			ChatMessage{Role: RoleTool, Content: "5", ToolCallID: "call_1", Name: "add"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_InvalidRole(t *testing.T) {
	for _, role := range []Role{"", "function", "developer"} {
		_, err := translate(Message{Role: role, Content: "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRole)
		var re *InvalidRoleError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, role, re.Role)
	}
}

func TestEmptyResult(t *testing.T) {
	assert.True(t, emptyResult(""))
	assert.True(t, emptyResult("null"))
	assert.True(t, emptyResult(`""`))
	assert.False(t, emptyResult(`"5"`))
	assert.False(t, emptyResult(`{}`))
	assert.False(t, emptyResult(`0`))
}
