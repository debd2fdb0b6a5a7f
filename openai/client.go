// Package openai implements chatsy.Client over the OpenAI chat-completions
// HTTP API. Any endpoint speaking the same wire shape (Azure OpenAI, local
// inference servers) can be targeted via WithBaseURL.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/skosovsky/chatsy"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-5-nano"

	envAPIKey = "OPENAI_API_KEY"
	envModel  = "OPENAI_MODEL"
)

// Client calls the chat-completions endpoint. It owns no retry or rate-limit
// handling; transport failures and non-2xx statuses are returned to the
// caller uninterpreted. Timeouts belong to the supplied http.Client or ctx.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (no trailing slash).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithModel sets the default model used when a request carries none.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithHTTPClient sets the underlying HTTP client (e.g. to impose a timeout).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a Client. An empty apiKey falls back to the OPENAI_API_KEY
// environment variable; the default model comes from OPENAI_MODEL when set.
func New(apiKey string, opts ...Option) *Client {
	if apiKey == "" {
		apiKey = os.Getenv(envAPIKey)
	}
	model := os.Getenv(envModel)
	if model == "" {
		model = defaultModel
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		model:      model,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends one chat-completion request and returns the first choice's
// message, flattening nested function calls into chatsy.ToolCall.
func (c *Client) Complete(ctx context.Context, req chatsy.CompletionRequest) (chatsy.CompletionResponse, error) {
	var zero chatsy.CompletionResponse

	model := req.Model
	if model == "" {
		model = c.model
	}
	payload := chatRequest{
		Model:      model,
		Messages:   toWireMessages(req.Messages),
		Tools:      req.Tools,
		ToolChoice: req.ToolChoice,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return zero, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return zero, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return zero, fmt.Errorf("openai api error: %s: %s", resp.Status, respBody)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, err
	}
	if len(out.Choices) == 0 {
		return zero, errors.New("openai: response contained no choices")
	}

	msg := out.Choices[0].Message
	result := chatsy.CompletionResponse{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, chatsy.ToolCall{
			ID:       tc.ID,
			ToolName: tc.Function.Name,
			Args:     json.RawMessage(tc.Function.Arguments),
		})
	}
	return result, nil
}

var _ chatsy.Client = (*Client)(nil)
