// Package anthropic provides a minimal client for the Anthropic Messages
// API. The Client is safe for concurrent use from multiple job runs; the
// MessageSender interface lets callers substitute a mock in tests.
package anthropic

import (
	"context"
	"strings"
)

// MessageSender sends a messages request and returns the response. The
// production implementation is Client; tests provide mocks.
type MessageSender interface {
	SendMessage(ctx context.Context, req *MessagesRequest) (*MessagesResponse, error)
}

// MessagesRequest is the request body for the /v1/messages endpoint.
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// Message is a single message in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessagesResponse is the response body from the /v1/messages endpoint.
type MessagesResponse struct {
	ID         string         `json:"id"`
	Content    []ContentBlock `json:"content"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
	Usage      Usage          `json:"usage"`
}

// ContentBlock is one block of generated content, currently always text.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage reports token consumption for a call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// FirstText returns the trimmed text of the first content block, or an
// empty string when the response carries no content.
func (r *MessagesResponse) FirstText() string {
	if len(r.Content) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Content[0].Text)
}
