package openai

import "context"

// IOpenAI defines the interface for OpenAI-compatible LLM clients
type IOpenAI interface {
	GenerateContent(ctx context.Context, req Request) (*Response, error)
	Model() string
}

var _ IOpenAI = (*Client)(nil)
