package orchestrator

import (
	"context"

	"chat-task-manager/pkg/llmprovider"
)

// Generator is the LLM surface the orchestrator drives.
// Implemented by llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// SessionMemory holds the recent conversation history for one chat session.
type SessionMemory struct {
	SessionID string
	Messages  []llmprovider.Message
}
