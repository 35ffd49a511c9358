package chat

import (
	"context"

	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/task"
	pkgLog "chat-task-manager/pkg/log"
)

// Orchestrator runs one conversational turn for a session.
type Orchestrator interface {
	ProcessMessage(ctx context.Context, sessionID, userInput string) (string, error)
}

// Handler is the interface for the chat delivery handler.
type Handler interface {
	Chat(c *gin.Context)
	ListTasks(c *gin.Context)
	GetTask(c *gin.Context)
}

// New creates a new chat delivery handler.
func New(l pkgLog.Logger, orch Orchestrator, uc task.UseCase) Handler {
	return &handler{
		l:            l,
		orchestrator: orch,
		uc:           uc,
	}
}
