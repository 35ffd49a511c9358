package tools

import (
	"context"
	"errors"
	"fmt"

	"chat-task-manager/internal/agent"
	"chat-task-manager/internal/task"
)

// CompleteTaskTool marks a task done.
type CompleteTaskTool struct {
	uc task.UseCase
}

// NewCompleteTaskTool creates a new complete task tool.
func NewCompleteTaskTool(uc task.UseCase) agent.Tool {
	return &CompleteTaskTool{uc: uc}
}

func (t *CompleteTaskTool) Name() string {
	return "complete_task"
}

func (t *CompleteTaskTool) Description() string {
	return "Mark a task as done by its numeric ID."
}

func (t *CompleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":        "integer",
				"description": "Task ID to complete",
			},
		},
		"required": []string{"id"},
	}
}

func (t *CompleteTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	id, ok := taskID(params)
	if !ok {
		return map[string]interface{}{
			"status":  "error",
			"message": "Invalid task ID",
		}, nil
	}

	done, err := t.uc.Complete(ctx, id)
	if errors.Is(err, task.ErrTaskNotFound) || errors.Is(err, task.ErrInvalidID) {
		return map[string]interface{}{
			"status":  "error",
			"message": fmt.Sprintf("Task with ID %d not found", id),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	return map[string]interface{}{
		"status": "success",
		"task":   taskPayload(done),
	}, nil
}
