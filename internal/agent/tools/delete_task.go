package tools

import (
	"context"
	"errors"
	"fmt"

	"chat-task-manager/internal/agent"
	"chat-task-manager/internal/task"
)

// DeleteTaskTool removes a task by ID.
type DeleteTaskTool struct {
	uc task.UseCase
}

// NewDeleteTaskTool creates a new delete task tool.
func NewDeleteTaskTool(uc task.UseCase) agent.Tool {
	return &DeleteTaskTool{uc: uc}
}

func (t *DeleteTaskTool) Name() string {
	return "delete_task"
}

func (t *DeleteTaskTool) Description() string {
	return "Delete a task by its numeric ID."
}

func (t *DeleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":        "integer",
				"description": "Task ID to delete",
			},
		},
		"required": []string{"id"},
	}
}

func (t *DeleteTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	id, ok := taskID(params)
	if !ok {
		return map[string]interface{}{
			"status":  "error",
			"message": "Invalid task ID",
		}, nil
	}

	err := t.uc.Delete(ctx, id)
	if errors.Is(err, task.ErrTaskNotFound) || errors.Is(err, task.ErrInvalidID) {
		return map[string]interface{}{
			"status":  "error",
			"message": fmt.Sprintf("Task with ID %d not found", id),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return map[string]interface{}{
		"status":  "success",
		"message": fmt.Sprintf("Task %d deleted", id),
		"id":      id,
	}, nil
}
