package tools

import (
	"context"
	"fmt"

	"chat-task-manager/internal/agent"
	"chat-task-manager/internal/task"
)

// AddTaskTool creates a task from a natural language description.
type AddTaskTool struct {
	uc task.UseCase
}

// NewAddTaskTool creates a new add task tool.
func NewAddTaskTool(uc task.UseCase) agent.Tool {
	return &AddTaskTool{uc: uc}
}

func (t *AddTaskTool) Name() string {
	return "add_task"
}

func (t *AddTaskTool) Description() string {
	return "Create a task from a natural language description. Priority, due date, and category are extracted automatically. Pass relative date expressions (завтра, послезавтра) through as-is."
}

func (t *AddTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Task description exactly as the user phrased it, including any date expressions",
			},
		},
		"required": []string{"title"},
	}
}

func (t *AddTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	title, ok := params["title"].(string)
	if !ok || title == "" {
		return map[string]interface{}{
			"status":  "error",
			"message": "Task title cannot be empty",
		}, nil
	}

	out, err := t.uc.Create(ctx, task.CreateInput{Description: title})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return map[string]interface{}{
		"status":       "success",
		"task":         taskPayload(out.Task),
		"confirmation": out.Confirmation,
	}, nil
}
