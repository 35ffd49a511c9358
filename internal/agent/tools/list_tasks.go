package tools

import (
	"context"
	"fmt"

	"chat-task-manager/internal/agent"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
)

// ListTasksTool returns stored tasks.
type ListTasksTool struct {
	uc task.UseCase
}

// NewListTasksTool creates a new list tasks tool.
func NewListTasksTool(uc task.UseCase) agent.Tool {
	return &ListTasksTool{uc: uc}
}

func (t *ListTasksTool) Name() string {
	return "list_tasks"
}

func (t *ListTasksTool) Description() string {
	return "Return the user's tasks, newest first. Optionally filter by status (todo, in_progress, done, blocked)."
}

func (t *ListTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"status": map[string]interface{}{
				"type":        "string",
				"description": "Filter by status: todo, in_progress, done, blocked. Omit for all tasks.",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results (default 20)",
			},
		},
	}
}

func (t *ListTasksTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	input := task.ListInput{}
	if s, ok := params["status"].(string); ok && s != "" {
		status := model.Status(s)
		if !model.ValidStatus(status) {
			return map[string]interface{}{
				"status":  "error",
				"message": fmt.Sprintf("unknown status %q", s),
			}, nil
		}
		input.Status = status
	}
	if l, ok := params["limit"].(float64); ok {
		input.Limit = int(l)
	}

	out, err := t.uc.List(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]map[string]interface{}, 0, len(out.Tasks))
	for _, item := range out.Tasks {
		tasks = append(tasks, taskPayload(item))
	}

	return map[string]interface{}{
		"status": "success",
		"tasks":  tasks,
		"count":  out.Count,
	}, nil
}
