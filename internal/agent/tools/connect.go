package tools

import (
	"context"
	"fmt"

	"chat-task-manager/internal/agent"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
)

// Connect verifies the task store answers a ping, then builds the full tool
// set over the task use case. A ping failure is returned as-is so callers can
// retry startup against a store that is still coming up. An empty tool set is
// an error: an agent without tools cannot serve any request.
func Connect(ctx context.Context, uc task.UseCase, repo repository.TaskRepository) ([]agent.Tool, error) {
	if uc == nil {
		return nil, fmt.Errorf("tools: task use case is required")
	}
	if repo == nil {
		return nil, fmt.Errorf("tools: task repository is required")
	}
	if err := repo.Ping(ctx); err != nil {
		return nil, fmt.Errorf("tools: task store unavailable: %w", err)
	}

	tools := []agent.Tool{
		NewAddTaskTool(uc),
		NewListTasksTool(uc),
		NewDeleteTaskTool(uc),
		NewCompleteTaskTool(uc),
	}
	if len(tools) == 0 {
		return nil, fmt.Errorf("tools: no tools available")
	}
	return tools, nil
}

// taskID reads a numeric id parameter. JSON numbers arrive as float64.
func taskID(params map[string]interface{}) (int64, bool) {
	switch v := params["id"].(type) {
	case float64:
		if v <= 0 || v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case int:
		if v <= 0 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

// taskPayload shapes a task for the LLM-facing tool result.
func taskPayload(t model.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":       t.ID,
		"title":    t.Title,
		"due_date": t.DueDate,
		"priority": string(t.Priority),
		"category": string(t.Category),
		"status":   string(t.Status),
	}
}
