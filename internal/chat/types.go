package chat

import (
	"chat-task-manager/internal/model"
	pkgResponse "chat-task-manager/pkg/response"
)

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the payload of a successful chat turn.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// TaskItem is the task representation on the HTTP surface.
type TaskItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	StartedAt   string `json:"started_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// ListTasksResponse is the payload of GET /api/v1/tasks.
type ListTasksResponse struct {
	Tasks []TaskItem `json:"tasks"`
	Count int        `json:"count"`
}

func newTaskItem(t model.Task) TaskItem {
	item := TaskItem{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(pkgResponse.DateTimeFormat),
	}
	if t.StartedAt != nil {
		item.StartedAt = t.StartedAt.Format(pkgResponse.DateTimeFormat)
	}
	if t.CompletedAt != nil {
		item.CompletedAt = t.CompletedAt.Format(pkgResponse.DateTimeFormat)
	}
	return item
}
