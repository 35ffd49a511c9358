package repository

import (
	"context"

	"chat-task-manager/internal/model"
)

// TaskRepository is the interface for task persistence.
type TaskRepository interface {
	Ping(ctx context.Context) error
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status model.Status) (model.Task, error)
}
