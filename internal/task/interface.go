package task

import (
	"context"

	"chat-task-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create runs the extraction pipeline over a free-text description,
	// persists the assembled task, and returns the stored record together
	// with the user-facing confirmation.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Get returns a single task by ID.
	Get(ctx context.Context, id int64) (model.Task, error)

	// List returns stored tasks, optionally filtered by status.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Delete removes a task by ID.
	Delete(ctx context.Context, id int64) error

	// Complete marks a task done.
	Complete(ctx context.Context, id int64) (model.Task, error)
}
