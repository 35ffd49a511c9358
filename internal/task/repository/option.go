package repository

import (
	"errors"

	"chat-task-manager/internal/model"
)

// ErrNotFound is returned when the requested task does not exist.
var ErrNotFound = errors.New("task not found")

// CreateTaskOptions holds the parameters for creating a task.
// Priority and Category outside the reference sets are coerced to the
// schema defaults by the repository.
type CreateTaskOptions struct {
	Title       string
	Description string
	DueDate     string // "2006-01-02" or "2006-01-02 15:04", empty when unset
	Priority    model.Priority
	Category    model.Category
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	Status model.Status // filter by status, empty means all
	Limit  int          // max number of results (default 20)
	Offset int          // pagination offset
}
