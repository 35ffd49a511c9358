package task

import "chat-task-manager/internal/model"

// CreateInput is the input for task creation from natural language.
type CreateInput struct {
	Description string // free-text task description from the user
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task         model.Task
	Confirmation string // Russian fixed-template confirmation, returned to the chat verbatim
}

// ListInput is the input for listing tasks.
type ListInput struct {
	Status model.Status // optional status filter, empty means all
	Limit  int          // max results (default 20)
	Offset int          // pagination offset
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks []model.Task
	Count int
}
