package usecase

import (
	"context"
	"errors"
	"fmt"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
)

// Get returns a single task by ID.
func (uc *implUseCase) Get(ctx context.Context, id int64) (model.Task, error) {
	if id <= 0 {
		return model.Task{}, task.ErrInvalidID
	}
	stored, err := uc.repo.GetTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return stored, nil
}

// List returns stored tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}

// Delete removes a task by ID.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return task.ErrInvalidID
	}
	err := uc.repo.DeleteTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	uc.l.Infof(ctx, "Delete: removed task id=%d", id)
	return nil
}

// Complete marks a task done.
func (uc *implUseCase) Complete(ctx context.Context, id int64) (model.Task, error) {
	if id <= 0 {
		return model.Task{}, task.ErrInvalidID
	}
	stored, err := uc.repo.SetStatus(ctx, id, model.StatusDone)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to complete task: %w", err)
	}
	uc.l.Infof(ctx, "Complete: task id=%d done", id)
	return stored, nil
}
