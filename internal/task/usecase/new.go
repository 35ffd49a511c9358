package usecase

import (
	"chat-task-manager/internal/intake"
	"chat-task-manager/internal/task/repository"
	pkgLog "chat-task-manager/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	pipeline intake.Pipeline
	repo     repository.TaskRepository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, pipeline intake.Pipeline, repo repository.TaskRepository) *implUseCase {
	return &implUseCase{
		l:        l,
		pipeline: pipeline,
		repo:     repo,
	}
}
