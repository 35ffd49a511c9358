package usecase

import (
	"context"
	"fmt"
	"strings"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
)

// Create runs the extraction pipeline over the description and persists the
// assembled task. The stored due date is the resolver value, never the raw
// model text.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Create: input_length=%d", len(input.Description))

	state, err := uc.pipeline.Run(ctx, input.Description)
	if err != nil {
		return task.CreateOutput{}, fmt.Errorf("extraction failed: %w", err)
	}

	stored, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       titleFrom(state.Description),
		Description: state.Description,
		DueDate:     state.Task.DueDate.Format(),
		Priority:    model.NormalizePriority(state.Task.Priority),
		Category:    model.NormalizeCategory(state.Task.Category),
	})
	if err != nil {
		return task.CreateOutput{}, fmt.Errorf("failed to store task: %w", err)
	}

	uc.l.Infof(ctx, "Create: stored task id=%d priority=%s category=%s due=%q",
		stored.ID, stored.Priority, stored.Category, stored.DueDate)

	return task.CreateOutput{
		Task:         stored,
		Confirmation: state.Confirmation,
	}, nil
}

// titleFrom derives a short title: the first line of the description,
// truncated to 100 runes.
func titleFrom(description string) string {
	title := description
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = title[:i]
	}
	title = strings.TrimSpace(title)
	runes := []rune(title)
	if len(runes) > 100 {
		title = string(runes[:100])
	}
	return title
}
