package usecase

import (
	"context"
	"errors"
	"testing"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	"chat-task-manager/internal/task/repository"
	"chat-task-manager/pkg/log"
)

func seededUseCase(t *testing.T, titles ...string) (*implUseCase, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	for _, title := range titles {
		if _, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{
			Title:    title,
			Priority: model.PriorityNormal,
			Category: model.CategoryGeneral,
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	return New(log.Noop(), &mockPipeline{}, repo), repo
}

func TestList(t *testing.T) {
	uc, _ := seededUseCase(t, "a", "b", "c")

	out, err := uc.List(context.Background(), task.ListInput{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out.Count != 3 || len(out.Tasks) != 3 {
		t.Errorf("Expected 3 tasks, got count=%d len=%d", out.Count, len(out.Tasks))
	}
}

func TestGet(t *testing.T) {
	uc, _ := seededUseCase(t, "a")

	got, err := uc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "a" {
		t.Errorf("Expected title 'a', got %q", got.Title)
	}

	if _, err := uc.Get(context.Background(), 42); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got: %v", err)
	}
	if _, err := uc.Get(context.Background(), 0); !errors.Is(err, task.ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got: %v", err)
	}
}

func TestDelete(t *testing.T) {
	uc, repo := seededUseCase(t, "a")

	if err := uc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.tasks) != 0 {
		t.Error("Expected task removed")
	}

	if err := uc.Delete(context.Background(), 1); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got: %v", err)
	}
	if err := uc.Delete(context.Background(), -5); !errors.Is(err, task.ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got: %v", err)
	}
}

func TestComplete(t *testing.T) {
	uc, repo := seededUseCase(t, "a")

	done, err := uc.Complete(context.Background(), 1)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if done.Status != model.StatusDone {
		t.Errorf("Expected status done, got %q", done.Status)
	}
	if repo.tasks[1].Status != model.StatusDone {
		t.Error("Expected status persisted")
	}

	if _, err := uc.Complete(context.Background(), 42); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got: %v", err)
	}
}
