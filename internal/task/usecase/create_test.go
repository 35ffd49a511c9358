package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-task-manager/internal/intake"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	"chat-task-manager/pkg/duedate"
	"chat-task-manager/pkg/log"
)

func TestCreate_StoresResolvedDueDate(t *testing.T) {
	due := duedate.Resolution{
		Kind: duedate.KindDateTime,
		Time: time.Date(2024, 5, 2, 18, 0, 0, 0, time.UTC),
	}
	pipeline := &mockPipeline{state: extractionState("встреча завтра вечером", "high", "work", due)}
	repo := newMockRepo()
	uc := New(log.Noop(), pipeline, repo)

	out, err := uc.Create(context.Background(), task.CreateInput{Description: "встреча завтра вечером"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if repo.lastCreate.DueDate != "2024-05-02 18:00" {
		t.Errorf("Expected resolver value stored, got %q", repo.lastCreate.DueDate)
	}
	if out.Task.Priority != model.PriorityHigh {
		t.Errorf("Expected priority high, got %q", out.Task.Priority)
	}
	if out.Task.Category != model.CategoryWork {
		t.Errorf("Expected category work, got %q", out.Task.Category)
	}
	if out.Confirmation == "" {
		t.Error("Expected confirmation text")
	}
}

func TestCreate_NormalizesExtractedValues(t *testing.T) {
	pipeline := &mockPipeline{state: extractionState("задача", "высокий", "учёба", duedate.Unresolved())}
	repo := newMockRepo()
	uc := New(log.Noop(), pipeline, repo)

	out, err := uc.Create(context.Background(), task.CreateInput{Description: "задача"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if out.Task.Priority != model.PriorityHigh {
		t.Errorf("Expected 'высокий' normalized to high, got %q", out.Task.Priority)
	}
	if out.Task.Category != model.CategoryStudy {
		t.Errorf("Expected 'учёба' normalized to study, got %q", out.Task.Category)
	}
	if out.Task.DueDate != "" {
		t.Errorf("Expected no due date, got %q", out.Task.DueDate)
	}
}

func TestCreate_EmptyInput(t *testing.T) {
	uc := New(log.Noop(), &mockPipeline{}, newMockRepo())

	if _, err := uc.Create(context.Background(), task.CreateInput{Description: "   "}); !errors.Is(err, task.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got: %v", err)
	}
}

func TestCreate_PipelineAbort(t *testing.T) {
	stageErr := &intake.StageError{Stage: intake.StageDueDate, Err: errors.New("backend down")}
	pipeline := &mockPipeline{err: stageErr}
	repo := newMockRepo()
	uc := New(log.Noop(), pipeline, repo)

	_, err := uc.Create(context.Background(), task.CreateInput{Description: "задача"})
	var got *intake.StageError
	if !errors.As(err, &got) {
		t.Fatalf("Expected StageError to propagate, got: %v", err)
	}
	if len(repo.tasks) != 0 {
		t.Error("Expected nothing persisted on abort")
	}
}

func TestCreate_RepoFailure(t *testing.T) {
	pipeline := &mockPipeline{state: extractionState("задача", "normal", "general", duedate.Unresolved())}
	repo := newMockRepo()
	repo.createErr = errors.New("disk full")
	uc := New(log.Noop(), pipeline, repo)

	if _, err := uc.Create(context.Background(), task.CreateInput{Description: "задача"}); err == nil {
		t.Fatal("Expected error from repository")
	}
}

func TestTitleFrom(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"купить молоко", "купить молоко"},
		{"первая строка\nвторая строка", "первая строка"},
		{"  с пробелами  ", "с пробелами"},
	}
	for _, tc := range cases {
		if got := titleFrom(tc.in); got != tc.want {
			t.Errorf("titleFrom(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	long := make([]rune, 150)
	for i := range long {
		long[i] = 'я'
	}
	if got := titleFrom(string(long)); len([]rune(got)) != 100 {
		t.Errorf("Expected 100-rune truncation, got %d runes", len([]rune(got)))
	}
}
