package usecase

import (
	"context"
	"time"

	"chat-task-manager/internal/intake"
	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task/repository"
	"chat-task-manager/pkg/duedate"
)

// mockPipeline returns a canned extraction state or error.
type mockPipeline struct {
	state *intake.ExtractionState
	err   error
	runs  int
}

func (m *mockPipeline) Run(ctx context.Context, description string) (*intake.ExtractionState, error) {
	m.runs++
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

// mockRepo is an in-memory TaskRepository.
type mockRepo struct {
	tasks      map[int64]model.Task
	nextID     int64
	createErr  error
	lastCreate repository.CreateTaskOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: map[int64]model.Task{}, nextID: 1}
}

func (m *mockRepo) Ping(ctx context.Context) error { return nil }

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.lastCreate = opt

	priority := opt.Priority
	if !model.ValidPriority(priority) {
		priority = model.DefaultPriority
	}
	category := opt.Category
	if !model.ValidCategory(category) {
		category = model.DefaultCategory
	}

	t := model.Task{
		ID:          m.nextID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    priority,
		Category:    category,
		Status:      model.StatusTodo,
		CreatedAt:   time.Now(),
	}
	m.tasks[t.ID] = t
	m.nextID++
	return t, nil
}

func (m *mockRepo) GetTask(ctx context.Context, id int64) (model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for id := m.nextID - 1; id >= 1; id-- {
		t, ok := m.tasks[id]
		if !ok {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id int64) error {
	if _, ok := m.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockRepo) SetStatus(ctx context.Context, id int64, status model.Status) (model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	t.Status = status
	m.tasks[id] = t
	return t, nil
}

func extractionState(description, priority, category string, due duedate.Resolution) *intake.ExtractionState {
	return &intake.ExtractionState{
		Description:     description,
		Priority:        priority,
		Category:        category,
		DueDateResolved: due,
		Task: &intake.AssembledTask{
			Description: description,
			Priority:    priority,
			DueDate:     due,
			Category:    category,
		},
		Confirmation: "✅ Задача создана:\n- Описание: " + description,
	}
}
