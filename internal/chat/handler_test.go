package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	pkgLog "chat-task-manager/pkg/log"
	pkgResponse "chat-task-manager/pkg/response"
)

type mockOrchestrator struct {
	reply     string
	err       error
	sessionID string
	input     string
}

func (m *mockOrchestrator) ProcessMessage(_ context.Context, sessionID, userInput string) (string, error) {
	m.sessionID = sessionID
	m.input = userInput
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type mockUseCase struct {
	tasks     []model.Task
	listErr   error
	listInput task.ListInput
}

func (m *mockUseCase) Create(context.Context, task.CreateInput) (task.CreateOutput, error) {
	return task.CreateOutput{}, errors.New("not implemented")
}

func (m *mockUseCase) Get(_ context.Context, id int64) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (m *mockUseCase) List(_ context.Context, input task.ListInput) (task.ListOutput, error) {
	m.listInput = input
	if m.listErr != nil {
		return task.ListOutput{}, m.listErr
	}
	return task.ListOutput{Tasks: m.tasks, Count: len(m.tasks)}, nil
}

func (m *mockUseCase) Delete(context.Context, int64) error { return errors.New("not implemented") }

func (m *mockUseCase) Complete(context.Context, int64) (model.Task, error) {
	return model.Task{}, errors.New("not implemented")
}

func newTestRouter(orch *mockOrchestrator, uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(pkgLog.Noop(), orch, uc)
	r := gin.New()
	r.POST("/api/v1/chat", h.Chat)
	r.GET("/api/v1/tasks", h.ListTasks)
	r.GET("/api/v1/tasks/:id", h.GetTask)
	return r
}

func decodeResp(t *testing.T, body []byte) pkgResponse.Resp {
	t.Helper()
	var resp pkgResponse.Resp
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp
}

func TestChat_Success(t *testing.T) {
	orch := &mockOrchestrator{reply: "✅ Задача создана"}
	r := newTestRouter(orch, &mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat",
		strings.NewReader(`{"message":"купить молоко завтра","session_id":"s-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if orch.sessionID != "s-1" {
		t.Errorf("expected session s-1, got %q", orch.sessionID)
	}
	if orch.input != "купить молоко завтра" {
		t.Errorf("unexpected input %q", orch.input)
	}

	resp := decodeResp(t, w.Body.Bytes())
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %v", resp.Data)
	}
	if data["reply"] != "✅ Задача создана" {
		t.Errorf("unexpected reply %v", data["reply"])
	}
	if data["session_id"] != "s-1" {
		t.Errorf("unexpected session id %v", data["session_id"])
	}
}

func TestChat_GeneratesSessionID(t *testing.T) {
	orch := &mockOrchestrator{reply: "ok"}
	r := newTestRouter(orch, &mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat",
		strings.NewReader(`{"message":"привет"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if orch.sessionID == "" {
		t.Error("expected generated session id, got empty")
	}

	resp := decodeResp(t, w.Body.Bytes())
	data := resp.Data.(map[string]interface{})
	if data["session_id"] != orch.sessionID {
		t.Errorf("response session id %v does not match orchestrator session %q",
			data["session_id"], orch.sessionID)
	}
}

func TestChat_MissingMessage(t *testing.T) {
	orch := &mockOrchestrator{reply: "ok"}
	r := newTestRouter(orch, &mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if orch.input != "" {
		t.Error("orchestrator should not be called for invalid request")
	}
}

func TestChat_OrchestratorFailure(t *testing.T) {
	orch := &mockOrchestrator{err: errors.New("all providers failed")}
	r := newTestRouter(orch, &mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat",
		strings.NewReader(`{"message":"сделать отчёт"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestListTasks(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	uc := &mockUseCase{tasks: []model.Task{
		{
			ID:        1,
			Title:     "купить молоко",
			Priority:  model.PriorityNormal,
			Category:  model.CategoryGeneral,
			Status:    model.StatusTodo,
			DueDate:   "2024-05-02 18:00",
			CreatedAt: created,
		},
	}}
	r := newTestRouter(&mockOrchestrator{}, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?status=todo&limit=5&offset=10", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.listInput.Status != model.StatusTodo {
		t.Errorf("expected status filter todo, got %q", uc.listInput.Status)
	}
	if uc.listInput.Limit != 5 || uc.listInput.Offset != 10 {
		t.Errorf("unexpected pagination: limit=%d offset=%d", uc.listInput.Limit, uc.listInput.Offset)
	}

	resp := decodeResp(t, w.Body.Bytes())
	data := resp.Data.(map[string]interface{})
	if data["count"] != float64(1) {
		t.Errorf("expected count 1, got %v", data["count"])
	}
	tasks := data["tasks"].([]interface{})
	first := tasks[0].(map[string]interface{})
	if first["title"] != "купить молоко" {
		t.Errorf("unexpected title %v", first["title"])
	}
	if first["due_date"] != "2024-05-02 18:00" {
		t.Errorf("unexpected due date %v", first["due_date"])
	}
	if first["created_at"] != "2024-05-01 10:00:00" {
		t.Errorf("unexpected created_at %v", first["created_at"])
	}
}

func TestGetTask(t *testing.T) {
	uc := &mockUseCase{tasks: []model.Task{
		{
			ID:        7,
			Title:     "сделать отчёт",
			Priority:  model.PriorityHigh,
			Category:  model.CategoryWork,
			Status:    model.StatusTodo,
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}}
	r := newTestRouter(&mockOrchestrator{}, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/7", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	resp := decodeResp(t, w.Body.Bytes())
	data := resp.Data.(map[string]interface{})
	if data["id"] != float64(7) {
		t.Errorf("unexpected id %v", data["id"])
	}
	if data["title"] != "сделать отчёт" {
		t.Errorf("unexpected title %v", data["title"])
	}
}

func TestGetTask_NotFound(t *testing.T) {
	r := newTestRouter(&mockOrchestrator{}, &mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/99", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetTask_InvalidID(t *testing.T) {
	r := newTestRouter(&mockOrchestrator{}, &mockUseCase{})

	for _, id := range []string{"abc", "-3", "0"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+id, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %d", id, w.Code)
		}
	}
}

func TestListTasks_InvalidStatus(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(&mockOrchestrator{}, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?status=archived", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListTasks_UseCaseFailure(t *testing.T) {
	uc := &mockUseCase{listErr: errors.New("db closed")}
	r := newTestRouter(&mockOrchestrator{}, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
