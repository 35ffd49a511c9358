package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task/repository"
	pkgLog "chat-task-manager/pkg/log"
)

type stubChatHandler struct{}

func (stubChatHandler) Chat(c *gin.Context)      { c.Status(http.StatusOK) }
func (stubChatHandler) ListTasks(c *gin.Context) { c.Status(http.StatusOK) }
func (stubChatHandler) GetTask(c *gin.Context)   { c.Status(http.StatusOK) }

type stubRepo struct {
	pingErr error
}

func (s *stubRepo) Ping(context.Context) error { return s.pingErr }

func (s *stubRepo) CreateTask(context.Context, repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, errors.New("not implemented")
}

func (s *stubRepo) GetTask(context.Context, int64) (model.Task, error) {
	return model.Task{}, errors.New("not implemented")
}

func (s *stubRepo) ListTasks(context.Context, repository.ListTasksOptions) ([]model.Task, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) DeleteTask(context.Context, int64) error { return errors.New("not implemented") }

func (s *stubRepo) SetStatus(context.Context, int64, model.Status) (model.Task, error) {
	return model.Task{}, errors.New("not implemented")
}

func newTestServer(t *testing.T, repo repository.TaskRepository) *HTTPServer {
	t.Helper()
	srv, err := New(pkgLog.Noop(), Config{
		Logger:      pkgLog.Noop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		ChatHandler: stubChatHandler{},
		Repository:  repo,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	_, err := New(pkgLog.Noop(), Config{
		Port: 8080,
		Mode: gin.TestMode,
	})
	if err == nil {
		t.Fatal("expected error for missing chat handler")
	}
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t, &stubRepo{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.gin.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestReadyCheck_StorageDown(t *testing.T) {
	srv := newTestServer(t, &stubRepo{pingErr: errors.New("database is locked")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when storage ping fails, got %d", w.Code)
	}
}

func TestChatRoutesRegistered(t *testing.T) {
	srv := newTestServer(t, &stubRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from registered tasks route, got %d", w.Code)
	}
}
