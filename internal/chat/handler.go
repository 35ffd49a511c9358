package chat

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task"
	pkgLog "chat-task-manager/pkg/log"
	pkgResponse "chat-task-manager/pkg/response"
)

type handler struct {
	l            pkgLog.Logger
	orchestrator Orchestrator
	uc           task.UseCase
}

// Chat handles a conversational turn.
// @Summary Chat turn
// @Description Send a user message and receive the assistant reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "User message with optional session id"
// @Success 200 {object} response.Resp{data=ChatResponse}
// @Router /api/v1/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat handler: failed to parse request: %v", err)
		pkgResponse.Error(c, ErrInvalidRequest, nil)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := h.orchestrator.ProcessMessage(ctx, sessionID, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "chat handler: ProcessMessage failed for session %s: %v", sessionID, err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
	})
}

// GetTask returns a single stored task.
// @Summary Get task
// @Description Get a stored task by id
// @Tags Tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} response.Resp{data=TaskItem}
// @Router /api/v1/tasks/{id} [get]
func (h *handler) GetTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		pkgResponse.Error(c, ErrInvalidTaskID, map[string]interface{}{"id": c.Param("id")})
		return
	}

	t, err := h.uc.Get(ctx, id)
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		pkgResponse.NotFound(c, err)
		return
	case err != nil:
		h.l.Errorf(ctx, "chat handler: Get failed for task %d: %v", id, err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, newTaskItem(t))
}

// ListTasks returns stored tasks, optionally filtered by status.
// @Summary List tasks
// @Description List stored tasks with optional status filter and pagination
// @Tags Tasks
// @Produce json
// @Param status query string false "Status filter (todo, in_progress, done, blocked)"
// @Param limit query int false "Max results"
// @Param offset query int false "Pagination offset"
// @Success 200 {object} response.Resp{data=ListTasksResponse}
// @Router /api/v1/tasks [get]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	input := task.ListInput{}
	if status := c.Query("status"); status != "" {
		if !model.ValidStatus(model.Status(status)) {
			pkgResponse.Error(c, ErrInvalidStatus, map[string]interface{}{"status": status})
			return
		}
		input.Status = model.Status(status)
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			input.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil && n >= 0 {
			input.Offset = n
		}
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "chat handler: List failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	items := make([]TaskItem, 0, len(output.Tasks))
	for _, t := range output.Tasks {
		items = append(items, newTaskItem(t))
	}

	pkgResponse.OK(c, ListTasksResponse{
		Tasks: items,
		Count: output.Count,
	})
}
