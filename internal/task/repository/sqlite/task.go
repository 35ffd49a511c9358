package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chat-task-manager/internal/model"
	"chat-task-manager/internal/task/repository"
)

const taskColumns = `
	t.id, t.title, t.description, t.due_date,
	p.name, c.name, s.name,
	t.created_at, t.started_at, t.completed_at`

const taskJoins = `
	FROM tasks t
	JOIN priorities p ON p.id = t.priority_id
	JOIN categories c ON c.id = t.category_id
	JOIN statuses s ON s.id = t.status_id`

// CreateTask inserts a task. Values outside the reference sets are coerced
// to the schema defaults.
func (r *Repository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	priority := opt.Priority
	if !model.ValidPriority(priority) {
		r.l.Warnf(ctx, "unknown priority %q, storing as %q", priority, model.DefaultPriority)
		priority = model.DefaultPriority
	}
	category := opt.Category
	if !model.ValidCategory(category) {
		r.l.Warnf(ctx, "unknown category %q, storing as %q", category, model.DefaultCategory)
		category = model.DefaultCategory
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, due_date, priority_id, category_id, status_id)
		VALUES (?, ?, NULLIF(?, ''),
			(SELECT id FROM priorities WHERE name = ?),
			(SELECT id FROM categories WHERE name = ?),
			(SELECT id FROM statuses WHERE name = ?))`,
		opt.Title, opt.Description, opt.DueDate, string(priority), string(category), string(model.StatusTodo))
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlite: failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlite: failed to read insert id: %w", err)
	}
	return r.GetTask(ctx, id)
}

// GetTask returns a single task by id.
func (r *Repository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, "SELECT"+taskColumns+taskJoins+" WHERE t.id = ?", id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlite: failed to get task %d: %w", id, err)
	}
	return task, nil
}

// ListTasks returns tasks ordered by creation time, newest first.
func (r *Repository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}

	query := "SELECT" + taskColumns + taskJoins
	args := []interface{}{}
	if opt.Status != "" {
		query += " WHERE s.name = ?"
		args = append(args, string(opt.Status))
	}
	query += " ORDER BY t.id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// DeleteTask removes a task by id.
func (r *Repository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("sqlite: failed to delete task %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetStatus moves a task to the given status, stamping started_at on the
// first transition to in_progress and completed_at on done.
func (r *Repository) SetStatus(ctx context.Context, id int64, status model.Status) (model.Task, error) {
	if !model.ValidStatus(status) {
		return model.Task{}, fmt.Errorf("sqlite: unknown status %q", status)
	}

	query := `
		UPDATE tasks SET status_id = (SELECT id FROM statuses WHERE name = ?)`
	switch status {
	case model.StatusInProgress:
		query += ", started_at = COALESCE(started_at, CURRENT_TIMESTAMP)"
	case model.StatusDone:
		query += ", completed_at = CURRENT_TIMESTAMP"
	}
	query += " WHERE id = ?"

	res, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlite: failed to update task %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlite: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return r.GetTask(ctx, id)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task        model.Task
		description sql.NullString
		dueDate     sql.NullString
		createdAt   string
		startedAt   sql.NullString
		completedAt sql.NullString
	)
	err := row.Scan(
		&task.ID, &task.Title, &description, &dueDate,
		&task.Priority, &task.Category, &task.Status,
		&createdAt, &startedAt, &completedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Description = description.String
	task.DueDate = dueDate.String
	task.CreatedAt = parseTimestamp(createdAt)
	if startedAt.Valid {
		t := parseTimestamp(startedAt.String)
		task.StartedAt = &t
	}
	if completedAt.Valid {
		t := parseTimestamp(completedAt.String)
		task.CompletedAt = &t
	}
	return task, nil
}

// parseTimestamp reads the SQLite CURRENT_TIMESTAMP format.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
