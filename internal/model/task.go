package model

import "time"

// Priority is a task priority level from the closed reference set.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is applied when the extracted value is not a member of the set.
const DefaultPriority = PriorityNormal

// Category is a task category from the closed reference set.
type Category string

const (
	CategoryGeneral  Category = "general"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
)

// DefaultCategory is applied when the extracted value is not a member of the set.
const DefaultCategory = CategoryGeneral

// Status is a task lifecycle status.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusBlocked    Status = "blocked"
)

// Task represents a stored task.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     string // "2006-01-02" or "2006-01-02 15:04", empty when unset
	Priority    Priority
	Category    Category
	Status      Status
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// ValidPriority reports whether p is a member of the reference set.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// ValidCategory reports whether c is a member of the reference set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryGeneral, CategoryWork, CategoryPersonal, CategoryStudy:
		return true
	}
	return false
}

// ValidStatus reports whether s is a member of the reference set.
func ValidStatus(s Status) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusBlocked:
		return true
	}
	return false
}

// NormalizePriority maps free-form extracted text onto the reference set,
// falling back to DefaultPriority for anything unrecognized. Russian synonyms
// from the extraction prompts are accepted.
func NormalizePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return Priority(s)
	}
	switch s {
	case "низкий":
		return PriorityLow
	case "средний", "обычный":
		return PriorityNormal
	case "высокий", "срочный":
		return PriorityHigh
	}
	return DefaultPriority
}

// NormalizeCategory maps free-form extracted text onto the reference set,
// falling back to DefaultCategory for anything unrecognized.
func NormalizeCategory(s string) Category {
	switch Category(s) {
	case CategoryGeneral, CategoryWork, CategoryPersonal, CategoryStudy:
		return Category(s)
	}
	switch s {
	case "общее", "общая":
		return CategoryGeneral
	case "работа", "рабочая":
		return CategoryWork
	case "личное", "личная":
		return CategoryPersonal
	case "учёба", "учеба", "обучение":
		return CategoryStudy
	}
	return DefaultCategory
}
