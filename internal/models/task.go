package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo  TaskStatus = "todo"
	StatusDoing TaskStatus = "doing"
	StatusDone  TaskStatus = "done"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task represents a task in the system. Every task belongs to exactly
// one user; ownership never changes after creation.
type Task struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	DueDate     *time.Time   `json:"due_date,omitempty" gorm:"column:due_date"`
	Status      TaskStatus   `json:"status" gorm:"not null;default:'todo'"`
	Priority    TaskPriority `json:"priority" gorm:"default:'medium'"`
	CompletedAt *time.Time   `json:"completed_at,omitempty" gorm:"column:completed_at"`
	UserID      string       `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task is past due: due date set, strictly
// before today's date, and the task not done.
func (t *Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return DateOf(*t.DueDate).Before(DateOf(today))
}

// IsComplete reports whether the task has status done.
func (t *Task) IsComplete() bool {
	return t.Status == StatusDone
}

// ApplyStatus transitions the task to the given status. The first time a
// task becomes done its CompletedAt is stamped; it is never overwritten
// and never cleared when the task later leaves done.
func (t *Task) ApplyStatus(status TaskStatus, now time.Time) {
	t.Status = status
	if status == StatusDone && t.CompletedAt == nil {
		t.CompletedAt = &now
	}
}

// DateOf truncates a timestamp to its calendar date, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
