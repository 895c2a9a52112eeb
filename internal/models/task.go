package models

import (
	"time"

	"github.com/google/uuid"
)

// Приоритеты и статусы задач.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"

	TaskStatusTodo = "todo"
)

// Task описывает задачу внутри проекта.
type Task struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	ProjectID   uuid.UUID `db:"project_id" json:"project_id"`
	Name        string    `db:"name" json:"name"`
	Priority    string    `db:"priority" json:"priority"`
	Status      string    `db:"status" json:"status"`
	Assignee    *string   `db:"assignee" json:"assignee,omitempty"`
	DueDate     *Date     `db:"due_date" json:"due_date,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Поля JOIN с projects для списков, в таблице tasks их нет.
	ProjectName  *string `db:"project_name" json:"project_name,omitempty"`
	ProjectColor *string `db:"project_color" json:"project_color,omitempty"`
}

// TaskPatch — частичное обновление задачи.
type TaskPatch struct {
	Name        *string `json:"name"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Assignee    *string `json:"assignee"`
	DueDate     *Date   `json:"due_date"`
	Description *string `json:"description"`
}

// TaskFilter — необязательные фильтры списка задач.
type TaskFilter struct {
	ProjectID *uuid.UUID
	Priority  string
	Status    string
}
