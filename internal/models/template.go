package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Template — публичный шаблон проекта с набором заготовок задач.
type Template struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Name        string           `db:"name" json:"name"`
	Description *string          `db:"description" json:"description,omitempty"`
	IsPublic    bool             `db:"is_public" json:"is_public"`
	Tasks       TemplateTaskList `db:"tasks" json:"tasks"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

// TemplateTask — заготовка задачи: имя, приоритет и смещение в днях
// от даты старта проекта.
type TemplateTask struct {
	Name       string `json:"name"`
	Priority   string `json:"priority,omitempty"`
	DaysOffset int    `json:"days_offset"`
}

// TemplateTaskList хранится в JSONB колонке.
type TemplateTaskList []TemplateTask

// Value реализует driver.Valuer.
func (l TemplateTaskList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan реализует sql.Scanner.
func (l *TemplateTaskList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("models: cannot scan %T into TemplateTaskList", src)
	}
}
