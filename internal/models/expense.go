package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultExpenseCategory подставляется, если клиент не указал категорию.
const DefaultExpenseCategory = "Materials"

// Expense описывает трату по проекту.
type Expense struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	ProjectID   uuid.UUID `db:"project_id" json:"project_id"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Amount      float64   `db:"amount" json:"amount"`
	ExpenseDate Date      `db:"expense_date" json:"expense_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	ProjectName  *string `db:"project_name" json:"project_name,omitempty"`
	ProjectColor *string `db:"project_color" json:"project_color,omitempty"`
}

// ExpenseSummaryRow — минимальная выборка для агрегации.
type ExpenseSummaryRow struct {
	Category    string  `db:"category"`
	Amount      float64 `db:"amount"`
	ProjectName *string `db:"project_name"`
}

// ExpenseSummary — итоги по категориям и проектам плюс общий total.
type ExpenseSummary struct {
	ByCategory map[string]float64 `json:"byCategory"`
	ByProject  map[string]float64 `json:"byProject"`
	Total      float64            `json:"total"`
}
