package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository/common"
)

// ExpenseRepository отвечает за траты.
type ExpenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// ListByUser возвращает траты владельца, свежие сверху.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]models.Expense, error) {
	query := `
		SELECT e.*, p.name AS project_name, p.color AS project_color
		FROM expenses e
		LEFT JOIN projects p ON p.id = e.project_id
		WHERE e.user_id = $1
	`
	args := []interface{}{userID}

	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(" AND e.project_id = $%d", len(args))
	}

	query += " ORDER BY e.expense_date DESC"

	expenses := []models.Expense{}
	if err := r.db.SelectContext(ctx, &expenses, query, args...); err != nil {
		return nil, fmt.Errorf("expense repository: list %w", err)
	}
	return expenses, nil
}

// SummaryRows возвращает минимальную выборку для агрегации итогов.
func (r *ExpenseRepository) SummaryRows(ctx context.Context, userID uuid.UUID) ([]models.ExpenseSummaryRow, error) {
	query := `
		SELECT e.category, e.amount, p.name AS project_name
		FROM expenses e
		LEFT JOIN projects p ON p.id = e.project_id
		WHERE e.user_id = $1
	`
	rows := []models.ExpenseSummaryRow{}
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("expense repository: summary rows %w", err)
	}
	return rows, nil
}

// Create сохраняет трату.
func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	query := `
		INSERT INTO expenses (user_id, project_id, description, category, amount, expense_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		e.UserID, e.ProjectID, e.Description, e.Category, e.Amount, e.ExpenseDate,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("expense repository: create %w", err)
	}
	return nil
}

// Delete удаляет трату владельца.
func (r *ExpenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "expenses", id, userID)
}
