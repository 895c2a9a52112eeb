package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/renovateiq/renovateiq-backend/internal/models"
)

type ExpenseSummaryRepository interface {
	SummaryRows(ctx context.Context, userID uuid.UUID) ([]models.ExpenseSummaryRow, error)
}

type ExpenseService struct {
	repo ExpenseSummaryRepository
}

func NewExpenseService(repo ExpenseSummaryRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Summary агрегирует траты владельца за один проход по строкам.
// Траты без проекта попадают в корзину "Unknown".
func (s *ExpenseService) Summary(ctx context.Context, userID uuid.UUID) (*models.ExpenseSummary, error) {
	rows, err := s.repo.SummaryRows(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("expense service: summary %w", err)
	}

	summary := &models.ExpenseSummary{
		ByCategory: map[string]float64{},
		ByProject:  map[string]float64{},
	}

	for _, row := range rows {
		projectName := "Unknown"
		if row.ProjectName != nil && *row.ProjectName != "" {
			projectName = *row.ProjectName
		}

		summary.ByCategory[row.Category] += row.Amount
		summary.ByProject[projectName] += row.Amount
		summary.Total += row.Amount
	}

	return summary, nil
}
