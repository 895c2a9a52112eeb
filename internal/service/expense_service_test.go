package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/renovateiq/renovateiq-backend/internal/models"
)

type mockExpenseRepo struct {
	mock.Mock
}

func (m *mockExpenseRepo) SummaryRows(ctx context.Context, userID uuid.UUID) ([]models.ExpenseSummaryRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExpenseSummaryRow), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestExpenseSummary(t *testing.T) {
	repo := new(mockExpenseRepo)
	svc := NewExpenseService(repo)
	userID := uuid.New()

	repo.On("SummaryRows", mock.Anything, userID).Return([]models.ExpenseSummaryRow{
		{Category: "Materials", Amount: 100, ProjectName: strPtr("Kitchen")},
		{Category: "Labor", Amount: 50, ProjectName: strPtr("Kitchen")},
		{Category: "Materials", Amount: 25, ProjectName: strPtr("Bathroom")},
	}, nil)

	summary, err := svc.Summary(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 175.0, summary.Total)
	assert.Equal(t, 125.0, summary.ByCategory["Materials"])
	assert.Equal(t, 50.0, summary.ByCategory["Labor"])
	assert.Equal(t, 150.0, summary.ByProject["Kitchen"])
	assert.Equal(t, 25.0, summary.ByProject["Bathroom"])
}

func TestExpenseSummaryUnknownProject(t *testing.T) {
	repo := new(mockExpenseRepo)
	svc := NewExpenseService(repo)
	userID := uuid.New()

	repo.On("SummaryRows", mock.Anything, userID).Return([]models.ExpenseSummaryRow{
		{Category: "Other", Amount: 10, ProjectName: nil},
	}, nil)

	summary, err := svc.Summary(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, summary.ByProject["Unknown"])
}

func TestExpenseSummaryEmpty(t *testing.T) {
	repo := new(mockExpenseRepo)
	svc := NewExpenseService(repo)
	userID := uuid.New()

	repo.On("SummaryRows", mock.Anything, userID).Return([]models.ExpenseSummaryRow{}, nil)

	summary, err := svc.Summary(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, summary.Total)
	assert.Empty(t, summary.ByCategory)
	assert.Empty(t, summary.ByProject)
}

func TestExpenseSummaryRepoError(t *testing.T) {
	repo := new(mockExpenseRepo)
	svc := NewExpenseService(repo)
	userID := uuid.New()

	repo.On("SummaryRows", mock.Anything, userID).Return(nil, errors.New("db down"))

	summary, err := svc.Summary(context.Background(), userID)
	assert.Error(t, err)
	assert.Nil(t, summary)
}
