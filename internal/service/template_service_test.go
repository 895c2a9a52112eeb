package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
)

type mockTemplateRepo struct {
	mock.Mock
}

func (m *mockTemplateRepo) ListPublic(ctx context.Context) ([]models.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Template), args.Error(1)
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *mockTemplateRepo) Apply(ctx context.Context, project *models.Project, tasks []models.Task) error {
	args := m.Called(ctx, project, tasks)
	if args.Error(0) == nil {
		project.ID = uuid.New()
	}
	return args.Error(0)
}

func kitchenTemplate() *models.Template {
	desc := "Full kitchen refit"
	return &models.Template{
		ID:          uuid.New(),
		Name:        "Kitchen Renovation",
		Description: &desc,
		Tasks: models.TemplateTaskList{
			{Name: "Demolition", Priority: models.TaskPriorityHigh, DaysOffset: 0},
			{Name: "Plumbing rough-in", DaysOffset: 3},
			{Name: "Cabinets", Priority: models.TaskPriorityLow, DaysOffset: 7},
		},
	}
}

func TestTemplateApply(t *testing.T) {
	repo := new(mockTemplateRepo)
	svc := NewTemplateService(repo)
	userID := uuid.New()
	tmpl := kitchenTemplate()

	repo.On("GetByID", mock.Anything, tmpl.ID).Return(tmpl, nil)
	repo.On("Apply", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	start := models.NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	project, created, err := svc.Apply(context.Background(), userID, tmpl.ID, "", &start)

	assert.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Equal(t, "Kitchen Renovation", project.Name)
	assert.Equal(t, models.ProjectStatusPlanning, project.Status)
	assert.Equal(t, models.DefaultProjectColor, project.Color)
	assert.Equal(t, tmpl.Description, project.Description)
	assert.Equal(t, userID, project.UserID)

	tasks := repo.Calls[1].Arguments.Get(2).([]models.Task)
	assert.Len(t, tasks, 3)
	assert.Equal(t, "2024-01-01", tasks[0].DueDate.Format("2006-01-02"))
	assert.Equal(t, "2024-01-04", tasks[1].DueDate.Format("2006-01-02"))
	assert.Equal(t, "2024-01-08", tasks[2].DueDate.Format("2006-01-02"))
	assert.Equal(t, models.TaskPriorityHigh, tasks[0].Priority)
	assert.Equal(t, models.TaskPriorityMedium, tasks[1].Priority)
	for _, task := range tasks {
		assert.Equal(t, models.TaskStatusTodo, task.Status)
		assert.Equal(t, userID, task.UserID)
	}
}

func TestTemplateApplyNameOverride(t *testing.T) {
	repo := new(mockTemplateRepo)
	svc := NewTemplateService(repo)
	tmpl := kitchenTemplate()

	repo.On("GetByID", mock.Anything, tmpl.ID).Return(tmpl, nil)
	repo.On("Apply", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	project, _, err := svc.Apply(context.Background(), uuid.New(), tmpl.ID, "  My Kitchen  ", nil)
	assert.NoError(t, err)
	assert.Equal(t, "My Kitchen", project.Name)
}

func TestTemplateApplyNotFound(t *testing.T) {
	repo := new(mockTemplateRepo)
	svc := NewTemplateService(repo)
	templateID := uuid.New()

	repo.On("GetByID", mock.Anything, templateID).Return(nil, repository.ErrTemplateNotFound)

	project, created, err := svc.Apply(context.Background(), uuid.New(), templateID, "", nil)
	assert.ErrorIs(t, err, repository.ErrTemplateNotFound)
	assert.Nil(t, project)
	assert.Equal(t, 0, created)
	repo.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}
