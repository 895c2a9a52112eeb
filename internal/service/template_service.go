package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renovateiq/renovateiq-backend/internal/models"
)

type TemplateRepository interface {
	ListPublic(ctx context.Context) ([]models.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Template, error)
	Apply(ctx context.Context, project *models.Project, tasks []models.Task) error
}

type TemplateService struct {
	repo TemplateRepository
}

func NewTemplateService(repo TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

// List возвращает публичные шаблоны проектов.
func (s *TemplateService) List(ctx context.Context) ([]models.Template, error) {
	return s.repo.ListPublic(ctx)
}

// Apply разворачивает шаблон в новый проект с задачами.
// Сроки задач считаются от даты старта: start + days_offset дней.
func (s *TemplateService) Apply(ctx context.Context, userID, templateID uuid.UUID, projectName string, startDate *models.Date) (*models.Project, int, error) {
	tmpl, err := s.repo.GetByID(ctx, templateID)
	if err != nil {
		return nil, 0, err
	}

	name := strings.TrimSpace(projectName)
	if name == "" {
		name = tmpl.Name
	}

	start := models.NewDate(time.Now())
	if startDate != nil {
		start = *startDate
	}

	project := &models.Project{
		UserID:      userID,
		Name:        name,
		Description: tmpl.Description,
		Status:      models.ProjectStatusPlanning,
		Color:       models.DefaultProjectColor,
	}

	tasks := make([]models.Task, 0, len(tmpl.Tasks))
	for _, blueprint := range tmpl.Tasks {
		priority := blueprint.Priority
		if priority == "" {
			priority = models.TaskPriorityMedium
		}
		due := models.NewDate(start.AddDate(0, 0, blueprint.DaysOffset))
		tasks = append(tasks, models.Task{
			UserID:   userID,
			Name:     blueprint.Name,
			Priority: priority,
			Status:   models.TaskStatusTodo,
			DueDate:  &due,
		})
	}

	if err := s.repo.Apply(ctx, project, tasks); err != nil {
		return nil, 0, fmt.Errorf("template service: apply %w", err)
	}

	return project, len(tasks), nil
}
