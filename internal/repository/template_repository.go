package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository/common"
)

var ErrTemplateNotFound = errors.New("template not found")

// TemplateRepository отвечает за шаблоны проектов.
// Шаблоны общие, tenant предиката у них нет — только флаг is_public.
type TemplateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// ListPublic возвращает публичные шаблоны по алфавиту.
func (r *TemplateRepository) ListPublic(ctx context.Context) ([]models.Template, error) {
	templates := []models.Template{}
	err := r.db.SelectContext(ctx, &templates,
		`SELECT * FROM templates WHERE is_public = TRUE ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("template repository: list %w", err)
	}
	return templates, nil
}

// GetByID возвращает шаблон по идентификатору.
func (r *TemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	var t models.Template
	err := r.db.GetContext(ctx, &t, `SELECT * FROM templates WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("template repository: get by id %w", err)
	}
	return &t, nil
}

// Apply создаёт проект и его задачи в одной транзакции.
// Частичного применения не бывает: либо проект с задачами, либо ничего.
func (r *TemplateRepository) Apply(ctx context.Context, project *models.Project, tasks []models.Task) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO projects (user_id, name, description, budget, deadline, status, color, progress)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRowxContext(ctx, query,
			project.UserID, project.Name, project.Description, project.Budget,
			project.Deadline, project.Status, project.Color, project.Progress,
		).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			return fmt.Errorf("template repository: create project %w", err)
		}

		if len(tasks) == 0 {
			return nil
		}

		inserter := common.NewBatchInserter(tx,
			`INSERT INTO tasks (user_id, project_id, name, priority, status, due_date)`, 6, 100)

		for i := range tasks {
			tasks[i].ProjectID = project.ID
			t := tasks[i]
			if err := inserter.Add(ctx, t.UserID, t.ProjectID, t.Name, t.Priority, t.Status, t.DueDate); err != nil {
				return fmt.Errorf("template repository: insert tasks %w", err)
			}
		}

		if err := inserter.Flush(ctx); err != nil {
			return fmt.Errorf("template repository: insert tasks %w", err)
		}
		return nil
	})
}
