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

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository отвечает за задачи.
type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByUser возвращает задачи владельца с именем и цветом проекта.
// Фильтры необязательные и комбинируются.
func (r *TaskRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter models.TaskFilter) ([]models.Task, error) {
	query := `
		SELECT t.*, p.name AS project_name, p.color AS project_color
		FROM tasks t
		LEFT JOIN projects p ON p.id = t.project_id
		WHERE t.user_id = $1
	`
	args := []interface{}{userID}

	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		query += fmt.Sprintf(" AND t.project_id = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND t.priority = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND t.status = $%d", len(args))
	}

	query += " ORDER BY t.created_at DESC"

	tasks := []models.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("task repository: list %w", err)
	}
	return tasks, nil
}

// Create сохраняет задачу.
func (r *TaskRepository) Create(ctx context.Context, t *models.Task) error {
	query := `
		INSERT INTO tasks (user_id, project_id, name, priority, status, assignee, due_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		t.UserID, t.ProjectID, t.Name, t.Priority, t.Status, t.Assignee, t.DueDate, t.Description,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("task repository: create %w", err)
	}
	return nil
}

// Update применяет частичное обновление к задаче владельца.
func (r *TaskRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.TaskPatch) (*models.Task, error) {
	var b common.UpdateBuilder
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Priority != nil {
		b.Set("priority", *patch.Priority)
	}
	if patch.Status != nil {
		b.Set("status", *patch.Status)
	}
	if patch.Assignee != nil {
		b.Set("assignee", *patch.Assignee)
	}
	if patch.DueDate != nil {
		b.Set("due_date", *patch.DueDate)
	}
	if patch.Description != nil {
		b.Set("description", *patch.Description)
	}

	if b.Empty() {
		return common.GetOwned[models.Task](ctx, r.db, "tasks", id, userID, ErrTaskNotFound)
	}

	idPh := b.Where(id)
	userPh := b.Where(userID)
	setClause, args := b.SetClause()

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = %s AND user_id = %s RETURNING *`,
		setClause, idPh, userPh)

	var task models.Task
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("task repository: update %w", err)
	}
	return &task, nil
}

// Delete удаляет задачу владельца.
func (r *TaskRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "tasks", id, userID)
}
