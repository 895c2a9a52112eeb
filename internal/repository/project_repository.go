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

var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository отвечает за проекты и их связанные данные.
type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListByUser возвращает проекты владельца, свежие сверху.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	return common.ListOwned[models.Project](ctx, r.db, "projects", "created_at DESC", userID)
}

// GetByID возвращает проект по (id, владелец).
func (r *ProjectRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Project, error) {
	return common.GetOwned[models.Project](ctx, r.db, "projects", id, userID, ErrProjectNotFound)
}

// GetDetails возвращает проект со всеми связанными записями.
func (r *ProjectRepository) GetDetails(ctx context.Context, id, userID uuid.UUID) (*models.ProjectDetails, error) {
	project, err := common.GetOwned[models.Project](ctx, r.db, "projects", id, userID, ErrProjectNotFound)
	if err != nil {
		return nil, err
	}

	details := &models.ProjectDetails{
		Project:       *project,
		Tasks:         []models.Task{},
		Expenses:      []models.Expense{},
		ShoppingItems: []models.ShoppingItem{},
		Permits:       []models.Permit{},
		Photos:        []models.Photo{},
	}

	// Дочерние таблицы выбираются с тем же tenant предикатом, что и проект.
	children := []struct {
		dest  interface{}
		query string
	}{
		{&details.Tasks, `SELECT * FROM tasks WHERE project_id = $1 AND user_id = $2 ORDER BY created_at DESC`},
		{&details.Expenses, `SELECT * FROM expenses WHERE project_id = $1 AND user_id = $2 ORDER BY expense_date DESC`},
		{&details.ShoppingItems, `SELECT * FROM shopping_items WHERE project_id = $1 AND user_id = $2 ORDER BY created_at DESC`},
		{&details.Permits, `SELECT * FROM permits WHERE project_id = $1 AND user_id = $2 ORDER BY created_at DESC`},
		{&details.Photos, `SELECT * FROM photos WHERE project_id = $1 AND user_id = $2 ORDER BY created_at DESC`},
	}

	for _, child := range children {
		if err := r.db.SelectContext(ctx, child.dest, child.query, id, userID); err != nil {
			return nil, fmt.Errorf("project repository: load details %w", err)
		}
	}

	return details, nil
}

// Create сохраняет проект и заполняет генерируемые поля.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	query := `
		INSERT INTO projects (user_id, name, description, budget, deadline, status, color, progress)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		p.UserID, p.Name, p.Description, p.Budget, p.Deadline, p.Status, p.Color, p.Progress,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("project repository: create %w", err)
	}
	return nil
}

// Update применяет частичное обновление к проекту владельца.
func (r *ProjectRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.ProjectPatch) (*models.Project, error) {
	var b common.UpdateBuilder
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		b.Set("description", *patch.Description)
	}
	if patch.Budget != nil {
		b.Set("budget", *patch.Budget)
	}
	if patch.Deadline != nil {
		b.Set("deadline", *patch.Deadline)
	}
	if patch.Status != nil {
		b.Set("status", *patch.Status)
	}
	if patch.Color != nil {
		b.Set("color", *patch.Color)
	}
	if patch.Progress != nil {
		b.Set("progress", *patch.Progress)
	}

	if b.Empty() {
		return r.GetByID(ctx, id, userID)
	}

	idPh := b.Where(id)
	userPh := b.Where(userID)
	setClause, args := b.SetClause()

	query := fmt.Sprintf(`
		UPDATE projects SET %s, updated_at = NOW()
		WHERE id = %s AND user_id = %s
		RETURNING *
	`, setClause, idPh, userPh)

	var project models.Project
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&project); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("project repository: update %w", err)
	}
	return &project, nil
}

// Delete удаляет проект владельца. Отсутствие строки — не ошибка.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "projects", id, userID)
}
