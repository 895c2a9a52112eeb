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

var ErrPermitNotFound = errors.New("permit not found")

// PermitRepository отвечает за разрешения.
type PermitRepository struct {
	db *sqlx.DB
}

func NewPermitRepository(db *sqlx.DB) *PermitRepository {
	return &PermitRepository{db: db}
}

// ListByUser возвращает разрешения владельца с именем проекта.
func (r *PermitRepository) ListByUser(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]models.Permit, error) {
	query := `
		SELECT pm.*, p.name AS project_name
		FROM permits pm
		LEFT JOIN projects p ON p.id = pm.project_id
		WHERE pm.user_id = $1
	`
	args := []interface{}{userID}

	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(" AND pm.project_id = $%d", len(args))
	}

	query += " ORDER BY pm.created_at DESC"

	permits := []models.Permit{}
	if err := r.db.SelectContext(ctx, &permits, query, args...); err != nil {
		return nil, fmt.Errorf("permit repository: list %w", err)
	}
	return permits, nil
}

// Create сохраняет разрешение.
func (r *PermitRepository) Create(ctx context.Context, p *models.Permit) error {
	query := `
		INSERT INTO permits (user_id, project_id, name, issuer, status, expiry_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		p.UserID, p.ProjectID, p.Name, p.Issuer, p.Status, p.ExpiryDate, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("permit repository: create %w", err)
	}
	return nil
}

// Update применяет частичное обновление к разрешению владельца.
func (r *PermitRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.PermitPatch) (*models.Permit, error) {
	var b common.UpdateBuilder
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Issuer != nil {
		b.Set("issuer", *patch.Issuer)
	}
	if patch.Status != nil {
		b.Set("status", *patch.Status)
	}
	if patch.ExpiryDate != nil {
		b.Set("expiry_date", *patch.ExpiryDate)
	}
	if patch.Notes != nil {
		b.Set("notes", *patch.Notes)
	}

	if b.Empty() {
		return common.GetOwned[models.Permit](ctx, r.db, "permits", id, userID, ErrPermitNotFound)
	}

	idPh := b.Where(id)
	userPh := b.Where(userID)
	setClause, args := b.SetClause()

	query := fmt.Sprintf(`UPDATE permits SET %s WHERE id = %s AND user_id = %s RETURNING *`,
		setClause, idPh, userPh)

	var permit models.Permit
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&permit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPermitNotFound
		}
		return nil, fmt.Errorf("permit repository: update %w", err)
	}
	return &permit, nil
}

// Delete удаляет разрешение владельца.
func (r *PermitRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "permits", id, userID)
}
