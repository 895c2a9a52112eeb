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

var ErrContractorNotFound = errors.New("contractor not found")

// ContractorRepository отвечает за подрядчиков.
type ContractorRepository struct {
	db *sqlx.DB
}

func NewContractorRepository(db *sqlx.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

// ListByUser возвращает подрядчиков владельца по алфавиту.
func (r *ContractorRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contractor, error) {
	return common.ListOwned[models.Contractor](ctx, r.db, "contractors", "name", userID)
}

// Create сохраняет подрядчика.
func (r *ContractorRepository) Create(ctx context.Context, c *models.Contractor) error {
	query := `
		INSERT INTO contractors (user_id, name, specialty, phone, email, rating, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		c.UserID, c.Name, c.Specialty, c.Phone, c.Email, c.Rating, c.Notes,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("contractor repository: create %w", err)
	}
	return nil
}

// Update применяет частичное обновление к подрядчику владельца.
func (r *ContractorRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.ContractorPatch) (*models.Contractor, error) {
	var b common.UpdateBuilder
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Specialty != nil {
		b.Set("specialty", *patch.Specialty)
	}
	if patch.Phone != nil {
		b.Set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		b.Set("email", *patch.Email)
	}
	if patch.Rating != nil {
		b.Set("rating", *patch.Rating)
	}
	if patch.Notes != nil {
		b.Set("notes", *patch.Notes)
	}

	if b.Empty() {
		return common.GetOwned[models.Contractor](ctx, r.db, "contractors", id, userID, ErrContractorNotFound)
	}

	idPh := b.Where(id)
	userPh := b.Where(userID)
	setClause, args := b.SetClause()

	query := fmt.Sprintf(`UPDATE contractors SET %s WHERE id = %s AND user_id = %s RETURNING *`,
		setClause, idPh, userPh)

	var contractor models.Contractor
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&contractor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractorNotFound
		}
		return nil, fmt.Errorf("contractor repository: update %w", err)
	}
	return &contractor, nil
}

// Delete удаляет подрядчика владельца.
func (r *ContractorRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "contractors", id, userID)
}
