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

var ErrShoppingItemNotFound = errors.New("shopping item not found")

// ShoppingRepository отвечает за список покупок.
type ShoppingRepository struct {
	db *sqlx.DB
}

func NewShoppingRepository(db *sqlx.DB) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

// ListByUser возвращает позиции владельца с именем проекта.
func (r *ShoppingRepository) ListByUser(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]models.ShoppingItem, error) {
	query := `
		SELECT s.*, p.name AS project_name
		FROM shopping_items s
		LEFT JOIN projects p ON p.id = s.project_id
		WHERE s.user_id = $1
	`
	args := []interface{}{userID}

	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(" AND s.project_id = $%d", len(args))
	}

	query += " ORDER BY s.created_at DESC"

	items := []models.ShoppingItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("shopping repository: list %w", err)
	}
	return items, nil
}

// Create сохраняет позицию.
func (r *ShoppingRepository) Create(ctx context.Context, s *models.ShoppingItem) error {
	query := `
		INSERT INTO shopping_items (user_id, project_id, name, quantity, estimated_cost, purchased, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		s.UserID, s.ProjectID, s.Name, s.Quantity, s.EstimatedCost, s.Purchased, s.Notes,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("shopping repository: create %w", err)
	}
	return nil
}

// Update применяет частичное обновление к позиции владельца.
func (r *ShoppingRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.ShoppingItemPatch) (*models.ShoppingItem, error) {
	var b common.UpdateBuilder
	if patch.ProjectID != nil {
		b.Set("project_id", *patch.ProjectID)
	}
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Quantity != nil {
		b.Set("quantity", *patch.Quantity)
	}
	if patch.EstimatedCost != nil {
		b.Set("estimated_cost", *patch.EstimatedCost)
	}
	if patch.Purchased != nil {
		b.Set("purchased", *patch.Purchased)
	}
	if patch.Notes != nil {
		b.Set("notes", *patch.Notes)
	}

	if b.Empty() {
		return common.GetOwned[models.ShoppingItem](ctx, r.db, "shopping_items", id, userID, ErrShoppingItemNotFound)
	}

	idPh := b.Where(id)
	userPh := b.Where(userID)
	setClause, args := b.SetClause()

	query := fmt.Sprintf(`UPDATE shopping_items SET %s WHERE id = %s AND user_id = %s RETURNING *`,
		setClause, idPh, userPh)

	var item models.ShoppingItem
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShoppingItemNotFound
		}
		return nil, fmt.Errorf("shopping repository: update %w", err)
	}
	return &item, nil
}

// Delete удаляет позицию владельца.
func (r *ShoppingRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "shopping_items", id, userID)
}
