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

var ErrInventoryItemNotFound = errors.New("inventory item not found")

// InventoryRepository отвечает за домашний инвентарь.
type InventoryRepository struct {
	db *sqlx.DB
}

func NewInventoryRepository(db *sqlx.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// ListByUser возвращает инвентарь владельца по алфавиту.
func (r *InventoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InventoryItem, error) {
	return common.ListOwned[models.InventoryItem](ctx, r.db, "inventory", "name", userID)
}

// Create сохраняет позицию инвентаря.
func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory (user_id, name, category, quantity, location, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		item.UserID, item.Name, item.Category, item.Quantity, item.Location, item.Notes,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("inventory repository: create %w", err)
	}
	return nil
}

// Update применяет частичное обновление к позиции владельца.
func (r *InventoryRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.InventoryItemPatch) (*models.InventoryItem, error) {
	var b common.UpdateBuilder
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Category != nil {
		b.Set("category", *patch.Category)
	}
	if patch.Quantity != nil {
		b.Set("quantity", *patch.Quantity)
	}
	if patch.Location != nil {
		b.Set("location", *patch.Location)
	}
	if patch.Notes != nil {
		b.Set("notes", *patch.Notes)
	}

	if b.Empty() {
		return common.GetOwned[models.InventoryItem](ctx, r.db, "inventory", id, userID, ErrInventoryItemNotFound)
	}

	idPh := b.Where(id)
	userPh := b.Where(userID)
	setClause, args := b.SetClause()

	query := fmt.Sprintf(`UPDATE inventory SET %s WHERE id = %s AND user_id = %s RETURNING *`,
		setClause, idPh, userPh)

	var item models.InventoryItem
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("inventory repository: update %w", err)
	}
	return &item, nil
}

// Delete удаляет позицию владельца.
func (r *InventoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "inventory", id, userID)
}
