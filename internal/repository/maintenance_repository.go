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

var ErrMaintenanceRecordNotFound = errors.New("maintenance record not found")

// MaintenanceRepository отвечает за записи обслуживания.
type MaintenanceRepository struct {
	db *sqlx.DB
}

func NewMaintenanceRepository(db *sqlx.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ListByUser возвращает записи владельца: ближайшие даты сверху, без даты — в конце.
func (r *MaintenanceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MaintenanceRecord, error) {
	return common.ListOwned[models.MaintenanceRecord](ctx, r.db, "maintenance", "next_date ASC NULLS LAST", userID)
}

// Create сохраняет запись.
func (r *MaintenanceRepository) Create(ctx context.Context, m *models.MaintenanceRecord) error {
	query := `
		INSERT INTO maintenance (user_id, name, frequency, last_date, next_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		m.UserID, m.Name, m.Frequency, m.LastDate, m.NextDate, m.Notes,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("maintenance repository: create %w", err)
	}
	return nil
}

// Update применяет частичное обновление к записи владельца.
func (r *MaintenanceRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.MaintenanceRecordPatch) (*models.MaintenanceRecord, error) {
	var b common.UpdateBuilder
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Frequency != nil {
		b.Set("frequency", *patch.Frequency)
	}
	if patch.LastDate != nil {
		b.Set("last_date", *patch.LastDate)
	}
	if patch.NextDate != nil {
		b.Set("next_date", *patch.NextDate)
	}
	if patch.Notes != nil {
		b.Set("notes", *patch.Notes)
	}

	if b.Empty() {
		return common.GetOwned[models.MaintenanceRecord](ctx, r.db, "maintenance", id, userID, ErrMaintenanceRecordNotFound)
	}

	idPh := b.Where(id)
	userPh := b.Where(userID)
	setClause, args := b.SetClause()

	query := fmt.Sprintf(`UPDATE maintenance SET %s WHERE id = %s AND user_id = %s RETURNING *`,
		setClause, idPh, userPh)

	var record models.MaintenanceRecord
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMaintenanceRecordNotFound
		}
		return nil, fmt.Errorf("maintenance repository: update %w", err)
	}
	return &record, nil
}

// Delete удаляет запись владельца.
func (r *MaintenanceRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "maintenance", id, userID)
}
