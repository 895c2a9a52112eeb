package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository/common"
)

var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository отвечает за метаданные фотографий.
type PhotoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// ListByUser возвращает фотографии владельца, свежие сверху.
func (r *PhotoRepository) ListByUser(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]models.Photo, error) {
	query := `SELECT * FROM photos WHERE user_id = $1`
	args := []interface{}{userID}

	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(" AND project_id = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	photos := []models.Photo{}
	if err := r.db.SelectContext(ctx, &photos, query, args...); err != nil {
		return nil, fmt.Errorf("photo repository: list %w", err)
	}
	return photos, nil
}

// GetByID возвращает фотографию по (id, владелец).
func (r *PhotoRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Photo, error) {
	return common.GetOwned[models.Photo](ctx, r.db, "photos", id, userID, ErrPhotoNotFound)
}

// Create сохраняет метаданные фотографии.
func (r *PhotoRepository) Create(ctx context.Context, p *models.Photo) error {
	query := `
		INSERT INTO photos (user_id, project_id, file_path, file_size, caption)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		p.UserID, p.ProjectID, p.FilePath, p.FileSize, p.Caption,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("photo repository: create %w", err)
	}
	return nil
}

// Delete удаляет метаданные фотографии владельца.
func (r *PhotoRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return common.DeleteOwned(ctx, r.db, "photos", id, userID)
}
