package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo — загруженная фотография хода ремонта.
type Photo struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	ProjectID *uuid.UUID `db:"project_id" json:"project_id,omitempty"`
	FilePath  string     `db:"file_path" json:"file_path"`
	FileSize  int64      `db:"file_size" json:"file_size"`
	Caption   *string    `db:"caption" json:"caption,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
