package models

import (
	"time"

	"github.com/google/uuid"
)

// PermitStatusRequired — статус разрешения по умолчанию.
const PermitStatusRequired = "required"

// Permit — разрешение или согласование по проекту.
type Permit struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	ProjectID  uuid.UUID `db:"project_id" json:"project_id"`
	Name       string    `db:"name" json:"name"`
	Issuer     *string   `db:"issuer" json:"issuer,omitempty"`
	Status     string    `db:"status" json:"status"`
	ExpiryDate *Date     `db:"expiry_date" json:"expiry_date,omitempty"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	ProjectName *string `db:"project_name" json:"project_name,omitempty"`
}

// PermitPatch — частичное обновление разрешения.
type PermitPatch struct {
	Name       *string `json:"name"`
	Issuer     *string `json:"issuer"`
	Status     *string `json:"status"`
	ExpiryDate *Date   `json:"expiry_date"`
	Notes      *string `json:"notes"`
}
