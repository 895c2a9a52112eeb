package models

import (
	"time"

	"github.com/google/uuid"
)

// Contractor — подрядчик из записной книжки пользователя.
type Contractor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Specialty *string   `db:"specialty" json:"specialty,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Rating    *int      `db:"rating" json:"rating,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ContractorPatch — частичное обновление подрядчика.
type ContractorPatch struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Rating    *int    `json:"rating"`
	Notes     *string `json:"notes"`
}
