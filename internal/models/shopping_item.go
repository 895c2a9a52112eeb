package models

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingItem — позиция списка покупок, опционально привязанная к проекту.
type ShoppingItem struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	ProjectID     *uuid.UUID `db:"project_id" json:"project_id,omitempty"`
	Name          string     `db:"name" json:"name"`
	Quantity      int        `db:"quantity" json:"quantity"`
	EstimatedCost *float64   `db:"estimated_cost" json:"estimated_cost,omitempty"`
	Purchased     bool       `db:"purchased" json:"purchased"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`

	ProjectName *string `db:"project_name" json:"project_name,omitempty"`
}

// ShoppingItemPatch — частичное обновление позиции.
type ShoppingItemPatch struct {
	ProjectID     *uuid.UUID `json:"project_id"`
	Name          *string    `json:"name"`
	Quantity      *int       `json:"quantity"`
	EstimatedCost *float64   `json:"estimated_cost"`
	Purchased     *bool      `json:"purchased"`
	Notes         *string    `json:"notes"`
}
