package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem — инструмент или материал в домашнем инвентаре.
type InventoryItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Category  *string   `db:"category" json:"category,omitempty"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Location  *string   `db:"location" json:"location,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// InventoryItemPatch — частичное обновление позиции инвентаря.
type InventoryItemPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Quantity *int    `json:"quantity"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}
