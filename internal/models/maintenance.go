package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRecord — регулярная работа по обслуживанию дома.
type MaintenanceRecord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Frequency *string   `db:"frequency" json:"frequency,omitempty"`
	LastDate  *Date     `db:"last_date" json:"last_date,omitempty"`
	NextDate  *Date     `db:"next_date" json:"next_date,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MaintenanceRecordPatch — частичное обновление записи.
type MaintenanceRecordPatch struct {
	Name      *string `json:"name"`
	Frequency *string `json:"frequency"`
	LastDate  *Date   `json:"last_date"`
	NextDate  *Date   `json:"next_date"`
	Notes     *string `json:"notes"`
}
