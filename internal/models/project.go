package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы проекта. Хранятся строкой, схема фиксирует только дефолт.
const (
	ProjectStatusPlanning = "planning"
)

// DefaultProjectColor — цвет карточки проекта по умолчанию.
const DefaultProjectColor = "#c17b3a"

// Project описывает ремонтный проект пользователя.
type Project struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Budget      float64   `db:"budget" json:"budget"`
	Deadline    *Date     `db:"deadline" json:"deadline,omitempty"`
	Status      string    `db:"status" json:"status"`
	Color       string    `db:"color" json:"color"`
	Progress    int       `db:"progress" json:"progress"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ProjectDetails — проект со всеми связанными данными для GET /projects/:id.
type ProjectDetails struct {
	Project
	Tasks         []Task         `json:"tasks"`
	Expenses      []Expense      `json:"expenses"`
	ShoppingItems []ShoppingItem `json:"shopping_items"`
	Permits       []Permit       `json:"permits"`
	Photos        []Photo        `json:"photos"`
}

// ProjectPatch — частичное обновление; nil поля не трогаются.
type ProjectPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
	Deadline    *Date    `json:"deadline"`
	Status      *string  `json:"status"`
	Color       *string  `json:"color"`
	Progress    *int     `json:"progress"`
}
