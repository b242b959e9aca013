package models

import (
	"time"
)

// Model is the base for entities keyed by an auto-incremented id.
type Model struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
