package models

import (
	"time"

	"github.com/google/uuid"
)

// Message belongs to exactly one chat and is immutable after creation
// except for the delivery flags.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChatID      uuid.UUID `gorm:"type:uuid;not null;index" json:"chat_id"`
	SenderID    uint      `gorm:"not null" json:"sender_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsDelivered bool      `gorm:"default:false" json:"is_delivered"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddMessageRequest is the body of POST /message.
type AddMessageRequest struct {
	ChatID  string `json:"chat_id" binding:"required,uuid"`
	Content string `json:"content" binding:"required"`
}
