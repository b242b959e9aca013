package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a direct-message room between exactly two users. A pair of users
// owns at most one chat regardless of who opened it. LatestMessageID is a
// denormalized pointer kept current by the message service after every
// append; message history remains the source of truth.
type Chat struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Members         []User     `gorm:"many2many:chat_members;" json:"members"`
	LatestMessageID *uuid.UUID `gorm:"type:uuid" json:"latest_message_id"`
	LatestMessage   *Message   `gorm:"foreignKey:LatestMessageID" json:"latest_message,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LatestMessageView is the latest-message summary embedded in a chat listing.
type LatestMessageView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatListItem is the per-chat entry returned by the chat list endpoint:
// the chat itself, the other member's public profile, and the latest
// message summary when one exists.
type ChatListItem struct {
	ID            uuid.UUID          `json:"id"`
	OtherMember   *ChatMemberView    `json:"other_member,omitempty"`
	LatestMessage *LatestMessageView `json:"latest_message,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
