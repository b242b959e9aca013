package db

import (
	"github.com/google/uuid"
	"github.com/obiwandrew/sociagram/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MessageRepository interface
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetMessagesByChatID(chatID uuid.UUID) ([]models.Message, error)
}

type messageRepo struct {
	DB *gorm.DB
}

// NewMessageRepo creates a new instance of MessageRepository
func NewMessageRepo(db *GormDB) MessageRepository {
	return &messageRepo{db.DB}
}

func (r *messageRepo) CreateMessage(message *models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if err := r.DB.Create(message).Error; err != nil {
		return errors.Wrap(err, "failed to create message")
	}
	return nil
}

// GetMessagesByChatID returns the chat history ordered oldest first.
func (r *messageRepo) GetMessagesByChatID(chatID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := r.DB.
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}
	return messages, nil
}
