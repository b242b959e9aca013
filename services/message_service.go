package services

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/obiwandrew/sociagram/config"
	"github.com/obiwandrew/sociagram/db"
	errs "github.com/obiwandrew/sociagram/errors"
	"github.com/obiwandrew/sociagram/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MessageService interface
type MessageService interface {
	AddMessage(chatID uuid.UUID, senderID uint, content string) (*models.Message, error)
	ListMessages(chatID uuid.UUID) ([]models.Message, error)
}

type messageService struct {
	Config      *config.Config
	messageRepo db.MessageRepository
	chatRepo    db.ChatRepository
}

// NewMessageService creates a new instance of MessageService
func NewMessageService(messageRepo db.MessageRepository, chatRepo db.ChatRepository, conf *config.Config) MessageService {
	return &messageService{
		Config:      conf,
		messageRepo: messageRepo,
		chatRepo:    chatRepo,
	}
}

// AddMessage validates and persists a message, then repoints the owning
// chat's latest-message reference. The pointer update happens before the
// call returns so readers of the chat list see the new message; it is a
// separate write, not a schema hook, and a crash between the two steps
// leaves the pointer one message behind until the next append.
func (s *messageService) AddMessage(chatID uuid.UUID, senderID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errs.NewValidationError("content", "content must not be empty")
	}

	if _, err := s.chatRepo.FindChatByID(chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.New("chat not found", http.StatusNotFound)
		}
		return nil, err
	}

	message := &models.Message{
		ChatID:   chatID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.messageRepo.CreateMessage(message); err != nil {
		return nil, err
	}

	if err := s.chatRepo.UpdateLatestMessage(chatID, message.ID); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) ListMessages(chatID uuid.UUID) ([]models.Message, error) {
	return s.messageRepo.GetMessagesByChatID(chatID)
}
