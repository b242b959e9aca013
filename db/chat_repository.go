package db

import (
	"github.com/google/uuid"
	"github.com/obiwandrew/sociagram/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ChatRepository interface
type ChatRepository interface {
	FindChatByMembers(userID, otherID uint) (*models.Chat, error)
	FindChatByID(chatID uuid.UUID) (*models.Chat, error)
	CreateChat(chat *models.Chat) error
	GetUserChats(userID uint) ([]models.Chat, error)
	UpdateLatestMessage(chatID, messageID uuid.UUID) error
}

type chatRepo struct {
	DB *gorm.DB
}

// NewChatRepo creates a new instance of ChatRepository
func NewChatRepo(db *GormDB) ChatRepository {
	return &chatRepo{db.DB}
}

// FindChatByMembers looks up the chat containing both users. Membership is
// order-independent; callers get the same chat for (a,b) and (b,a).
func (r *chatRepo) FindChatByMembers(userID, otherID uint) (*models.Chat, error) {
	var chat models.Chat
	err := r.DB.
		Joins("JOIN chat_members cm1 ON cm1.chat_id = chats.id AND cm1.user_id = ?", userID).
		Joins("JOIN chat_members cm2 ON cm2.chat_id = chats.id AND cm2.user_id = ?", otherID).
		Preload("Members").
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find chat by members")
	}
	return &chat, nil
}

func (r *chatRepo) FindChatByID(chatID uuid.UUID) (*models.Chat, error) {
	var chat models.Chat
	if err := r.DB.Where("id = ?", chatID).First(&chat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find chat")
	}
	return &chat, nil
}

// CreateChat persists the chat and its membership rows. Member users must
// already exist; only the join table is written for them.
func (r *chatRepo) CreateChat(chat *models.Chat) error {
	if chat.ID == uuid.Nil {
		chat.ID = uuid.New()
	}
	if err := r.DB.Omit("Members.*").Create(chat).Error; err != nil {
		return errors.Wrap(err, "failed to create chat")
	}
	return nil
}

func (r *chatRepo) GetUserChats(userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.DB.
		Joins("JOIN chat_members cm ON cm.chat_id = chats.id AND cm.user_id = ?", userID).
		Preload("Members").
		Preload("LatestMessage").
		Order("chats.updated_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user chats")
	}
	return chats, nil
}

// UpdateLatestMessage repoints the chat's denormalized latest-message id.
// The update is unconditional: appends are assumed monotonic in arrival
// order, so the last write wins.
func (r *chatRepo) UpdateLatestMessage(chatID, messageID uuid.UUID) error {
	err := r.DB.Model(&models.Chat{}).
		Where("id = ?", chatID).
		Update("latest_message_id", messageID).Error
	if err != nil {
		return errors.Wrap(err, "failed to update latest message")
	}
	return nil
}
