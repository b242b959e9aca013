package services

import (
	"net/http"

	"github.com/obiwandrew/sociagram/config"
	"github.com/obiwandrew/sociagram/db"
	errs "github.com/obiwandrew/sociagram/errors"
	"github.com/obiwandrew/sociagram/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ChatService interface
type ChatService interface {
	GetOrCreateChat(userID, otherID uint) (*models.Chat, bool, error)
	FindChat(userID, otherID uint) (*models.Chat, error)
	ListUserChats(userID uint) ([]models.ChatListItem, error)
}

type chatService struct {
	Config   *config.Config
	chatRepo db.ChatRepository
	userRepo db.UserRepository
}

// NewChatService creates a new instance of ChatService
func NewChatService(chatRepo db.ChatRepository, userRepo db.UserRepository, conf *config.Config) ChatService {
	return &chatService{
		Config:   conf,
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

// GetOrCreateChat returns the chat between the two users, creating it on
// first contact. Lookup is order-independent, so calling with (a,b) or
// (b,a) always resolves to the same chat. The boolean reports whether a
// new chat was created.
func (s *chatService) GetOrCreateChat(userID, otherID uint) (*models.Chat, bool, error) {
	chat, err := s.chatRepo.FindChatByMembers(userID, otherID)
	if err == nil {
		return chat, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	members, err := s.loadMembers(userID, otherID)
	if err != nil {
		return nil, false, err
	}

	newChat := &models.Chat{Members: members}
	if err := s.chatRepo.CreateChat(newChat); err != nil {
		return nil, false, err
	}
	return newChat, true, nil
}

// FindChat is the existence lookup behind GET /chat/find/:userID. A nil
// chat with a nil error means no chat exists for the pair.
func (s *chatService) FindChat(userID, otherID uint) (*models.Chat, error) {
	chat, err := s.chatRepo.FindChatByMembers(userID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return chat, nil
}

// ListUserChats returns every chat the user belongs to, each enriched with
// the other member's public profile and the latest message summary.
func (s *chatService) ListUserChats(userID uint) ([]models.ChatListItem, error) {
	chats, err := s.chatRepo.GetUserChats(userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.ChatListItem, 0, len(chats))
	for _, chat := range chats {
		item := models.ChatListItem{
			ID:        chat.ID,
			CreatedAt: chat.CreatedAt,
			UpdatedAt: chat.UpdatedAt,
		}
		for i := range chat.Members {
			if chat.Members[i].ID != userID {
				view := chat.Members[i].MemberView()
				item.OtherMember = &view
				break
			}
		}
		if chat.LatestMessage != nil {
			item.LatestMessage = &models.LatestMessageView{
				ID:        chat.LatestMessage.ID,
				Content:   chat.LatestMessage.Content,
				CreatedAt: chat.LatestMessage.CreatedAt,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *chatService) loadMembers(userID, otherID uint) ([]models.User, error) {
	self, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.New("user not found", http.StatusNotFound)
		}
		return nil, err
	}
	if otherID == userID {
		return []models.User{*self}, nil
	}

	other, err := s.userRepo.FindUserByID(otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.New("user not found", http.StatusNotFound)
		}
		return nil, err
	}
	return []models.User{*self, *other}, nil
}
