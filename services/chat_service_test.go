package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/obiwandrew/sociagram/config"
	"github.com/obiwandrew/sociagram/db"
	"github.com/obiwandrew/sociagram/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *db.GormDB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&models.User{}, &models.Chat{}, &models.Message{}))
	return &db.GormDB{DB: gormDB}
}

func seedUser(t *testing.T, gdb *db.GormDB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Fullname: username,
		Username: username,
		Email:    username + "@example.com",
	}
	require.NoError(t, gdb.DB.Create(user).Error)
	return user
}

func newChatService(t *testing.T) (ChatService, *db.GormDB) {
	t.Helper()
	gdb := newTestDB(t)
	chatRepo := db.NewChatRepo(gdb)
	userRepo := db.NewUserRepo(gdb)
	return NewChatService(chatRepo, userRepo, &config.Config{}), gdb
}

func TestGetOrCreateChat(t *testing.T) {
	t.Run("creates a chat on first contact", func(t *testing.T) {
		svc, gdb := newChatService(t)
		alice := seedUser(t, gdb, "alice")
		bob := seedUser(t, gdb, "bob")

		chat, created, err := svc.GetOrCreateChat(alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, uuid.Nil, chat.ID)
		assert.Len(t, chat.Members, 2)
		assert.Nil(t, chat.LatestMessageID)
	})

	t.Run("is idempotent", func(t *testing.T) {
		svc, gdb := newChatService(t)
		alice := seedUser(t, gdb, "alice")
		bob := seedUser(t, gdb, "bob")

		first, created, err := svc.GetOrCreateChat(alice.ID, bob.ID)
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.GetOrCreateChat(alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("is order independent", func(t *testing.T) {
		svc, gdb := newChatService(t)
		alice := seedUser(t, gdb, "alice")
		bob := seedUser(t, gdb, "bob")

		first, _, err := svc.GetOrCreateChat(alice.ID, bob.ID)
		require.NoError(t, err)

		swapped, created, err := svc.GetOrCreateChat(bob.ID, alice.ID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, swapped.ID)
	})

	t.Run("fails when the other user does not exist", func(t *testing.T) {
		svc, gdb := newChatService(t)
		alice := seedUser(t, gdb, "alice")

		_, _, err := svc.GetOrCreateChat(alice.ID, 9999)
		assert.Error(t, err)
	})
}

func TestFindChat(t *testing.T) {
	svc, gdb := newChatService(t)
	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")

	chat, err := svc.FindChat(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, chat, "no chat should exist before first contact")

	opened, _, err := svc.GetOrCreateChat(alice.ID, bob.ID)
	require.NoError(t, err)

	found, err := svc.FindChat(bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, opened.ID, found.ID)
}

func TestListUserChats(t *testing.T) {
	gdb := newTestDB(t)
	chatRepo := db.NewChatRepo(gdb)
	userRepo := db.NewUserRepo(gdb)
	chatSvc := NewChatService(chatRepo, userRepo, &config.Config{})
	messageSvc := NewMessageService(db.NewMessageRepo(gdb), chatRepo, &config.Config{})

	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	carol := seedUser(t, gdb, "carol")

	withBob, _, err := chatSvc.GetOrCreateChat(alice.ID, bob.ID)
	require.NoError(t, err)
	_, _, err = chatSvc.GetOrCreateChat(alice.ID, carol.ID)
	require.NoError(t, err)

	sent, err := messageSvc.AddMessage(withBob.ID, bob.ID, "hello alice")
	require.NoError(t, err)

	items, err := chatSvc.ListUserChats(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byOther := make(map[string]int)
	for i, item := range items {
		require.NotNil(t, item.OtherMember, "listing should name the other member")
		assert.NotEqual(t, alice.ID, item.OtherMember.ID)
		byOther[item.OtherMember.Username] = i
	}

	bobItem := items[byOther["bob"]]
	require.NotNil(t, bobItem.LatestMessage)
	assert.Equal(t, sent.ID, bobItem.LatestMessage.ID)
	assert.Equal(t, "hello alice", bobItem.LatestMessage.Content)

	carolItem := items[byOther["carol"]]
	assert.Nil(t, carolItem.LatestMessage, "chat without messages has no latest message")

	bobItems, err := chatSvc.ListUserChats(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobItems, 1)
	assert.Equal(t, "alice", bobItems[0].OtherMember.Username)
}
