package main

import (
	"log"

	"github.com/obiwandrew/sociagram/config"
	"github.com/obiwandrew/sociagram/db"
	"github.com/obiwandrew/sociagram/realtime"
	"github.com/obiwandrew/sociagram/server"
	"github.com/obiwandrew/sociagram/services"
	"github.com/sirupsen/logrus"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logrus.New()
	if conf.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	gormDB := db.GetDB(conf)
	userRepo := db.NewUserRepo(gormDB)
	chatRepo := db.NewChatRepo(gormDB)
	messageRepo := db.NewMessageRepo(gormDB)

	chatService := services.NewChatService(chatRepo, userRepo, conf)
	messageService := services.NewMessageService(messageRepo, chatRepo, conf)

	hub := realtime.NewHub()
	relay := realtime.NewRelay(hub, messageService, logger)

	s := &server.Server{
		Config:         conf,
		Logger:         logger,
		UserRepository: userRepo,
		ChatService:    chatService,
		MessageService: messageService,
		Relay:          relay,
	}

	s.Start()
}
