package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/obiwandrew/sociagram/config"
	"github.com/obiwandrew/sociagram/db"
	"github.com/obiwandrew/sociagram/realtime"
	"github.com/obiwandrew/sociagram/services"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Config         *config.Config
	Logger         *logrus.Logger
	UserRepository db.UserRepository
	ChatService    services.ChatService
	MessageService services.MessageService
	Relay          *realtime.Relay
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests.
func (s *Server) Start() {
	r := s.setupRouter()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.Port),
		Handler: r,
	}

	go func() {
		s.Logger.WithField("port", s.Config.Port).Info("server is running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.Logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Logger.WithError(err).Error("forced shutdown")
	}
}
