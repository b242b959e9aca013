package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	errs "github.com/obiwandrew/sociagram/errors"
	"github.com/obiwandrew/sociagram/models"
	"github.com/obiwandrew/sociagram/server/response"
)

// handleAddMessage is the REST path for sending a message; the websocket
// relay covers the live path. Both end in MessageService.AddMessage.
func (s *Server) handleAddMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req models.AddMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid request body", http.StatusBadRequest))
			return
		}

		chatID, err := uuid.Parse(req.ChatID)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid chat id", http.StatusBadRequest))
			return
		}

		message, err := s.MessageService.AddMessage(chatID, userID, req.Content)
		if err != nil {
			respondWithError(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, gin.H{"message": message}, nil)
	}
}

func (s *Server) handleGetMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			return
		}

		chatID, err := uuid.Parse(c.Param("chatID"))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid chat id", http.StatusBadRequest))
			return
		}

		messages, err := s.MessageService.ListMessages(chatID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, gin.H{"messages": messages}, nil)
	}
}

// respondWithError maps service errors onto HTTP statuses: validation
// failures to 400, status-carrying errors to their own status, everything
// else to 500.
func respondWithError(c *gin.Context, err error) {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		response.JSON(c, "", http.StatusBadRequest, nil, validationErr)
		return
	}
	var statusErr *errs.Error
	if errors.As(err, &statusErr) {
		response.JSON(c, "", statusErr.Status, nil, statusErr)
		return
	}
	response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
}
