package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/obiwandrew/sociagram/errors"
	"github.com/obiwandrew/sociagram/server/response"
)

// handleCreateChat resolves or creates the chat between the caller and the
// user in the path. Calling it twice, or with the ids swapped client-side,
// returns the same chat.
func (s *Server) handleCreateChat() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		otherID, err := strconv.ParseUint(c.Param("userID"), 10, 64)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid user id", http.StatusBadRequest))
			return
		}

		chat, created, err := s.ChatService.GetOrCreateChat(userID, uint(otherID))
		if err != nil {
			respondWithError(c, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		response.JSON(c, "", status, gin.H{"chat": chat}, nil)
	}
}

func (s *Server) handleGetUserChats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		chats, err := s.ChatService.ListUserChats(userID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, gin.H{"chats": chats}, nil)
	}
}

// handleFindChat is the existence lookup; a missing chat responds 200 with
// a null body rather than 404.
func (s *Server) handleFindChat() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		otherID, err := strconv.ParseUint(c.Param("userID"), 10, 64)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid user id", http.StatusBadRequest))
			return
		}

		chat, err := s.ChatService.FindChat(userID, uint(otherID))
		if err != nil {
			respondWithError(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, gin.H{"chat": chat}, nil)
	}
}

// currentUserID reads the authenticated user id the Authorize middleware
// put in the context, answering the request itself when it is missing.
func currentUserID(c *gin.Context) (uint, bool) {
	userIDCtx, ok := c.Get("userID")
	if !ok {
		response.JSON(c, "", http.StatusInternalServerError, nil, errs.New("userID not found in context", http.StatusInternalServerError))
		return 0, false
	}
	userID, ok := userIDCtx.(uint)
	if !ok {
		response.JSON(c, "", http.StatusInternalServerError, nil, errs.New("userID is not of type uint", http.StatusInternalServerError))
		return 0, false
	}
	return userID, true
}
