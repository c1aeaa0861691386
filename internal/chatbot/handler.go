package chatbot

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /api/chatbot
func (h *Handler) Chat(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "message is required and must be a non-empty string",
		})
		return
	}

	reply, history, err := h.service.Ask(
		c.Request.Context(),
		req.Message,
		req.ConversationHistory,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAPIKey):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
		case errors.Is(err, ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
		case errors.Is(err, ErrTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "request timeout, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to get response from chatbot",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             reply,
		"conversationHistory": history,
	})
}
