package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aitax/internal/models"
	"aitax/internal/service"
)

// GetChatHistory returns a document's conversation in chronological order.
func (h *Handler) GetChatHistory(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	messages, err := h.chat.History(c.Request.Context(), currentUserID(c), documentID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// AskQuestionRequest is the JSON body for a chat question.
type AskQuestionRequest struct {
	Content string             `json:"content" binding:"required"`
	Role    models.MessageRole `json:"role" binding:"required"`
}

// AskQuestion persists the question, generates a grounded answer, and returns
// the assistant's message.
func (h *Handler) AskQuestion(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role != models.RoleUser {
		h.abortWithError(c, service.ErrInvalidRole)
		return
	}

	message, err := h.chat.Ask(c.Request.Context(), currentUserID(c), documentID, req.Content)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}
