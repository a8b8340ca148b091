package service

import (
	"context"

	"aitax/internal/models"
	"aitax/internal/store"
)

// DocumentAnswerer generates an answer string for a question about a
// document. Implementations never fail; degraded answers are still strings.
type DocumentAnswerer interface {
	Answer(ctx context.Context, document *models.Document, question string) string
}

// ChatService handles document Q&A conversations.
type ChatService struct {
	chats     *store.ChatStore
	documents *DocumentService
	answerer  DocumentAnswerer
}

// NewChatService creates a new ChatService.
func NewChatService(chats *store.ChatStore, documents *DocumentService, answerer DocumentAnswerer) *ChatService {
	return &ChatService{
		chats:     chats,
		documents: documents,
		answerer:  answerer,
	}
}

// History returns the chat history of a document the user owns, oldest first.
func (s *ChatService) History(ctx context.Context, userID, documentID uint) ([]models.ChatMessage, error) {
	if _, err := s.documents.Get(ctx, userID, documentID); err != nil {
		return nil, err
	}
	return s.chats.MessagesByDocument(ctx, documentID)
}

// Ask persists the user's question, generates an answer, persists it as the
// assistant message, and returns the assistant message. Exactly two messages
// are written per call, even when answer generation degrades to an apology.
func (s *ChatService) Ask(ctx context.Context, userID, documentID uint, question string) (*models.ChatMessage, error) {
	document, err := s.documents.Get(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	userMessage := &models.ChatMessage{
		Content:    question,
		Role:       models.RoleUser,
		DocumentID: documentID,
		UserID:     userID,
	}
	if err := s.chats.CreateMessage(ctx, userMessage); err != nil {
		return nil, err
	}

	answer := s.answerer.Answer(ctx, document, question)

	assistantMessage := &models.ChatMessage{
		Content:    answer,
		Role:       models.RoleAssistant,
		DocumentID: documentID,
		UserID:     userID,
	}
	if err := s.chats.CreateMessage(ctx, assistantMessage); err != nil {
		return nil, err
	}
	return assistantMessage, nil
}
