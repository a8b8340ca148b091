package store

import (
	"context"

	"gorm.io/gorm"

	"aitax/internal/models"
)

// ChatStore is the data access layer for chat messages.
type ChatStore struct {
	db *gorm.DB
}

// NewChatStore creates a new ChatStore.
func NewChatStore(db *gorm.DB) *ChatStore {
	return &ChatStore{db: db}
}

// CreateMessage inserts a chat message.
func (s *ChatStore) CreateMessage(ctx context.Context, message *models.ChatMessage) error {
	return s.db.WithContext(ctx).Create(message).Error
}

// MessagesByDocument lists a document's chat history in chronological order.
func (s *ChatStore) MessagesByDocument(ctx context.Context, documentID uint) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
