package store

import (
	"context"

	"gorm.io/gorm"

	"aitax/internal/models"
)

// DocumentStore is the data access layer for uploaded documents.
type DocumentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// CreateDocument inserts a new document record.
func (s *DocumentStore) CreateDocument(ctx context.Context, document *models.Document) error {
	return s.db.WithContext(ctx).Create(document).Error
}

// DocumentByID fetches a document by primary key. Also satisfies the
// ingestion pipeline's DocumentGetter.
func (s *DocumentStore) DocumentByID(ctx context.Context, id uint) (*models.Document, error) {
	var document models.Document
	if err := s.db.WithContext(ctx).First(&document, id).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

// DocumentsByUser lists a user's documents with offset/limit pagination,
// newest first.
func (s *DocumentStore) DocumentsByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Document, error) {
	var documents []models.Document
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&documents).Error
	return documents, err
}

// UpdateDocument applies the given column updates to a document.
func (s *DocumentStore) UpdateDocument(ctx context.Context, id uint, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.Document{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteDocument removes a document row.
func (s *DocumentStore) DeleteDocument(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Document{}, id).Error
}
