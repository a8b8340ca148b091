package store

import (
	"context"

	"gorm.io/gorm"

	"aitax/internal/models"
)

// NoteFilter narrows a note listing to a referenced news item or document.
type NoteFilter struct {
	NewsID     *uint
	DocumentID *uint
}

// NoteStore is the data access layer for personal notes.
type NoteStore struct {
	db *gorm.DB
}

// NewNoteStore creates a new NoteStore.
func NewNoteStore(db *gorm.DB) *NoteStore {
	return &NoteStore{db: db}
}

// CreateNote inserts a note.
func (s *NoteStore) CreateNote(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Create(note).Error
}

// NoteByID fetches a note by primary key.
func (s *NoteStore) NoteByID(ctx context.Context, id uint) (*models.Note, error) {
	var note models.Note
	if err := s.db.WithContext(ctx).First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// NotesByUser lists a user's notes with optional reference filters and
// offset/limit pagination.
func (s *NoteStore) NotesByUser(ctx context.Context, userID uint, filter NoteFilter, offset, limit int) ([]models.Note, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.NewsID != nil {
		query = query.Where("news_id = ?", *filter.NewsID)
	}
	if filter.DocumentID != nil {
		query = query.Where("document_id = ?", *filter.DocumentID)
	}

	var notes []models.Note
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notes).Error
	return notes, err
}

// UpdateNote applies the given column updates to a note.
func (s *NoteStore) UpdateNote(ctx context.Context, id uint, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.Note{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteNote removes a note.
func (s *NoteStore) DeleteNote(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Note{}, id).Error
}
