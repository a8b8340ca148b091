package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aitax/internal/models"
	"aitax/internal/store"
)

// NoteService handles personal notes and their reference validation.
type NoteService struct {
	notes     *store.NoteStore
	news      *store.NewsStore
	documents *store.DocumentStore
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes *store.NoteStore, news *store.NewsStore, documents *store.DocumentStore) *NoteService {
	return &NoteService{
		notes:     notes,
		news:      news,
		documents: documents,
	}
}

// Create validates any referenced news item or document (a referenced
// document must be owned by the user) and inserts the note.
func (s *NoteService) Create(ctx context.Context, userID uint, content string, newsID, documentID *uint) (*models.Note, error) {
	if newsID != nil {
		if _, err := s.news.NewsByID(ctx, *newsID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	if documentID != nil {
		document, err := s.documents.DocumentByID(ctx, *documentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if document.UserID != userID {
			return nil, ErrForbidden
		}
	}

	note := &models.Note{
		Content:    content,
		UserID:     userID,
		NewsID:     newsID,
		DocumentID: documentID,
	}
	if err := s.notes.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Get returns a note after checking ownership.
func (s *NoteService) Get(ctx context.Context, userID, noteID uint) (*models.Note, error) {
	note, err := s.notes.NoteByID(ctx, noteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, ErrForbidden
	}
	return note, nil
}

// List returns the user's notes with optional reference filters.
func (s *NoteService) List(ctx context.Context, userID uint, filter store.NoteFilter, offset, limit int) ([]models.Note, error) {
	return s.notes.NotesByUser(ctx, userID, filter, offset, limit)
}

// Update changes a note's content.
func (s *NoteService) Update(ctx context.Context, userID, noteID uint, content string) (*models.Note, error) {
	if _, err := s.Get(ctx, userID, noteID); err != nil {
		return nil, err
	}
	if err := s.notes.UpdateNote(ctx, noteID, map[string]interface{}{"content": content}); err != nil {
		return nil, err
	}
	return s.notes.NoteByID(ctx, noteID)
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, userID, noteID uint) error {
	if _, err := s.Get(ctx, userID, noteID); err != nil {
		return err
	}
	return s.notes.DeleteNote(ctx, noteID)
}
