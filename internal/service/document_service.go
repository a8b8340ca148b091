package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aitax/internal/config"
	"aitax/internal/models"
	"aitax/internal/rag/pipeline"
	"aitax/internal/store"
	"aitax/pkg/logger"
)

// DocumentService owns the document lifecycle: upload, metadata CRUD, and
// deletion, plus triggering ingestion into the vector store.
type DocumentService struct {
	documents *store.DocumentStore
	ingestor  *pipeline.Ingestor
	uploads   config.UploadConfig
	log       *logger.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documents *store.DocumentStore, ingestor *pipeline.Ingestor, uploads config.UploadConfig, log *logger.Logger) *DocumentService {
	return &DocumentService{
		documents: documents,
		ingestor:  ingestor,
		uploads:   uploads,
		log:       log,
	}
}

// Upload validates and stores an uploaded file, creates the document record,
// and runs ingestion synchronously before returning. Ingestion failures do
// not fail the upload; the document record is committed either way.
func (s *DocumentService) Upload(ctx context.Context, userID uint, title, description, fileName string, content []byte) (*models.Document, error) {
	if int64(len(content)) > s.uploads.MaxSizeBytes() {
		return nil, fmt.Errorf("%w: maximum size is %d MB", ErrFileTooLarge, s.uploads.MaxSizeMB)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if !s.extensionAllowed(ext) {
		return nil, fmt.Errorf("%w: allowed types: %s", ErrUnsupportedType, strings.Join(s.uploads.AllowedExtensions, ", "))
	}
	if err := checkContentType(ext, content); err != nil {
		return nil, err
	}

	userDir := filepath.Join(s.uploads.Dir, strconv.FormatUint(uint64(userID), 10))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	filePath := filepath.Join(userDir, storedFileName(fileName))
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	document := &models.Document{
		UserID:      userID,
		Title:       title,
		Description: description,
		FilePath:    filePath,
		FileType:    models.DocumentType(ext),
		FileSize:    int64(len(content)),
	}
	if err := s.documents.CreateDocument(ctx, document); err != nil {
		return nil, err
	}

	// Fire-and-forget from the caller's perspective: the upload has already
	// succeeded, ingestion problems only surface in the logs.
	s.ingestor.Process(ctx, document.ID)

	return document, nil
}

// Get returns a document after checking ownership.
func (s *DocumentService) Get(ctx context.Context, userID, documentID uint) (*models.Document, error) {
	document, err := s.documents.DocumentByID(ctx, documentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if document.UserID != userID {
		return nil, ErrForbidden
	}
	return document, nil
}

// List returns the user's documents with pagination.
func (s *DocumentService) List(ctx context.Context, userID uint, offset, limit int) ([]models.Document, error) {
	return s.documents.DocumentsByUser(ctx, userID, offset, limit)
}

// Update changes a document's title and/or description.
func (s *DocumentService) Update(ctx context.Context, userID, documentID uint, title, description *string) (*models.Document, error) {
	if _, err := s.Get(ctx, userID, documentID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}
	if len(updates) > 0 {
		if err := s.documents.UpdateDocument(ctx, documentID, updates); err != nil {
			return nil, err
		}
	}
	return s.documents.DocumentByID(ctx, documentID)
}

// Delete removes the document record, its stored file, and (best-effort) its
// vector records. Vector cleanup failure is logged but never fails the
// delete; the relational row is the source of truth.
func (s *DocumentService) Delete(ctx context.Context, userID, documentID uint) error {
	document, err := s.Get(ctx, userID, documentID)
	if err != nil {
		return err
	}

	if err := os.Remove(document.FilePath); err != nil && !os.IsNotExist(err) {
		s.log.Warn(fmt.Sprintf("Failed to remove file %s: %v", document.FilePath, err))
	}
	if err := s.documents.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	if err := s.ingestor.Cleanup(ctx, documentID); err != nil {
		s.log.Warn(fmt.Sprintf("Failed to clean up vectors for document %d: %v", documentID, err))
	}
	return nil
}

// storedFileName builds a unique on-disk name for an upload. The timestamp
// keeps directory listings sortable; the uuid keeps same-second uploads of
// the same file name apart.
func storedFileName(fileName string) string {
	return fmt.Sprintf("%s_%s_%s", time.Now().UTC().Format("20060102150405"), uuid.New().String(), filepath.Base(fileName))
}

func (s *DocumentService) extensionAllowed(ext string) bool {
	for _, allowed := range s.uploads.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// checkContentType sniffs the file content and rejects uploads whose bytes do
// not match the declared extension.
func checkContentType(ext string, content []byte) error {
	mtype := mimetype.Detect(content)
	switch ext {
	case "pdf":
		if !mtype.Is("application/pdf") {
			return fmt.Errorf("%w: content does not look like a PDF", ErrUnsupportedType)
		}
	case "txt":
		// Structured text (JSON, CSV, HTML) sniffs as a more specific type;
		// walk up the detection hierarchy so any text/plain descendant passes.
		isText := false
		for m := mtype; m != nil; m = m.Parent() {
			if m.Is("text/plain") {
				isText = true
				break
			}
		}
		if !isText {
			return fmt.Errorf("%w: content does not look like plain text", ErrUnsupportedType)
		}
	}
	return nil
}
