package extractors

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"aitax/internal/rag/schema"
)

// PdfExtractor reads the native text layer of a PDF, one chunk per page.
// No OCR is attempted; image-only pages yield empty text.
type PdfExtractor struct{}

// NewPdfExtractor creates a new PdfExtractor.
func NewPdfExtractor() *PdfExtractor {
	return &PdfExtractor{}
}

// Extract returns one chunk per page, tagged with its 1-based page number and
// the total page count. Any failure collapses into a single error-flagged
// chunk.
func (e *PdfExtractor) Extract(ctx context.Context, path string) (chunks []*schema.Chunk) {
	// The pdf package panics on some malformed files; extraction must never
	// propagate a failure, so fold panics into the error chunk as well.
	defer func() {
		if r := recover(); r != nil {
			chunks = []*schema.Chunk{
				errorChunk(path, fmt.Sprintf("Error extracting text from PDF: %v", r)),
			}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return []*schema.Chunk{
			errorChunk(path, fmt.Sprintf("Error extracting text from PDF: %v", err)),
		}
	}
	defer f.Close()

	totalPages := reader.NumPage()
	source := filepath.Base(path)

	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)

		var text string
		if !page.V.IsNull() {
			text, err = page.GetPlainText(nil)
			if err != nil {
				return []*schema.Chunk{
					errorChunk(path, fmt.Sprintf("Error extracting text from PDF: %v", err)),
				}
			}
		}

		chunks = append(chunks, &schema.Chunk{
			ID:   uuid.New().String(),
			Text: text,
			Metadata: map[string]interface{}{
				schema.MetadataKeySource:     source,
				schema.MetadataKeyPage:       i,
				schema.MetadataKeyTotalPages: totalPages,
			},
		})
	}

	return chunks
}

var _ Extractor = (*PdfExtractor)(nil)
