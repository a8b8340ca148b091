package extractors

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"aitax/internal/rag/schema"
)

// TxtExtractor reads a plain text file as a single chunk.
type TxtExtractor struct{}

// NewTxtExtractor creates a new TxtExtractor.
func NewTxtExtractor() *TxtExtractor {
	return &TxtExtractor{}
}

// Extract returns one chunk holding the whole UTF-8 file content.
func (e *TxtExtractor) Extract(ctx context.Context, path string) []*schema.Chunk {
	content, err := os.ReadFile(path)
	if err != nil {
		return []*schema.Chunk{
			errorChunk(path, fmt.Sprintf("Error extracting text from TXT: %v", err)),
		}
	}

	chunk := &schema.Chunk{
		ID:   uuid.New().String(),
		Text: string(content),
		Metadata: map[string]interface{}{
			schema.MetadataKeySource: filepath.Base(path),
		},
	}
	return []*schema.Chunk{chunk}
}

var _ Extractor = (*TxtExtractor)(nil)
