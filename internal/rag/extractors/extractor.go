package extractors

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"

	"aitax/internal/rag/schema"
)

// Extractor converts a stored file into an ordered sequence of text chunks.
//
// Extraction never fails outward: when a file cannot be read or decoded the
// extractor returns a single chunk whose text is a human-readable error
// message, flagged with schema.MetadataKeyError, so ingestion still has
// something to embed and store. Callers are expected to reject unsupported
// file types before dispatching here.
type Extractor interface {
	Extract(ctx context.Context, path string) []*schema.Chunk
}

// errorChunk builds the single fallback chunk for a failed extraction.
func errorChunk(path, message string) *schema.Chunk {
	return &schema.Chunk{
		ID:   uuid.New().String(),
		Text: message,
		Metadata: map[string]interface{}{
			schema.MetadataKeySource: filepath.Base(path),
			schema.MetadataKeyError:  true,
		},
	}
}
