package pipeline

import (
	"context"

	"aitax/internal/models"
	"aitax/internal/rag/schema"
)

// Embedder maps texts to fixed-dimension vectors.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// ChunkStore stores embedded chunks and retrieves them by similarity, scoped
// by a metadata filter.
type ChunkStore interface {
	Add(ctx context.Context, chunks []*schema.Chunk) error
	Search(ctx context.Context, embedding []float32, topK int, filter map[string]string) ([]*schema.Chunk, error)
	DeleteByFilter(ctx context.Context, filter map[string]string) error
}

// TextGenerator produces text from a single prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DocumentGetter loads a Document record by ID.
type DocumentGetter interface {
	DocumentByID(ctx context.Context, id uint) (*models.Document, error)
}
