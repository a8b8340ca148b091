package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"aitax/internal/models"
	"aitax/internal/rag/extractors"
	"aitax/internal/rag/schema"
	"aitax/pkg/logger"
)

// Ingestor runs the document ingestion pipeline: extract, stamp metadata,
// embed, and upsert into the shared vector collection.
type Ingestor struct {
	documents  DocumentGetter
	extractors map[models.DocumentType]extractors.Extractor
	embedder   Embedder
	chunks     ChunkStore
	log        *logger.Logger
}

// NewIngestor creates an Ingestor with the given collaborators.
func NewIngestor(
	documents DocumentGetter,
	extractorsByType map[models.DocumentType]extractors.Extractor,
	embedder Embedder,
	chunks ChunkStore,
	log *logger.Logger,
) *Ingestor {
	return &Ingestor{
		documents:  documents,
		extractors: extractorsByType,
		embedder:   embedder,
		chunks:     chunks,
		log:        log,
	}
}

// Process ingests one uploaded document. It is fire-and-forget: every failure
// is logged and swallowed, because the upload response has already been
// committed by the time problems here can surface. A failed store step aborts
// the run with no rollback of already-written chunks and no retry; re-uploading
// the document is the recovery path.
func (p *Ingestor) Process(ctx context.Context, documentID uint) {
	document, err := p.documents.DocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p.log.Warn(fmt.Sprintf("Document with ID %d not found, skipping ingestion", documentID))
		} else {
			p.log.Error(fmt.Sprintf("Failed to load document %d for ingestion: %v", documentID, err))
		}
		return
	}

	extractor, ok := p.extractors[document.FileType]
	if !ok {
		p.log.Warn(fmt.Sprintf("Unsupported file type %q for document %d, skipping ingestion", document.FileType, documentID))
		return
	}

	chunks := extractor.Extract(ctx, document.FilePath)
	p.log.Info(fmt.Sprintf("Extracted %d chunks from document %d", len(chunks), documentID))

	// Every chunk carries the owning document's identity; the document_id
	// filter is the only isolation between documents in the shared collection.
	for _, chunk := range chunks {
		if chunk.Metadata == nil {
			chunk.Metadata = make(map[string]interface{})
		}
		chunk.Metadata[schema.MetadataKeyDocumentID] = strconv.FormatUint(uint64(document.ID), 10)
		chunk.Metadata[schema.MetadataKeyTitle] = document.Title
		chunk.Metadata[schema.MetadataKeyUserID] = strconv.FormatUint(uint64(document.UserID), 10)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := p.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		p.log.Error(fmt.Sprintf("Failed to embed chunks for document %d: %v", documentID, err))
		return
	}
	if len(vectors) != len(chunks) {
		p.log.Error(fmt.Sprintf("Embedding count mismatch for document %d: %d chunks, %d vectors", documentID, len(chunks), len(vectors)))
		return
	}
	for i, chunk := range chunks {
		chunk.Embedding = vectors[i]
	}

	if err := p.chunks.Add(ctx, chunks); err != nil {
		p.log.Error(fmt.Sprintf("Failed to store chunks for document %d: %v", documentID, err))
		return
	}

	p.log.Info(fmt.Sprintf("Successfully ingested document %d (%d chunks)", documentID, len(chunks)))
}

// Cleanup removes every vector record belonging to the given document. Errors
// are returned so the caller can decide how loudly to fail; document deletion
// treats this as best-effort.
func (p *Ingestor) Cleanup(ctx context.Context, documentID uint) error {
	filter := map[string]string{
		schema.MetadataKeyDocumentID: strconv.FormatUint(uint64(documentID), 10),
	}
	return p.chunks.DeleteByFilter(ctx, filter)
}
