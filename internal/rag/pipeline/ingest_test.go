package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aitax/internal/models"
	"aitax/internal/rag/extractors"
	"aitax/internal/rag/schema"
	"aitax/pkg/logger"
)

type stubDocuments struct {
	documents map[uint]*models.Document
	loadErr   error
}

func (s *stubDocuments) DocumentByID(ctx context.Context, id uint) (*models.Document, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	document, ok := s.documents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return document, nil
}

type stubEmbedder struct {
	embedErr error
	batchErr error
	// dim controls the vector width of deterministic fake embeddings.
	dim int
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	vectors, _ := s.EmbedBatch(ctx, []string{text})
	return vectors[0], nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if s.batchErr != nil {
		return nil, s.batchErr
	}
	dim := s.dim
	if dim == 0 {
		dim = 4
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = make([]float32, dim)
		vectors[i][0] = float32(len(texts[i]))
	}
	return vectors, nil
}

type stubChunkStore struct {
	added        []*schema.Chunk
	addErr       error
	searchResult []*schema.Chunk
	searchErr    error
	searchFilter map[string]string
	searchTopK   int
	deleteFilter map[string]string
	deleteErr    error
}

func (s *stubChunkStore) Add(ctx context.Context, chunks []*schema.Chunk) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, chunks...)
	return nil
}

func (s *stubChunkStore) Search(ctx context.Context, embedding []float32, topK int, filter map[string]string) ([]*schema.Chunk, error) {
	s.searchTopK = topK
	s.searchFilter = filter
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.searchResult, nil
}

func (s *stubChunkStore) DeleteByFilter(ctx context.Context, filter map[string]string) error {
	s.deleteFilter = filter
	return s.deleteErr
}

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type staticExtractor struct {
	chunks []*schema.Chunk
}

func (e *staticExtractor) Extract(ctx context.Context, path string) []*schema.Chunk {
	return e.chunks
}

func newTestIngestor(documents *stubDocuments, extractor extractors.Extractor, embedder *stubEmbedder, chunks *stubChunkStore) *Ingestor {
	return NewIngestor(
		documents,
		map[models.DocumentType]extractors.Extractor{models.DocumentTypeTXT: extractor},
		embedder,
		chunks,
		logger.New("test"),
	)
}

func TestIngestorProcess_StampsOwnershipMetadata(t *testing.T) {
	documents := &stubDocuments{documents: map[uint]*models.Document{
		7: {ID: 7, UserID: 3, Title: "Q3 invoices", FileType: models.DocumentTypeTXT, FilePath: "irrelevant.txt"},
	}}
	extractor := &staticExtractor{chunks: []*schema.Chunk{
		{ID: "a", Text: "first page"},
		{ID: "b", Text: "second page", Metadata: map[string]interface{}{schema.MetadataKeyPage: 2}},
	}}
	store := &stubChunkStore{}

	newTestIngestor(documents, extractor, &stubEmbedder{}, store).Process(context.Background(), 7)

	require.Len(t, store.added, 2)
	for _, chunk := range store.added {
		assert.Equal(t, "7", chunk.Metadata[schema.MetadataKeyDocumentID])
		assert.Equal(t, "3", chunk.Metadata[schema.MetadataKeyUserID])
		assert.Equal(t, "Q3 invoices", chunk.Metadata[schema.MetadataKeyTitle])
		assert.NotEmpty(t, chunk.Embedding)
	}
	// Existing metadata survives stamping.
	assert.Equal(t, 2, store.added[1].Metadata[schema.MetadataKeyPage])
}

func TestIngestorProcess_UnknownDocument(t *testing.T) {
	store := &stubChunkStore{}
	ingestor := newTestIngestor(&stubDocuments{}, &staticExtractor{}, &stubEmbedder{}, store)

	ingestor.Process(context.Background(), 42)

	assert.Empty(t, store.added)
}

func TestIngestorProcess_UnsupportedFileType(t *testing.T) {
	documents := &stubDocuments{documents: map[uint]*models.Document{
		1: {ID: 1, UserID: 1, FileType: models.DocumentType("docx"), FilePath: "f.docx"},
	}}
	store := &stubChunkStore{}

	newTestIngestor(documents, &staticExtractor{}, &stubEmbedder{}, store).Process(context.Background(), 1)

	assert.Empty(t, store.added)
}

func TestIngestorProcess_LoadFailureLogLevels(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	store := &stubChunkStore{}

	t.Run("missing row logged as warning", func(t *testing.T) {
		hook.Reset()
		newTestIngestor(&stubDocuments{}, &staticExtractor{}, &stubEmbedder{}, store).Process(context.Background(), 42)

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "not found")
	})

	t.Run("load failure logged as error", func(t *testing.T) {
		hook.Reset()
		documents := &stubDocuments{loadErr: errors.New("dial tcp: connection refused")}
		newTestIngestor(documents, &staticExtractor{}, &stubEmbedder{}, store).Process(context.Background(), 42)

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "Failed to load document")
	})

	assert.Empty(t, store.added)
}

func TestIngestorProcess_EmbeddingFailureSwallowed(t *testing.T) {
	documents := &stubDocuments{documents: map[uint]*models.Document{
		1: {ID: 1, UserID: 1, FileType: models.DocumentTypeTXT, FilePath: "f.txt"},
	}}
	extractor := &staticExtractor{chunks: []*schema.Chunk{{ID: "a", Text: "text"}}}
	store := &stubChunkStore{}
	embedder := &stubEmbedder{batchErr: errors.New("quota exceeded")}

	// Must not panic or write anything.
	newTestIngestor(documents, extractor, embedder, store).Process(context.Background(), 1)

	assert.Empty(t, store.added)
}

func TestIngestorCleanup_FiltersByDocumentID(t *testing.T) {
	store := &stubChunkStore{}
	ingestor := newTestIngestor(&stubDocuments{}, &staticExtractor{}, &stubEmbedder{}, store)

	require.NoError(t, ingestor.Cleanup(context.Background(), 15))

	assert.Equal(t, map[string]string{schema.MetadataKeyDocumentID: "15"}, store.deleteFilter)
}
