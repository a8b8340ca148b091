package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"aitax/internal/models"
	"aitax/internal/rag/schema"
	"aitax/pkg/logger"
)

func newTestAnswerer(embedder *stubEmbedder, store *stubChunkStore, llm *stubGenerator) *Answerer {
	return NewAnswerer(embedder, store, llm, logger.New("test"))
}

func TestAnswer_ReturnsModelOutputVerbatim(t *testing.T) {
	store := &stubChunkStore{searchResult: []*schema.Chunk{
		{Text: "Invoice total: 1200 PLN"},
		{Text: "Payment due: March 2026"},
	}}
	llm := &stubGenerator{response: "March 2026"}
	document := &models.Document{ID: 9, Title: "Invoice"}

	answer := newTestAnswerer(&stubEmbedder{}, store, llm).Answer(context.Background(), document, "When is the payment due?")

	assert.Equal(t, "March 2026", answer)
}

func TestAnswer_PromptEmbedsContextAndQuestion(t *testing.T) {
	store := &stubChunkStore{searchResult: []*schema.Chunk{
		{Text: "Invoice total: 1200 PLN"},
		{Text: "Payment due: March 2026"},
	}}
	llm := &stubGenerator{response: "ok"}
	document := &models.Document{ID: 9}

	newTestAnswerer(&stubEmbedder{}, store, llm).Answer(context.Background(), document, "What is the invoice total?")

	assert.Contains(t, llm.prompt, "Invoice total: 1200 PLN\n\nPayment due: March 2026")
	assert.Contains(t, llm.prompt, "Question: What is the invoice total?")
	assert.Contains(t, llm.prompt, insufficientContextFallback)
}

func TestAnswer_ScopesRetrievalToDocument(t *testing.T) {
	store := &stubChunkStore{}
	llm := &stubGenerator{response: "ok"}
	document := &models.Document{ID: 31}

	newTestAnswerer(&stubEmbedder{}, store, llm).Answer(context.Background(), document, "anything")

	assert.Equal(t, map[string]string{schema.MetadataKeyDocumentID: "31"}, store.searchFilter)
	assert.Equal(t, answerTopK, store.searchTopK)
}

func TestAnswer_NeverFailsOutward(t *testing.T) {
	document := &models.Document{ID: 5}

	t.Run("embedding failure", func(t *testing.T) {
		embedder := &stubEmbedder{embedErr: errors.New("embedding service down")}
		answer := newTestAnswerer(embedder, &stubChunkStore{}, &stubGenerator{}).Answer(context.Background(), document, "q")
		assert.Contains(t, answer, "I'm sorry, I couldn't process your question")
		assert.Contains(t, answer, "embedding service down")
	})

	t.Run("search failure", func(t *testing.T) {
		store := &stubChunkStore{searchErr: errors.New("collection not loaded")}
		answer := newTestAnswerer(&stubEmbedder{}, store, &stubGenerator{}).Answer(context.Background(), document, "q")
		assert.Contains(t, answer, "collection not loaded")
	})

	t.Run("generation failure", func(t *testing.T) {
		llm := &stubGenerator{err: errors.New("model timeout")}
		answer := newTestAnswerer(&stubEmbedder{}, &stubChunkStore{}, llm).Answer(context.Background(), document, "q")
		assert.Contains(t, answer, "model timeout")
	})
}
