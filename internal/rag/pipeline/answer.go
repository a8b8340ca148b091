package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"aitax/internal/models"
	"aitax/internal/rag/schema"
	"aitax/pkg/logger"
)

// answerTopK is the number of nearest chunks retrieved per question.
const answerTopK = 5

// insufficientContextFallback is the fixed sentence the model is instructed
// to emit when the retrieved context cannot answer the question.
const insufficientContextFallback = "I don't have enough information to answer this question based on the document."

// Answerer generates grounded answers to questions about a single document.
type Answerer struct {
	embedder Embedder
	chunks   ChunkStore
	llm      TextGenerator
	log      *logger.Logger
}

// NewAnswerer creates an Answerer with the given collaborators.
func NewAnswerer(embedder Embedder, chunks ChunkStore, llm TextGenerator, log *logger.Logger) *Answerer {
	return &Answerer{
		embedder: embedder,
		chunks:   chunks,
		llm:      llm,
		log:      log,
	}
}

// Answer retrieves the chunks of the given document most similar to the
// question, builds a grounded prompt, and returns the model output verbatim.
//
// Answer never fails outward: any error along the way is logged and converted
// into an apologetic answer string, which the caller persists as the
// assistant's chat message like any other.
func (a *Answerer) Answer(ctx context.Context, document *models.Document, question string) string {
	questionVector, err := a.embedder.Embed(ctx, question)
	if err != nil {
		return a.apologize(document.ID, err)
	}

	// Retrieval is scoped to this document; all documents of all users share
	// one collection.
	filter := map[string]string{
		schema.MetadataKeyDocumentID: strconv.FormatUint(uint64(document.ID), 10),
	}
	retrieved, err := a.chunks.Search(ctx, questionVector, answerTopK, filter)
	if err != nil {
		return a.apologize(document.ID, err)
	}

	contextTexts := make([]string, len(retrieved))
	for i, chunk := range retrieved {
		contextTexts[i] = chunk.Text
	}
	contextBlock := strings.Join(contextTexts, "\n\n")

	prompt := buildAnswerPrompt(contextBlock, question)

	answer, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		return a.apologize(document.ID, err)
	}
	return answer
}

func (a *Answerer) apologize(documentID uint, err error) string {
	a.log.Error(fmt.Sprintf("Failed to answer question about document %d: %v", documentID, err))
	return fmt.Sprintf("I'm sorry, I couldn't process your question about this document. Error: %v", err)
}

// buildAnswerPrompt fills the fixed instruction template with the retrieved
// context and the verbatim question.
func buildAnswerPrompt(contextBlock, question string) string {
	var sb strings.Builder

	sb.WriteString("You are an AI assistant helping with tax document analysis.\n\n")
	sb.WriteString("Use the following context to answer the question. If you don't know the answer based on the context, say \"")
	sb.WriteString(insufficientContextFallback)
	sb.WriteString("\"\n\n")
	sb.WriteString("Context:\n")
	sb.WriteString(contextBlock)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer:")

	return sb.String()
}
