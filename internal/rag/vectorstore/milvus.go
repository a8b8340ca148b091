package vectorstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"aitax/internal/database/milvus"
	"aitax/internal/rag/schema"
	"aitax/pkg/logger"
)

// MilvusStore adapts the shared Milvus client to chunk storage and retrieval.
// Chunk text is stored inline as a scalar column, so a search result carries
// everything needed to build an answer context without a second lookup.
type MilvusStore struct {
	log        *logger.Logger
	client     client.Client
	collection string
}

// NewMilvusStore creates a MilvusStore over the given collection.
func NewMilvusStore(milvusClient *milvus.MilvusClient, collectionName string, log *logger.Logger) (*MilvusStore, error) {
	if milvusClient == nil || milvusClient.Client == nil {
		return nil, fmt.Errorf("milvus client is not initialized")
	}
	return &MilvusStore{
		log:        log,
		client:     milvusClient.Client,
		collection: collectionName,
	}, nil
}

// Add inserts all chunks in a single batch call. Embeddings and metadata are
// laid out as separate columns.
func (s *MilvusStore) Add(ctx context.Context, chunks []*schema.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	ids := make([]string, len(chunks))
	embeddings := make([][]float32, len(chunks))
	texts := make([]string, len(chunks))
	documentIDs := make([]string, len(chunks))
	userIDs := make([]string, len(chunks))
	titles := make([]string, len(chunks))
	sources := make([]string, len(chunks))
	pageLabels := make([]string, len(chunks))
	errorFlags := make([]string, len(chunks))

	dim := 0
	for i, chunk := range chunks {
		ids[i] = chunk.ID
		embeddings[i] = chunk.Embedding
		texts[i] = chunk.Text
		if len(chunk.Embedding) > dim {
			dim = len(chunk.Embedding)
		}

		documentIDs[i] = metadataString(chunk.Metadata, schema.MetadataKeyDocumentID)
		userIDs[i] = metadataString(chunk.Metadata, schema.MetadataKeyUserID)
		titles[i] = metadataString(chunk.Metadata, schema.MetadataKeyTitle)
		sources[i] = metadataString(chunk.Metadata, schema.MetadataKeySource)
		pageLabels[i] = metadataString(chunk.Metadata, schema.MetadataKeyPage)
		if flag, ok := chunk.Metadata[schema.MetadataKeyError].(bool); ok && flag {
			errorFlags[i] = "true"
		}
	}

	columns := []entity.Column{
		entity.NewColumnVarChar(milvus.FieldID, ids),
		entity.NewColumnFloatVector(milvus.FieldEmbedding, dim, embeddings),
		entity.NewColumnVarChar(milvus.FieldText, texts),
		entity.NewColumnVarChar(milvus.FieldDocumentID, documentIDs),
		entity.NewColumnVarChar(milvus.FieldUserID, userIDs),
		entity.NewColumnVarChar(milvus.FieldTitle, titles),
		entity.NewColumnVarChar(milvus.FieldSource, sources),
		entity.NewColumnVarChar(milvus.FieldPageLabel, pageLabels),
		entity.NewColumnVarChar(milvus.FieldErrorFlag, errorFlags),
	}

	s.log.Info(fmt.Sprintf("Inserting %d chunks into collection %s", len(chunks), s.collection))
	if _, err := s.client.Insert(ctx, s.collection, "" /* default partition */, columns...); err != nil {
		return fmt.Errorf("failed to insert chunks into Milvus: %w", err)
	}
	return nil
}

// Search runs a vector similarity search restricted by the given metadata
// filter and returns the nearest chunks in distance order.
func (s *MilvusStore) Search(ctx context.Context, embedding []float32, topK int, filter map[string]string) ([]*schema.Chunk, error) {
	filterExpr := buildFilterExpression(filter)

	searchParams, _ := entity.NewIndexIvfFlatSearchParam(10)
	outputFields := []string{
		milvus.FieldID, milvus.FieldText, milvus.FieldDocumentID,
		milvus.FieldUserID, milvus.FieldTitle, milvus.FieldSource, milvus.FieldPageLabel,
	}

	s.log.Info(fmt.Sprintf("Searching collection %s with filter %q", s.collection, filterExpr))
	results, err := s.client.Search(
		ctx, s.collection, []string{}, filterExpr, outputFields,
		[]entity.Vector{entity.FloatVector(embedding)},
		milvus.FieldEmbedding, entity.L2, topK, searchParams,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search in Milvus: %w", err)
	}

	var chunks []*schema.Chunk
	for _, res := range results {
		findColumn := func(name string) *entity.ColumnVarChar {
			for _, field := range res.Fields {
				if field.Name() == name {
					col, _ := field.(*entity.ColumnVarChar)
					return col
				}
			}
			return nil
		}

		idCol := findColumn(milvus.FieldID)
		textCol := findColumn(milvus.FieldText)
		if idCol == nil || textCol == nil {
			s.log.Warn("Search result is missing id or text column, skipping")
			continue
		}

		columnValue := func(col *entity.ColumnVarChar, i int) string {
			if col == nil || i >= len(col.Data()) {
				return ""
			}
			return col.Data()[i]
		}

		docIDCol := findColumn(milvus.FieldDocumentID)
		userIDCol := findColumn(milvus.FieldUserID)
		titleCol := findColumn(milvus.FieldTitle)
		sourceCol := findColumn(milvus.FieldSource)
		pageCol := findColumn(milvus.FieldPageLabel)

		for i := 0; i < res.ResultCount; i++ {
			chunks = append(chunks, &schema.Chunk{
				ID:   columnValue(idCol, i),
				Text: columnValue(textCol, i),
				Metadata: map[string]interface{}{
					"score":                      res.Scores[i],
					schema.MetadataKeyDocumentID: columnValue(docIDCol, i),
					schema.MetadataKeyUserID:     columnValue(userIDCol, i),
					schema.MetadataKeyTitle:      columnValue(titleCol, i),
					schema.MetadataKeySource:     columnValue(sourceCol, i),
					schema.MetadataKeyPage:       columnValue(pageCol, i),
				},
			})
		}
	}

	return chunks, nil
}

// DeleteByFilter removes every chunk matching the metadata filter. Used for
// vector cleanup when a document is deleted.
func (s *MilvusStore) DeleteByFilter(ctx context.Context, filter map[string]string) error {
	expr := buildFilterExpression(filter)
	if expr == "" {
		return fmt.Errorf("refusing to delete with an empty filter")
	}
	if err := s.client.Delete(ctx, s.collection, "", expr); err != nil {
		return fmt.Errorf("failed to delete chunks from Milvus: %w", err)
	}
	return nil
}

// buildFilterExpression turns a metadata map into a Milvus boolean expression.
func buildFilterExpression(filter map[string]string) string {
	if len(filter) == 0 {
		return ""
	}

	conditions := make([]string, 0, len(filter))
	for key, value := range filter {
		conditions = append(conditions, fmt.Sprintf(`%s == "%s"`, key, value))
	}
	return strings.Join(conditions, " and ")
}

// metadataString renders a metadata value as a string column value.
func metadataString(metadata map[string]interface{}, key string) string {
	v, ok := metadata[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
