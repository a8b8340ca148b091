package milvus

import (
	"context"
	"fmt"
	"sync"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"aitax/internal/config"
)

var (
	instance *MilvusClient
	once     sync.Once
	initErr  error
)

// MilvusClient wraps the raw Milvus SDK client together with its config.
type MilvusClient struct {
	Client client.Client
	Config *config.MilvusConfig
}

// GetClient connects to Milvus once for the process lifetime and returns the
// shared wrapper.
func GetClient(ctx context.Context, cfg *config.MilvusConfig) (*MilvusClient, error) {
	once.Do(func() {
		c, err := client.NewClient(ctx, client.Config{Address: cfg.Address})
		if err != nil {
			initErr = fmt.Errorf("failed to connect to Milvus: %w", err)
			return
		}
		instance = &MilvusClient{Client: c, Config: cfg}
	})
	return instance, initErr
}

// Close shuts down the Milvus connection.
func (c *MilvusClient) Close() {
	if c.Client != nil {
		c.Client.Close()
	}
}

// HealthCheck verifies the Milvus connection is usable.
func (c *MilvusClient) HealthCheck(ctx context.Context) error {
	if c.Client == nil {
		return fmt.Errorf("milvus client is nil")
	}
	if _, err := c.Client.ListCollections(ctx); err != nil {
		return fmt.Errorf("milvus health check failed: %w", err)
	}
	return nil
}

// Field names of the shared document collection. All chunk metadata is stored
// as scalar columns so retrieval can filter on them.
const (
	FieldID         = "id"
	FieldEmbedding  = "embedding"
	FieldText       = "text"
	FieldDocumentID = "document_id"
	FieldUserID     = "user_id"
	FieldTitle      = "title"
	FieldSource     = "source"
	FieldPageLabel  = "page_label"
	FieldErrorFlag  = "error_flag"
)

// EnsureCollection creates the shared document collection, its vector index,
// and loads it for search. Safe to call on every boot; it is a no-op when the
// collection already exists.
func (c *MilvusClient) EnsureCollection(ctx context.Context, name string, dim int) error {
	has, err := c.Client.HasCollection(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check collection %s: %w", name, err)
	}

	if !has {
		schema := &entity.Schema{
			CollectionName: name,
			Description:    "Per-page document chunks for retrieval-augmented answering",
			Fields: []*entity.Field{
				{
					Name:       FieldID,
					DataType:   entity.FieldTypeVarChar,
					PrimaryKey: true,
					TypeParams: map[string]string{entity.TypeParamMaxLength: "64"},
				},
				{
					Name:       FieldEmbedding,
					DataType:   entity.FieldTypeFloatVector,
					TypeParams: map[string]string{entity.TypeParamDim: fmt.Sprintf("%d", dim)},
				},
				{
					Name:       FieldText,
					DataType:   entity.FieldTypeVarChar,
					TypeParams: map[string]string{entity.TypeParamMaxLength: "65535"},
				},
				{
					Name:       FieldDocumentID,
					DataType:   entity.FieldTypeVarChar,
					TypeParams: map[string]string{entity.TypeParamMaxLength: "64"},
				},
				{
					Name:       FieldUserID,
					DataType:   entity.FieldTypeVarChar,
					TypeParams: map[string]string{entity.TypeParamMaxLength: "64"},
				},
				{
					Name:       FieldTitle,
					DataType:   entity.FieldTypeVarChar,
					TypeParams: map[string]string{entity.TypeParamMaxLength: "512"},
				},
				{
					Name:       FieldSource,
					DataType:   entity.FieldTypeVarChar,
					TypeParams: map[string]string{entity.TypeParamMaxLength: "255"},
				},
				{
					Name:       FieldPageLabel,
					DataType:   entity.FieldTypeVarChar,
					TypeParams: map[string]string{entity.TypeParamMaxLength: "16"},
				},
				{
					Name:       FieldErrorFlag,
					DataType:   entity.FieldTypeVarChar,
					TypeParams: map[string]string{entity.TypeParamMaxLength: "8"},
				},
			},
		}

		if err := c.Client.CreateCollection(ctx, schema, 1); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}

		idx, err := entity.NewIndexIvfFlat(entity.L2, 128)
		if err != nil {
			return fmt.Errorf("failed to build index params: %w", err)
		}
		if err := c.Client.CreateIndex(ctx, name, FieldEmbedding, idx, false); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", name, err)
		}
	}

	if err := c.Client.LoadCollection(ctx, name, false); err != nil {
		return fmt.Errorf("failed to load collection %s: %w", name, err)
	}
	return nil
}
