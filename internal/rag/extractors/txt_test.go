package extractors

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitax/internal/rag/schema"
)

func TestTxtExtract_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	content := "Invoice total: 1200 PLN\nDue date: March 2026\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	chunks := NewTxtExtractor().Extract(context.Background(), path)

	require.Len(t, chunks, 1)
	assert.NotEmpty(t, chunks[0].ID)
	assert.Equal(t, content, chunks[0].Text)
	assert.Equal(t, "notes.txt", chunks[0].Metadata[schema.MetadataKeySource])
	assert.NotContains(t, chunks[0].Metadata, schema.MetadataKeyError)
}

func TestTxtExtract_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	chunks := NewTxtExtractor().Extract(context.Background(), path)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0].Text, "Error extracting text from TXT:")
	assert.Equal(t, true, chunks[0].Metadata[schema.MetadataKeyError])
	assert.Equal(t, "missing.txt", chunks[0].Metadata[schema.MetadataKeySource])
}
