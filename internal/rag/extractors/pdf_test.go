package extractors

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitax/internal/rag/schema"
)

// writePDF generates a minimal uncompressed PDF fixture with one line of
// text per page. Object layout: catalog, page tree, n pages, n content
// streams, one shared Helvetica font; the xref offsets are computed while
// writing so the file is valid by construction.
func writePDF(t *testing.T, path string, pageTexts []string) {
	t.Helper()

	n := len(pageTexts)
	fontObj := 3 + 2*n

	var buf bytes.Buffer
	var offsets []int
	add := func(format string, args ...interface{}) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, format, args...)
	}

	buf.WriteString("%PDF-1.4\n")
	add("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	add("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), n)

	for i := range pageTexts {
		add("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			3+i, fontObj, 3+n+i)
	}
	for i, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		add("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", 3+n+i, len(stream), stream)
	}
	add("%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n", fontObj)

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestPdfExtract_OneChunkPerPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	writePDF(t, path, []string{"Invoice total: 1200 PLN", "Payment due: March 2026"})

	chunks := NewPdfExtractor().Extract(context.Background(), path)

	require.Len(t, chunks, 2)
	for i, chunk := range chunks {
		assert.NotEmpty(t, chunk.ID)
		assert.Equal(t, i+1, chunk.Metadata[schema.MetadataKeyPage])
		assert.Equal(t, 2, chunk.Metadata[schema.MetadataKeyTotalPages])
		assert.Equal(t, "invoice.pdf", chunk.Metadata[schema.MetadataKeySource])
		assert.NotContains(t, chunk.Metadata, schema.MetadataKeyError)
	}
	// Chunk order matches page order.
	assert.Contains(t, chunks[0].Text, "Invoice total: 1200 PLN")
	assert.Contains(t, chunks[1].Text, "Payment due: March 2026")
}

func TestPdfExtract_SinglePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.pdf")
	writePDF(t, path, []string{"CIT rate: 9 percent"})

	chunks := NewPdfExtractor().Extract(context.Background(), path)

	require.Len(t, chunks, 1)
	assert.Equal(t, 1, chunks[0].Metadata[schema.MetadataKeyPage])
	assert.Equal(t, 1, chunks[0].Metadata[schema.MetadataKeyTotalPages])
	assert.Contains(t, chunks[0].Text, "CIT rate: 9 percent")
}

func TestPdfExtract_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	chunks := NewPdfExtractor().Extract(context.Background(), path)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0].Text, "Error extracting text from PDF:")
	assert.Equal(t, true, chunks[0].Metadata[schema.MetadataKeyError])
	assert.Equal(t, "broken.pdf", chunks[0].Metadata[schema.MetadataKeySource])
}
