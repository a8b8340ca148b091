package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitax/internal/config"
)

func TestCheckContentType(t *testing.T) {
	t.Run("pdf magic bytes accepted", func(t *testing.T) {
		assert.NoError(t, checkContentType("pdf", []byte("%PDF-1.7\n%fake body")))
	})

	t.Run("plain text accepted as txt", func(t *testing.T) {
		assert.NoError(t, checkContentType("txt", []byte("Invoice total: 1200 PLN")))
	})

	t.Run("json content accepted as txt", func(t *testing.T) {
		// Sniffs as application/json, which descends from text/plain.
		assert.NoError(t, checkContentType("txt", []byte(`{"invoice_total": "1200 PLN", "due": "March 2026"}`)))
	})

	t.Run("csv content accepted as txt", func(t *testing.T) {
		assert.NoError(t, checkContentType("txt", []byte("item,amount\ninvoice,1200\n")))
	})

	t.Run("text renamed to pdf rejected", func(t *testing.T) {
		err := checkContentType("pdf", []byte("just some text"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("binary renamed to txt rejected", func(t *testing.T) {
		err := checkContentType("txt", []byte{0x00, 0x01, 0x02, 0xff, 0xfe})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestStoredFileName(t *testing.T) {
	first := storedFileName("invoice.txt")
	second := storedFileName("invoice.txt")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "_invoice.txt"))

	// Path components are stripped from the client-supplied name.
	assert.True(t, strings.HasSuffix(storedFileName("../../etc/invoice.txt"), "_invoice.txt"))
	assert.NotContains(t, storedFileName("../../etc/invoice.txt"), "/")
}

func TestExtensionAllowed(t *testing.T) {
	s := &DocumentService{uploads: config.UploadConfig{AllowedExtensions: []string{"pdf", "TXT"}}}

	assert.True(t, s.extensionAllowed("pdf"))
	assert.True(t, s.extensionAllowed("txt"))
	assert.False(t, s.extensionAllowed("docx"))
	assert.False(t, s.extensionAllowed(""))
}
