package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwtSecret: "s3cret"
mysql:
  address: "127.0.0.1:3306"
  username: "u"
  password: "p"
  database: "aitax"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "text-embedding-3-small", cfg.OpenAI.EmbeddingModel)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.ChatModel)
	assert.Equal(t, 1536, cfg.Milvus.EmbeddingDim)
	assert.Equal(t, 10, cfg.Uploads.MaxSizeMB)
	assert.Equal(t, []string{"pdf", "txt"}, cfg.Uploads.AllowedExtensions)
	assert.Equal(t, "data/uploads", cfg.Uploads.Dir)
}

func TestLoadConfig_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_JWT_SECRET", "from-env")

	path := writeConfig(t, `
auth:
  jwtSecret: "${TEST_JWT_SECRET}"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestCollectionName(t *testing.T) {
	cfg := &MilvusConfig{CollectionPrefix: "prod"}
	assert.Equal(t, "prod__docs__v1", cfg.CollectionName())
}

func TestMaxSizeBytes(t *testing.T) {
	cfg := &UploadConfig{MaxSizeMB: 10}
	assert.Equal(t, int64(10*1024*1024), cfg.MaxSizeBytes())
}
