package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"` // Bind address, e.g. "0.0.0.0"
	Port int    `yaml:"port"` // Listen port
}

// AuthConfig holds JWT issuing settings.
type AuthConfig struct {
	JWTSecret       string `yaml:"jwtSecret"`       // HMAC secret for HS256 tokens
	TokenTTLMinutes int    `yaml:"tokenTTLMinutes"` // Access token lifetime in minutes
}

// MySQLConfig holds the relational database connection settings.
type MySQLConfig struct {
	Address         string `yaml:"address"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	Database        string `yaml:"database"`
	MaxOpenConns    int    `yaml:"maxOpenConns"`
	MaxIdleConns    int    `yaml:"maxIdleConns"`
	ConnMaxLifetime int    `yaml:"connMaxLifetime"` // Seconds
}

// RedisConfig holds the cache connection settings.
type RedisConfig struct {
	Address           string `yaml:"address"`
	Password          string `yaml:"password"`
	DB                int    `yaml:"db"`
	SummaryTTLMinutes int    `yaml:"summaryTTLMinutes"` // Personalized summary cache lifetime
}

// MilvusConfig holds the vector store connection and collection settings.
type MilvusConfig struct {
	Address          string `yaml:"address"`
	CollectionPrefix string `yaml:"collectionPrefix"` // Per-environment prefix; see CollectionName
	EmbeddingDim     int    `yaml:"embeddingDim"`     // Dimension of the configured embedding model
}

// collectionSuffix is fixed; only the environment prefix varies per deployment.
const collectionSuffix = "__docs__v1"

// CollectionName returns the shared document collection name for this environment.
func (c *MilvusConfig) CollectionName() string {
	return c.CollectionPrefix + collectionSuffix
}

// OpenAIConfig holds model endpoint settings.
type OpenAIConfig struct {
	APIKey         string `yaml:"apiKey"`
	EmbeddingModel string `yaml:"embeddingModel"` // e.g. "text-embedding-3-small"
	ChatModel      string `yaml:"chatModel"`      // e.g. "gpt-4o"
}

// UploadConfig holds document upload constraints.
type UploadConfig struct {
	Dir               string   `yaml:"dir"`               // Root directory for stored files
	MaxSizeMB         int      `yaml:"maxSizeMB"`         // Hard cap per uploaded file
	AllowedExtensions []string `yaml:"allowedExtensions"` // e.g. ["pdf", "txt"]
}

// MaxSizeBytes returns the upload size cap in bytes.
func (c *UploadConfig) MaxSizeBytes() int64 {
	return int64(c.MaxSizeMB) * 1024 * 1024
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root of the YAML configuration file.
type AppConfig struct {
	Server  ServerConfig `yaml:"server"`
	Auth    AuthConfig   `yaml:"auth"`
	MySQL   MySQLConfig  `yaml:"mysql"`
	Redis   RedisConfig  `yaml:"redis"`
	Milvus  MilvusConfig `yaml:"milvus"`
	OpenAI  OpenAIConfig `yaml:"openai"`
	Uploads UploadConfig `yaml:"uploads"`
	Logger  LoggerConfig `yaml:"logger"`
}

// LoadConfig reads and parses the YAML configuration at path. Values of the
// form ${VAR} are expanded from the environment before parsing, so secrets can
// stay out of the file.
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Auth.TokenTTLMinutes == 0 {
		cfg.Auth.TokenTTLMinutes = 60
	}
	if cfg.OpenAI.EmbeddingModel == "" {
		cfg.OpenAI.EmbeddingModel = "text-embedding-3-small"
	}
	if cfg.OpenAI.ChatModel == "" {
		cfg.OpenAI.ChatModel = "gpt-4o"
	}
	if cfg.Milvus.CollectionPrefix == "" {
		cfg.Milvus.CollectionPrefix = "dev"
	}
	if cfg.Milvus.EmbeddingDim == 0 {
		cfg.Milvus.EmbeddingDim = 1536
	}
	if cfg.Uploads.MaxSizeMB == 0 {
		cfg.Uploads.MaxSizeMB = 10
	}
	if len(cfg.Uploads.AllowedExtensions) == 0 {
		cfg.Uploads.AllowedExtensions = []string{"pdf", "txt"}
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "data/uploads"
	}
	if cfg.Redis.SummaryTTLMinutes == 0 {
		cfg.Redis.SummaryTTLMinutes = 60 * 24
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
}
