package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the support bot.
type Config struct {
	KnowledgeBase KnowledgeBaseConfig `yaml:"knowledge_base"`
	Retrieval     RetrievalConfig     `yaml:"retrieval"`
	LLM           LLMConfig           `yaml:"llm"`
	Embedding     EmbeddingConfig     `yaml:"embedding"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// KnowledgeBaseConfig holds document store configuration.
type KnowledgeBaseConfig struct {
	Path string `yaml:"path"` // JSON file with {"documents": [...]}
}

// RetrievalConfig holds retrieval configuration.
type RetrievalConfig struct {
	Strategy        string `yaml:"strategy"` // "lexical" or "dense"
	TopK            int    `yaml:"top_k"`
	CacheEnabled    bool   `yaml:"cache_enabled"`
	CacheSize       int    `yaml:"cache_size"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// LLMConfig holds chat completion configuration.
type LLMConfig struct {
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	MaxTokens      int     `yaml:"max_tokens"`
	APIKeyEnv      string  `yaml:"api_key_env"` // environment variable for the API key
	BaseURL        string  `yaml:"base_url"`    // empty means the OpenAI default
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// EmbeddingConfig holds embedding configuration for the dense strategy.
type EmbeddingConfig struct {
	Model     string `yaml:"model"` // e.g. "text-embedding-3-small"
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url"`
	Dimension int    `yaml:"dimension"`
	BatchSize int    `yaml:"batch_size"`
	CachePath string `yaml:"cache_path"` // empty disables the on-disk embedding cache
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Env   string `yaml:"env"` // "dev" or "prod"
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		KnowledgeBase: KnowledgeBaseConfig{
			Path: "data/knowledge_base.json",
		},
		Retrieval: RetrievalConfig{
			Strategy:        "lexical",
			TopK:            3,
			CacheEnabled:    true,
			CacheSize:       100,
			CacheTTLSeconds: 300,
		},
		LLM: LLMConfig{
			Model:          "gpt-4o",
			Temperature:    0.7,
			MaxTokens:      500,
			APIKeyEnv:      "OPENAI_API_KEY",
			TimeoutSeconds: 30,
		},
		Embedding: EmbeddingConfig{
			Model:     "text-embedding-3-small",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 1536,
			BatchSize: 100,
			CachePath: ".supportbot/embeddings.db",
		},
		Logging: LoggingConfig{
			Env:   "dev",
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for supportbot.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "supportbot.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".supportbot", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
