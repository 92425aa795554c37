// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use Defaults or CLI flags.
type Config struct {
	// History
	HistoryBackend string `json:"history_backend,omitempty"` // file, sqlite or postgres
	HistoryPath    string `json:"history_path,omitempty"`    // File or SQLite database location
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL

	// Semantic scoring
	EmbeddingProvider string `json:"embedding_provider,omitempty"` // gemini or hashing
	EmbeddingModel    string `json:"embedding_model,omitempty"`    // Gemini embedding model name
	APIKey            string `json:"api_key,omitempty"`            // Gemini API key

	// Server
	Port           int     `json:"port,omitempty"`             // HTTP listen port
	RateLimit      float64 `json:"rate_limit,omitempty"`       // Analyses per second per client
	RateLimitBurst int     `json:"rate_limit_burst,omitempty"` // Burst size per client
	MaxUploadMB    int     `json:"max_upload_mb,omitempty"`    // Upload size limit

	// Behavior
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA job pages
	LogFormat  string `json:"log_format,omitempty"`  // console or json
	Verbose    bool   `json:"verbose,omitempty"`     // Debug logging
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		HistoryBackend:    "file",
		EmbeddingProvider: "gemini",
		EmbeddingModel:    "text-embedding-004",
		Port:              8080,
		RateLimit:         1,
		RateLimitBurst:    5,
		MaxUploadMB:       10,
		LogFormat:         "console",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.HistoryBackend {
	case "", "file", "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres history backend")
		}
	default:
		return fmt.Errorf("config error: unknown 'history_backend' %q (use file, sqlite or postgres)", c.HistoryBackend)
	}

	switch c.EmbeddingProvider {
	case "", "gemini", "hashing":
	default:
		return fmt.Errorf("config error: unknown 'embedding_provider' %q (use gemini or hashing)", c.EmbeddingProvider)
	}

	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("config error: unknown 'log_format' %q (use console or json)", c.LogFormat)
	}

	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config error: 'rate_limit' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.HistoryBackend == "" {
		result.HistoryBackend = defaults.HistoryBackend
	}
	if result.HistoryPath == "" {
		result.HistoryPath = defaults.HistoryPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.EmbeddingProvider == "" {
		result.EmbeddingProvider = defaults.EmbeddingProvider
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimit == 0 {
		result.RateLimit = defaults.RateLimit
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills the API key and database URL from the environment when the file leaves them empty.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}
