package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"history_backend": "sqlite",
		"history_path": "/var/lib/resume/history.db",
		"embedding_provider": "hashing",
		"port": 9090,
		"use_browser": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sqlite", cfg.HistoryBackend)
	assert.Equal(t, "/var/lib/resume/history.db", cfg.HistoryPath)
	assert.Equal(t, "hashing", cfg.EmbeddingProvider)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.UseBrowser)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero value", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "postgres with url", cfg: Config{HistoryBackend: "postgres", DatabaseURL: "postgres://localhost/db"}},
		{name: "postgres without url", cfg: Config{HistoryBackend: "postgres"}, wantErr: "database_url"},
		{name: "unknown backend", cfg: Config{HistoryBackend: "mongo"}, wantErr: "history_backend"},
		{name: "unknown provider", cfg: Config{EmbeddingProvider: "openai"}, wantErr: "embedding_provider"},
		{name: "unknown log format", cfg: Config{LogFormat: "xml"}, wantErr: "log_format"},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "negative rate", cfg: Config{RateLimit: -1}, wantErr: "rate_limit"},
		{name: "negative burst", cfg: Config{RateLimitBurst: -1}, wantErr: "rate_limit_burst"},
		{name: "negative upload", cfg: Config{MaxUploadMB: -5}, wantErr: "max_upload_mb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		HistoryBackend: "sqlite",
		Port:           9000,
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "sqlite", merged.HistoryBackend)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "gemini", merged.EmbeddingProvider)
	assert.Equal(t, "text-embedding-004", merged.EmbeddingModel)
	assert.Equal(t, 1.0, merged.RateLimit)
	assert.Equal(t, 5, merged.RateLimitBurst)
	assert.Equal(t, 10, merged.MaxUploadMB)
	assert.Equal(t, "console", merged.LogFormat)

	// original is untouched
	assert.Empty(t, cfg.EmbeddingProvider)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := &Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)

	cfg = &Config{APIKey: "file-key"}
	cfg.ApplyEnv()
	assert.Equal(t, "file-key", cfg.APIKey)
}
