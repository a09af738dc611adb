package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("LLM_MODEL", "qwen3:0.6b")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "qwen3:0.6b", cfg.LLM.Model)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.False(t, cfg.Embedding.Enabled)
	assert.Equal(t, 0.95, cfg.Embedding.SimilarityThreshold)
	assert.Equal(t, "24h", cfg.CacheTTLs.Evaluations)
}

func TestLoadConfig_OpenAIRequiresKey(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.api_key")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid ollama",
			cfg:  Config{Server: ServerConfig{Port: 8090}, LLM: LLMConfig{Provider: "ollama", ServerURL: "http://localhost:11434"}},
		},
		{
			name:    "ollama without url",
			cfg:     Config{Server: ServerConfig{Port: 8090}, LLM: LLMConfig{Provider: "ollama"}},
			wantErr: "llm.server_url",
		},
		{
			name:    "unknown provider",
			cfg:     Config{Server: ServerConfig{Port: 8090}, LLM: LLMConfig{Provider: "bard"}},
			wantErr: "unsupported llm.provider",
		},
		{
			name: "embedding threshold out of range",
			cfg: Config{
				Server:    ServerConfig{Port: 8090},
				LLM:       LLMConfig{Provider: "ollama", ServerURL: "http://localhost:11434"},
				Embedding: EmbeddingConfig{Enabled: true, Provider: "ollama", SimilarityThreshold: 1.5},
			},
			wantErr: "embedding.similarity_threshold",
		},
		{
			name: "disabled embedding is not checked",
			cfg: Config{
				Server:    ServerConfig{Port: 8090},
				LLM:       LLMConfig{Provider: "ollama", ServerURL: "http://localhost:11434"},
				Embedding: EmbeddingConfig{Provider: "word2vec"},
			},
		},
		{
			name:    "bad port",
			cfg:     Config{LLM: LLMConfig{Provider: "openai", APIKey: "k"}},
			wantErr: "server.port",
		},
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

func TestConfig_ParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 30*time.Minute, cfg.ParseTTLStringOrDefault("30m", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("soon", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("-5m", time.Hour))
}
