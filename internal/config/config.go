package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	Redis     RedisConfig
	CacheTTLs CacheTTLConfig
	Embedding EmbeddingConfig
	Logger    LoggerConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LLMConfig selects the text-generation backend used by every capability.
type LLMConfig struct {
	Provider    string // "ollama" or "openai"
	ServerURL   string
	Model       string
	APIKey      string
	Temperature float64
	Timeout     time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// CacheTTLConfig holds duration strings such as "1h" or "30m".
type CacheTTLConfig struct {
	Evaluations string
}

// EmbeddingConfig controls the answer cache, which reuses evaluator output
// for answers whose embedding is close to one already evaluated.
type EmbeddingConfig struct {
	Enabled             bool
	Provider            string // "ollama" or "openai"
	ServerURL           string
	Model               string
	APIKey              string
	SimilarityThreshold float64
}

type LoggerConfig struct {
	Level string
	Env   string
}

type SessionConfig struct {
	IdleTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "60s")

	v.SetDefault("llm.provider", "ollama")
	v.SetDefault("llm.server_url", "http://localhost:11434")
	v.SetDefault("llm.model", "llama3")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.timeout", "60s")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("cache_ttls.evaluations", "24h")

	v.SetDefault("embedding.enabled", false)
	v.SetDefault("embedding.provider", "ollama")
	v.SetDefault("embedding.server_url", "http://localhost:11434")
	v.SetDefault("embedding.model", "nomic-embed-text")
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.similarity_threshold", 0.95)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("session.idle_ttl", "2h")
}

// LoadConfig reads config.yaml (if present), .env (if present) and the
// environment. Environment variables use "_" in place of ".", e.g.
// LLM_SERVER_URL overrides llm.server_url.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("./configs")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			ServerURL:   v.GetString("llm.server_url"),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     v.GetDuration("llm.timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			Evaluations: v.GetString("cache_ttls.evaluations"),
		},
		Embedding: EmbeddingConfig{
			Enabled:             v.GetBool("embedding.enabled"),
			Provider:            strings.ToLower(v.GetString("embedding.provider")),
			ServerURL:           v.GetString("embedding.server_url"),
			Model:               v.GetString("embedding.model"),
			APIKey:              v.GetString("embedding.api_key"),
			SimilarityThreshold: v.GetFloat64("embedding.similarity_threshold"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Session: SessionConfig{
			IdleTTL: v.GetDuration("session.idle_ttl"),
		},
	}

	// OPENAI_API_KEY is the conventional name; honour it when llm.api_key is unset.
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = cfg.LLM.APIKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at first use.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "ollama":
		if c.LLM.ServerURL == "" {
			return fmt.Errorf("llm.server_url is required for the ollama provider")
		}
	case "openai":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for the openai provider")
		}
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.Embedding.Enabled {
		if c.Embedding.Provider != "ollama" && c.Embedding.Provider != "openai" {
			return fmt.Errorf("unsupported embedding.provider %q", c.Embedding.Provider)
		}
		if c.Embedding.SimilarityThreshold <= 0 || c.Embedding.SimilarityThreshold > 1 {
			return fmt.Errorf("embedding.similarity_threshold must be in (0, 1], got %v", c.Embedding.SimilarityThreshold)
		}
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	return nil
}

// ParseTTLStringOrDefault parses a duration string, falling back to
// defaultTTL when the string is empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttlString string, defaultTTL time.Duration) time.Duration {
	if ttlString == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttlString)
	if err != nil || d < 0 {
		return defaultTTL
	}
	return d
}
