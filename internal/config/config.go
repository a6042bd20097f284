// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings. Values come from environment
// variables; a .env file loaded by the caller feeds the same path.
type Config struct {
	LLM       LLMConfig
	Embedding EmbeddingConfig
	Interview InterviewConfig
	Server    ServerConfig
	Fetch     FetchConfig
	Log       LogConfig
}

// LLMConfig configures the external model client.
type LLMConfig struct {
	// APIKey authenticates against the Gemini API. Empty runs the
	// service in heuristic-only mode: curated questions and rule-based
	// evaluation, no model calls.
	APIKey string
}

// EmbeddingConfig configures the embedding provider and its cache.
type EmbeddingConfig struct {
	Model     string
	CacheDir  string // empty disables disk persistence
	CacheSize int
}

// InterviewConfig bounds session sizing.
type InterviewConfig struct {
	DefaultQuestions int
	MinQuestions     int
	MaxQuestions     int
	// SessionTimeout is how long an untouched session survives before
	// the janitor prunes it.
	SessionTimeout time.Duration
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int
	MaxUploadBytes int64
}

// FetchConfig configures job posting retrieval.
type FetchConfig struct {
	// RenderSPA enables the headless-browser fallback for client-rendered
	// postings. Requires Chrome on the host.
	RenderSPA bool
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string
	JSON  bool
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		LLM: LLMConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Embedding: EmbeddingConfig{
			Model:     getEnv("EMBEDDING_MODEL", "text-embedding-004"),
			CacheDir:  getEnv("EMBEDDING_CACHE_DIR", ""),
			CacheSize: getEnvAsInt("EMBEDDING_CACHE_SIZE", 512),
		},
		Interview: InterviewConfig{
			DefaultQuestions: getEnvAsInt("DEFAULT_QUESTIONS", 5),
			MinQuestions:     getEnvAsInt("MIN_QUESTIONS", 3),
			MaxQuestions:     getEnvAsInt("MAX_QUESTIONS", 10),
			SessionTimeout:   getEnvAsDuration("SESSION_TIMEOUT", 120*time.Minute),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("PORT", 8080),
			MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 16<<20),
		},
		Fetch: FetchConfig{
			RenderSPA: getEnvBool("RENDER_SPA", false),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			JSON:  getEnvBool("LOG_JSON", false),
		},
	}
}

// Validate checks that the configuration holds usable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: MAX_UPLOAD_BYTES must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if c.Embedding.CacheSize <= 0 {
		return fmt.Errorf("config error: EMBEDDING_CACHE_SIZE must be positive, got %d", c.Embedding.CacheSize)
	}
	if c.Embedding.Model == "" {
		return fmt.Errorf("config error: EMBEDDING_MODEL must not be empty")
	}
	if c.Interview.MinQuestions < 1 {
		return fmt.Errorf("config error: MIN_QUESTIONS must be at least 1, got %d", c.Interview.MinQuestions)
	}
	if c.Interview.MinQuestions > c.Interview.MaxQuestions {
		return fmt.Errorf("config error: MIN_QUESTIONS (%d) exceeds MAX_QUESTIONS (%d)",
			c.Interview.MinQuestions, c.Interview.MaxQuestions)
	}
	if c.Interview.DefaultQuestions < c.Interview.MinQuestions || c.Interview.DefaultQuestions > c.Interview.MaxQuestions {
		return fmt.Errorf("config error: DEFAULT_QUESTIONS (%d) must be between MIN_QUESTIONS (%d) and MAX_QUESTIONS (%d)",
			c.Interview.DefaultQuestions, c.Interview.MinQuestions, c.Interview.MaxQuestions)
	}
	if c.Interview.SessionTimeout <= 0 {
		return fmt.Errorf("config error: SESSION_TIMEOUT must be positive, got %s", c.Interview.SessionTimeout)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if c.Embedding.CacheDir != "" {
		// The cache creates the dir on demand; only an existing
		// non-directory path is a hard error.
		if info, err := os.Stat(c.Embedding.CacheDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: EMBEDDING_CACHE_DIR %s is not a directory", c.Embedding.CacheDir)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
