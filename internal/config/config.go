package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type OpenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

type GeminiConfig struct {
	APIKey     string
	ImageModel string
}

const (
	StorageBackendGCS   = "gcs"
	StorageBackendLocal = "local"
)

type StorageConfig struct {
	Backend         string
	Bucket          string
	CredentialsFile string
	LocalDir        string
	LocalBaseURL    string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			ShutdownTimeout: time.Duration(getEnvInt("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o"),
			Temperature: getEnvFloat("OPENAI_TEMPERATURE", 0.85),
			Timeout:     time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", 90)) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			ImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		},
		Storage: StorageConfig{
			Backend:         getEnv("STORAGE_BACKEND", StorageBackendLocal),
			Bucket:          getEnv("STORAGE_BUCKET", ""),
			CredentialsFile: getEnv("STORAGE_CREDENTIALS_FILE", ""),
			LocalDir:        getEnv("STORAGE_LOCAL_DIR", "data/storage"),
			LocalBaseURL:    getEnv("STORAGE_LOCAL_BASE_URL", "http://localhost:8080/files"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", ""),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "prosport"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "prosport"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the server cannot run without. Model credentials are
// deliberately not required: a missing OPENAI_API_KEY routes every request to the
// deterministic fallback renderer, and a missing GEMINI_API_KEY disables background
// generation.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("SERVER_ADDR is required")
	}
	switch c.Storage.Backend {
	case StorageBackendGCS:
		if c.Storage.Bucket == "" {
			return fmt.Errorf("STORAGE_BUCKET is required for the gcs backend")
		}
	case StorageBackendLocal:
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("STORAGE_LOCAL_DIR is required for the local backend")
		}
		if c.Storage.LocalBaseURL == "" {
			return fmt.Errorf("STORAGE_LOCAL_BASE_URL is required for the local backend")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q", StorageBackendGCS, StorageBackendLocal)
	}
	return nil
}

// RedisEnabled reports whether a Redis host is configured. Without it the
// background cache runs without the per-slug lock.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// PostgresEnabled reports whether artifact history recording is configured.
func (c *Config) PostgresEnabled() bool {
	return c.Postgres.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
