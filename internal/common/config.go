package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	QA       QAConfig
	Batch    BatchConfig
}

// DatabaseConfig holds job-store configuration
type DatabaseConfig struct {
	Driver      string // "sqlite" or "postgres"
	DSN         string
	DialTimeout time.Duration
}

// QAConfig holds question-answering model configuration
type QAConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", "sqlite"),
			DSN:         getEnv("DB_URL", "fieldlens.db"),
			DialTimeout: getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		QA: QAConfig{
			BaseURL: getEnv("QA_BASE_URL", "https://api-inference.huggingface.co"),
			Model:   getEnv("QA_MODEL", "distilbert-base-cased-distilled-squad"),
			APIKey:  getEnv("QA_API_KEY", ""),
			Timeout: getEnvAsDuration("QA_TIMEOUT", 30*time.Second),
		},
		Batch: BatchConfig{
			Workers:    getEnvAsInt("BATCH_WORKERS", 4),
			QueueSize:  getEnvAsInt("BATCH_QUEUE_SIZE", 256),
			JobTimeout: getEnvAsDuration("BATCH_JOB_TIMEOUT", 3*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return NewAppError("CONFIG_ERROR", "DB_DRIVER must be sqlite or postgres", ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Batch.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "BATCH_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
