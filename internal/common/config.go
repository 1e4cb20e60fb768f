package common

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	Extract  ExtractConfig
	VLM      VLMConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// StorageConfig holds source-file storage configuration.
type StorageConfig struct {
	Bucket   string
	Prefix   string
	CacheDir string
}

// ExtractConfig holds text-extraction configuration.
type ExtractConfig struct {
	Pdftotext     string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm      string // binary name or absolute path; if empty -> "pdftoppm"
	HeicConverter string // "magick" | "heif-convert" | "sips"
	DPI           int
	MaxImageMB    int
}

// VLMConfig holds vision-model configuration.
type VLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// PipelineConfig holds orchestrator behavior knobs.
type PipelineConfig struct {
	Workers     int
	MaxAttempts int
	BackoffBase time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Storage: StorageConfig{
			Bucket:   getEnv("RESULTS_BUCKET", ""),
			Prefix:   getEnv("RESULTS_PREFIX", "ski/比赛成绩汇总/"),
			CacheDir: getEnv("CACHE_DIR", "./data/cache"),
		},
		Extract: ExtractConfig{
			Pdftotext:     getEnv("PDFTOTEXT", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM", "pdftoppm"),
			HeicConverter: getEnv("HEIC_CONVERTER", "magick"),
			DPI:           getEnvAsInt("RASTER_DPI", 200),
			MaxImageMB:    getEnvAsInt("MAX_IMAGE_MB", 10),
		},
		VLM: VLMConfig{
			BaseURL:     getEnv("VLM_BASE_URL", ""),
			APIKey:      getEnv("VLM_API_KEY", ""),
			Model:       getEnv("VLM_MODEL", "qwen3-vl-235b-a22b"),
			Temperature: getEnvAsFloat32("VLM_TEMPERATURE", 0.1),
			MaxTokens:   getEnvAsInt("VLM_MAX_TOKENS", 8192),
			Timeout:     getEnvAsDuration("VLM_TIMEOUT", 90*time.Second),
		},
		Pipeline: PipelineConfig{
			Workers:     getEnvAsInt("PIPELINE_WORKERS", 4),
			MaxAttempts: getEnvAsInt("PIPELINE_MAX_ATTEMPTS", 3),
			BackoffBase: getEnvAsDuration("PIPELINE_BACKOFF_BASE", time.Second),
		},
	}
}

// Validate checks the loaded configuration for required values.
func (c *Config) Validate() error {
	if c.VLM.BaseURL == "" {
		return fmt.Errorf("VLM_BASE_URL is required: %w", ErrInvalidInput)
	}
	if c.VLM.APIKey == "" {
		return fmt.Errorf("VLM_API_KEY is required: %w", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing.
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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
