package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Enhancement engine (OpenAI-compatible image edit API)
	EnhanceAPIKey     string
	EnhanceAPIBaseURL string
	EnhanceTimeout    time.Duration
	EnhancePhotoDelay time.Duration

	// Internal service-to-service key for the auto-enhance trigger
	InternalKey string

	// Background job runner
	JobPollInterval time.Duration
	JobMaxAttempts  int

	// AWS S3
	AWSRegion      string
	S3Bucket       string
	S3FolderPrefix string

	// Notification email API
	NotifyAPIURL string
	NotifyAPIKey string
	AdminEmail   string

	// Admin auth
	JWTSecret string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		EnhanceAPIKey:     getEnv("ENHANCE_API_KEY", ""),
		EnhanceAPIBaseURL: getEnv("ENHANCE_API_BASE_URL", "https://apps.abacus.ai"),
		EnhanceTimeout:    getEnvSeconds("ENHANCE_TIMEOUT_SECONDS", 150),
		EnhancePhotoDelay: getEnvSeconds("ENHANCE_PHOTO_DELAY_SECONDS", 1),

		InternalKey: getEnv("INTERNAL_SERVICE_KEY", ""),

		JobPollInterval: getEnvSeconds("JOB_POLL_SECONDS", 5),
		JobMaxAttempts:  getEnvInt("JOB_MAX_ATTEMPTS", 3),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3FolderPrefix: getEnv("S3_FOLDER_PREFIX", ""),

		NotifyAPIURL: getEnv("NOTIFY_API_URL", ""),
		NotifyAPIKey: getEnv("NOTIFY_API_KEY", ""),
		AdminEmail:   getEnv("ADMIN_EMAIL", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.EnhanceAPIKey == "" {
		return fmt.Errorf("ENHANCE_API_KEY is required")
	}
	if c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.InternalKey == "" {
		return fmt.Errorf("INTERNAL_SERVICE_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultValue) * time.Second
}
