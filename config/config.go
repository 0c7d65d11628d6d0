package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort           = "8080"
	defaultUploadDir      = "uploads"
	defaultMaxUploadBytes = 10 << 20 // 10 MiB
	defaultLLMTimeout     = 60 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Upload staging configuration
	UploadDir      string
	MaxUploadBytes int64

	// Inference provider configuration. The API credential itself is read by
	// the LLM service from OPENAI_API_KEY / OPENAI_API_KEY_FILE.
	LLMTimeout time.Duration
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:     os.Getenv("SERVER_HOST"),
		ServerPort:     defaultPort,
		UploadDir:      defaultUploadDir,
		MaxUploadBytes: defaultMaxUploadBytes,
		LLMTimeout:     defaultLLMTimeout,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.ServerPort = port
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		cfg.UploadDir = dir
	}
	if maxStr := os.Getenv("MAX_UPLOAD_BYTES"); maxStr != "" {
		maxBytes, err := strconv.ParseInt(maxStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.MaxUploadBytes = maxBytes
	}
	if timeoutStr := os.Getenv("LLM_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT_SECONDS: %w", err)
		}
		cfg.LLMTimeout = time.Duration(seconds) * time.Second
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
