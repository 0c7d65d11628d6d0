package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the configuration is usable
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server port is required")
	}
	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port: %s", cfg.ServerPort)
	}
	if cfg.UploadDir == "" {
		return fmt.Errorf("upload directory is required")
	}
	if cfg.MaxUploadBytes <= 0 {
		return fmt.Errorf("maximum upload size must be positive")
	}
	if cfg.LLMTimeout <= 0 {
		return fmt.Errorf("LLM timeout must be positive")
	}
	return nil
}
