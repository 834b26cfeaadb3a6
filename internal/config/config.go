package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken   string
	APIBaseURL string
	APITimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		APIBaseURL: os.Getenv("API_BASE_URL"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	seconds, err := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "30"))
	if err != nil || seconds <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT_SECONDS must be a positive integer")
	}
	cfg.APITimeout = time.Duration(seconds) * time.Second

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
