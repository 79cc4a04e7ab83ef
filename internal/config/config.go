package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the board client
type Config struct {
	API     APIConfig
	Session SessionConfig
	Notify  NotifyConfig
	Import  ImportConfig
}

type APIConfig struct {
	// Base URL of the board backend, including the /api prefix
	BaseURL string
	// Per-request timeout
	Timeout time.Duration
	// User agent sent with every request
	UserAgent string
}

type SessionConfig struct {
	// Redis connection for durable session storage
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// Key prefix for the token/user slots
	KeyPrefix string
}

type NotifyConfig struct {
	// How long a notification stays visible
	TTL time.Duration
}

type ImportConfig struct {
	// User agent for importing external postings
	UserAgent string
	// Delay between import requests to the same host
	RequestDelay time.Duration
}

// Load creates a Config from environment variables with defaults
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   getEnv("BOARD_API_URL", "http://localhost:5000/api"),
			Timeout:   time.Duration(getEnvInt("BOARD_API_TIMEOUT_MS", 30000)) * time.Millisecond,
			UserAgent: getEnv("BOARD_USER_AGENT", "board-client/1.0"),
		},
		Session: SessionConfig{
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			KeyPrefix:     getEnv("SESSION_KEY_PREFIX", "session"),
		},
		Notify: NotifyConfig{
			TTL: time.Duration(getEnvInt("NOTIFY_TTL_MS", 5000)) * time.Millisecond,
		},
		Import: ImportConfig{
			UserAgent:    getEnv("IMPORT_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
			RequestDelay: time.Duration(getEnvInt("IMPORT_DELAY_MS", 1000)) * time.Millisecond,
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
