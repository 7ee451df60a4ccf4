// Package config loads dashboard server settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	Runs   RunConfig
}

type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RunConfig struct {
	// CacheSize bounds the LRU of completed results keyed by parameter tuple.
	CacheSize int

	// Parameter bounds enforced on submitted runs.
	MinNetworkSize int
	MaxNetworkSize int
	MaxSteps       int
	MaxKThreshold  int
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Address:      getEnv("SERVER_ADDRESS", ":8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 120*time.Second),
		},
		Runs: RunConfig{
			CacheSize:      getInt("RUN_CACHE_SIZE", 32),
			MinNetworkSize: getInt("RUN_MIN_NETWORK_SIZE", 500),
			MaxNetworkSize: getInt("RUN_MAX_NETWORK_SIZE", 2000),
			MaxSteps:       getInt("RUN_MAX_STEPS", 20),
			MaxKThreshold:  getInt("RUN_MAX_K_THRESHOLD", 5),
		},
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
