package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL string

	ImageGenEndpoint string
	ImageGenAPIKey   string
	ImageWidth       int
	ImageHeight      int
	PollInterval     time.Duration
	MaxPollAttempts  int

	AWSRegion           string
	AssetsBucket        string
	AssetsPublicBaseURL string

	CacheEnabled bool
	RedisHost    string
	RedisPort    string
	CacheTTL     time.Duration
}

// Load reads the environment once at startup. Only DATABASE_URL is always
// required; image-service and storage settings are validated separately so
// text-only runs do not need them.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		ImageGenEndpoint:    os.Getenv("IMAGE_GEN_ENDPOINT"),
		ImageGenAPIKey:      os.Getenv("IMAGE_GEN_API_KEY"),
		ImageWidth:          getEnvInt("IMAGE_WIDTH", 1024),
		ImageHeight:         getEnvInt("IMAGE_HEIGHT", 768),
		PollInterval:        time.Duration(getEnvInt("POLL_INTERVAL_SECONDS", 5)) * time.Second,
		MaxPollAttempts:     getEnvInt("MAX_POLL_ATTEMPTS", 60),
		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AssetsBucket:        getEnv("ASSETS_BUCKET", "recipe-step-images"),
		AssetsPublicBaseURL: getEnv("ASSETS_PUBLIC_BASE_URL", ""),
		CacheEnabled:        getEnv("IMAGE_CACHE_ENABLED", "false") == "true",
		RedisHost:           getEnv("REDIS_HOST", "localhost"),
		RedisPort:           getEnv("REDIS_PORT", "6379"),
		CacheTTL:            time.Duration(getEnvInt("IMAGE_CACHE_TTL_HOURS", 168)) * time.Hour,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return cfg, nil
}

// ValidateImageGen checks the settings that only image-generating runs
// need. Called before any network call is attempted.
func (c *Config) ValidateImageGen() error {
	if c.ImageGenEndpoint == "" {
		return fmt.Errorf("IMAGE_GEN_ENDPOINT is required when image generation is enabled")
	}
	if c.ImageGenAPIKey == "" {
		return fmt.Errorf("IMAGE_GEN_API_KEY is required when image generation is enabled")
	}
	if c.AssetsPublicBaseURL == "" {
		return fmt.Errorf("ASSETS_PUBLIC_BASE_URL is required when image generation is enabled")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
