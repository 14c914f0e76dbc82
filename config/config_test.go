package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("IMAGE_GEN_ENDPOINT", "https://api.example.com/generate")
	os.Setenv("MAX_POLL_ATTEMPTS", "12")
	defer os.Unsetenv("DATABASE_URL")
	defer os.Unsetenv("IMAGE_GEN_ENDPOINT")
	defer os.Unsetenv("MAX_POLL_ATTEMPTS")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "https://api.example.com/generate", cfg.ImageGenEndpoint)
	assert.Equal(t, 12, cfg.MaxPollAttempts)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, "recipe-step-images", cfg.AssetsBucket)
	assert.False(t, cfg.CacheEnabled)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	os.Unsetenv("DATABASE_URL")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidateImageGen(t *testing.T) {
	cfg := &Config{}
	err := cfg.ValidateImageGen()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "IMAGE_GEN_ENDPOINT")

	cfg.ImageGenEndpoint = "https://api.example.com/generate"
	err = cfg.ValidateImageGen()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "IMAGE_GEN_API_KEY")

	cfg.ImageGenAPIKey = "key"
	err = cfg.ValidateImageGen()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ASSETS_PUBLIC_BASE_URL")

	cfg.AssetsPublicBaseURL = "https://assets.example.com"
	assert.NoError(t, cfg.ValidateImageGen())
}
