package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/cv")
	t.Setenv("RATE_LIMIT_GLOBAL_THRESHOLD", "not-a-number")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("FRONTEND_URL", "http://localhost:3000/")
	t.Setenv("RATE_LIMIT_UPLOAD_THRESHOLD", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/cv", cfg.DBUrl)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 100, cfg.RateLimitGlobalThreshold, "invalid ints fall back to default")
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, 5, cfg.RateLimitUploadThreshold)
	assert.Equal(t, 10, cfg.RateLimitLoginThreshold)
}

func TestStorageConfigured(t *testing.T) {
	cfg := &Config{S3Bucket: "photos"}
	assert.False(t, cfg.StorageConfigured())

	cfg.S3AccessKeyID = "key"
	cfg.S3SecretAccessKey = "secret"
	assert.True(t, cfg.StorageConfigured())
}
