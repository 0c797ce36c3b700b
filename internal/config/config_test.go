package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_MAX_BACKUPS", "7")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_BUCKET", "onboarding")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_REGION", "eu-west-1")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/onboardpdf.prom")

	cfg := Load()

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, "onboarding", cfg.MinIO.Bucket)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "eu-west-1", cfg.MinIO.Region)
	assert.True(t, cfg.MinIO.Enabled())
	assert.Equal(t, "/var/lib/node_exporter/onboardpdf.prom", cfg.MetricsTextfile)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE_MB", "MINIO_ENDPOINT", "METRICS_TEXTFILE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.False(t, cfg.MinIO.Enabled())
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
