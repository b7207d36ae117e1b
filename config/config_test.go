package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	path := writeConfig(t, `
server:
  port: 8080
gemini:
  apiKey: file-key
  timeoutSeconds: 5
redis:
  addr: localhost:6379
  ttlMinutes: 15
cors:
  allowOrigins: ["https://example.com"]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file-key", cfg.Gemini.ApiKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 5*time.Second, cfg.GeminiTimeout())
	assert.Equal(t, 15*time.Minute, cfg.ResultTTL())
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "assessments", cfg.Database.Collection)
	assert.Equal(t, 10, cfg.RateLimit.Submissions)
	assert.Equal(t, time.Minute, cfg.RateWindow())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("REDIS_ADDR", "redis:6379")
	path := writeConfig(t, "gemini:\n  apiKey: file-key\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gemini.ApiKey)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "server: [not a map"))
	assert.Error(t, err)
}
