package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "https://reports.example.com")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://reports.example.com", cfg.Upstream.URL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sk-test", cfg.Assistant.APIKey)
	assert.Equal(t, "uploads", cfg.Uploads.Root)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  host: 127.0.0.1
  port: "8181"
upstream:
  url: https://reports.internal
uploads:
  root: /var/lib/reports
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "8181", cfg.Server.Port)
	assert.Equal(t, "https://reports.internal", cfg.Upstream.URL)
	assert.Equal(t, "/var/lib/reports", cfg.Uploads.Root)
}

func TestLoadMissingUpstreamURL(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
