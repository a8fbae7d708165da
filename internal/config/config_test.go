package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadConfig_FromFile(t *testing.T) {
	content := `
server:
  port: "9000"
  allow_origins:
    - http://localhost:3000
database:
  host: db.internal
  port: 5433
  user: catalog
  database: catalog_prod
  sslmode: require
rate_limit:
  enabled: false
  requests_per_minute: 10
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.PortString())
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: valid"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestPortString_ZeroIsUnset(t *testing.T) {
	cfg := DatabaseConfig{}
	assert.Equal(t, "", cfg.PortString())
}
