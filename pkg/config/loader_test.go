package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 25, cfg.API.ScheduleLimit)
	assert.Equal(t, "none", cfg.StopCache.Backend)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yml", `
server:
  address: ":9090"
api:
  timeout: 5s
  schedule_limit: 10
routes:
  sort_by: name-asc
  require_routes: true
stop_cache:
  backend: memory
  ttl: 10m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "https://api-v3.mbta.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.API.ScheduleLimit)
	assert.Equal(t, "name-asc", cfg.Routes.SortBy)
	assert.True(t, cfg.Routes.RequireRoutes)
	assert.Equal(t, "memory", cfg.StopCache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.StopCache.TTL)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[api]
base_url = "http://localhost:4000"
timeout = "2s"

[stop_cache]
backend = "redis"
ttl = "30m"

[stop_cache.redis]
address = "localhost:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4000", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, "redis", cfg.StopCache.Backend)
	assert.Equal(t, 30*time.Minute, cfg.StopCache.TTL)
	assert.Equal(t, "localhost:6379", cfg.StopCache.Redis.Address)
	assert.Equal(t, ":8080", cfg.Server.Address)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "config.yml", "invalid: yaml: content: [[[")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.json", "{}")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Routes.SortBy = "by-color"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.API.BaseURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.API.ScheduleLimit = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.StopCache.Backend = "redis"
	assert.Error(t, cfg.Validate())

	cfg.StopCache.Redis.Address = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}
