package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archstyles/pkg/cache"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "site.yaml", `
server:
  addr: ":9090"
  write_timeout: 30s
log:
  level: debug
cache:
  backend: none
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, cache.BackendNone, cfg.Cache.Backend)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "public", cfg.Export.Dir)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "site.toml", `
[server]
addr = ":7070"
base_url = "https://styles.example.com"

[cache]
backend = "redis"
redis_addr = "cache:6379"
redis_db = 2
ttl = "5m"

[export]
dir = "dist"
base = "/styles-site"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "https://styles.example.com", cfg.PublicURL())
	assert.Equal(t, cache.Options{Backend: "redis", RedisAddr: "cache:6379", RedisDB: 2}, cfg.Cache.Options())
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "dist", cfg.Export.Dir)
	assert.Equal(t, "/styles-site", cfg.Export.Base)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "site.json", `{}`))
	assert.ErrorContains(t, err, "unsupported format")

	_, err = Load(writeFile(t, "site.yaml", "server: [unterminated"))
	assert.ErrorContains(t, err, "parsing config")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":       "3000",
		"BASE_URL":   "https://example.com/",
		"LOG_LEVEL":  "warn",
		"REDIS_ADDR": "redis:6379",
	}
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, "https://example.com", cfg.Server.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, cache.BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
}

func TestApplyEnvBadPort(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) string {
		if k == "PORT" {
			return "eighty"
		}
		return ""
	})
	assert.Error(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Cache.Backend = "memcached"
	assert.ErrorIs(t, cfg.Validate(), cache.ErrUnknownBackend)

	cfg = Default()
	cfg.Cache.Backend = cache.BackendRedis
	cfg.Cache.RedisAddr = ""
	assert.Error(t, cfg.Validate())
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", Default().PublicURL())
}
