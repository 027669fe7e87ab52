// Package config loads server, cache and export settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"archstyles/pkg/cache"
)

// Config holds all settings of the site.
type Config struct {
	Server ServerConfig `yaml:"server" toml:"server"`
	Log    LogConfig    `yaml:"log" toml:"log"`
	Cache  CacheConfig  `yaml:"cache" toml:"cache"`
	Export ExportConfig `yaml:"export" toml:"export"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
	// BaseURL is the public origin, used in log output.
	BaseURL string `yaml:"base_url" toml:"base_url"`

	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" toml:"read_header_timeout"`
	ReadTimeout       time.Duration `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout" toml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" toml:"idle_timeout"`
	// RequestTimeout bounds a single handler.
	RequestTimeout  time.Duration `yaml:"request_timeout" toml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

// CacheConfig selects the page cache backend.
type CacheConfig struct {
	Backend   string        `yaml:"backend" toml:"backend"` // memory, redis, none
	TTL       time.Duration `yaml:"ttl" toml:"ttl"`
	RedisAddr string        `yaml:"redis_addr" toml:"redis_addr"`
	RedisDB   int           `yaml:"redis_db" toml:"redis_db"`
}

// Options converts the section to cache.Open options.
func (c CacheConfig) Options() cache.Options {
	return cache.Options{
		Backend:   c.Backend,
		RedisAddr: c.RedisAddr,
		RedisDB:   c.RedisDB,
	}
}

// ExportConfig holds static export settings.
type ExportConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
	// Base is the path prefix the exported site is served under.
	Base string `yaml:"base" toml:"base"`
}

// Default returns the config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			RequestTimeout:    15 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Cache: CacheConfig{
			Backend:   cache.BackendMemory,
			TTL:       time.Hour,
			RedisAddr: "127.0.0.1:6379",
		},
		Export: ExportConfig{
			Dir: "public",
		},
	}
}

// Load reads a YAML or TOML file, chosen by extension, over the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PORT, BASE_URL, LOG_LEVEL and REDIS_ADDR.
// Setting REDIS_ADDR also switches the cache to redis.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return fmt.Errorf("PORT %q: %w", port, err)
		}
		c.Server.Addr = ":" + port
	}
	if base := strings.TrimSpace(getenv("BASE_URL")); base != "" {
		c.Server.BaseURL = strings.TrimRight(base, "/")
	}
	if level := strings.TrimSpace(getenv("LOG_LEVEL")); level != "" {
		c.Log.Level = level
	}
	if addr := strings.TrimSpace(getenv("REDIS_ADDR")); addr != "" {
		c.Cache.Backend = cache.BackendRedis
		c.Cache.RedisAddr = addr
	}
	return nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case cache.BackendMemory, cache.BackendRedis, cache.BackendNone:
	default:
		return fmt.Errorf("%w: %q", cache.ErrUnknownBackend, c.Cache.Backend)
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache: redis backend needs redis_addr")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server: addr is required")
	}
	return nil
}

// PublicURL is the origin users reach the server at.
func (c Config) PublicURL() string {
	if c.Server.BaseURL != "" {
		return c.Server.BaseURL
	}
	addr := c.Server.Addr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
