// Package config loads the runtime configuration for the nepalikit servers.
//
// Settings come from three layers, later layers winning: built-in defaults,
// an optional YAML file, and NEPALIKIT_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "15m" parse naturally.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port pair for net listeners.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisConfig holds the connection settings for the redis cache backend.
type RedisConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// CacheConfig selects and tunes the search cache backend.
type CacheConfig struct {
	Backend string      `yaml:"backend"` // "memory", "redis" or "file"
	TTL     Duration    `yaml:"ttl"`
	Path    string      `yaml:"path"` // entry directory for the file backend
	Redis   RedisConfig `yaml:"redis"`
}

// Config models the full nepalikit.yaml file.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Server   ServerConfig `yaml:"server"`
	Cache    CacheConfig  `yaml:"cache"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     Duration(15 * time.Minute),
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "nepalikit:",
			},
		},
	}
}

// Load builds the effective configuration. An empty path skips the file layer;
// a non-empty path must exist and parse.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("NEPALIKIT_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("NEPALIKIT_SERVER_HOST"); ok {
		c.Server.Host = v
	}
	if v, ok := os.LookupEnv("NEPALIKIT_SERVER_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NEPALIKIT_SERVER_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v, ok := os.LookupEnv("NEPALIKIT_CACHE_BACKEND"); ok {
		c.Cache.Backend = v
	}
	if v, ok := os.LookupEnv("NEPALIKIT_CACHE_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NEPALIKIT_CACHE_TTL: %w", err)
		}
		c.Cache.TTL = Duration(ttl)
	}
	if v, ok := os.LookupEnv("NEPALIKIT_CACHE_PATH"); ok {
		c.Cache.Path = v
	}
	if v, ok := os.LookupEnv("NEPALIKIT_REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := os.LookupEnv("NEPALIKIT_REDIS_PREFIX"); ok {
		c.Cache.Redis.Prefix = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch strings.ToLower(strings.TrimSpace(c.Cache.Backend)) {
	case "memory", "redis", "file":
		c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	default:
		return fmt.Errorf("cache.backend must be 'memory', 'redis' or 'file', got %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	if c.Cache.Backend == "redis" && strings.TrimSpace(c.Cache.Redis.Addr) == "" {
		return fmt.Errorf("cache.redis.addr is required for the redis backend")
	}
	return nil
}
