package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file and on the serve command.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config is the optional CLI configuration, read from
// ~/.config/stairforge/config.toml. Every field has a working default, so
// the file only needs to exist for overrides.
type Config struct {
	Cache    CacheConfig    `toml:"cache"`
	Generate GenerateConfig `toml:"generate"`
	Server   ServerConfig   `toml:"server"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file" (default), "redis", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`

	// Redis configures the redis backend.
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig mirrors cache.RedisConfig for TOML decoding.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// GenerateConfig sets defaults for the generate command. Flags given on the
// command line still win.
type GenerateConfig struct {
	// Formats is the default comma-separated format list (default "svg").
	Formats string `toml:"formats"`

	// View is the default drawing projection (default "plan").
	View string `toml:"view"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	// Listen is the HTTP listen address (default ":8080").
	Listen string `toml:"listen"`

	// MongoURI enables the MongoDB preset store when set.
	MongoURI string `toml:"mongo_uri"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Cache:  CacheConfig{Backend: CacheBackendFile},
		Server: ServerConfig{Listen: ":8080"},
	}
}

// configPath returns the default config file location
// (~/.config/stairforge/config.toml, honoring XDG_CONFIG_HOME).
func configPath() (string, error) {
	if cfgHome := os.Getenv("XDG_CONFIG_HOME"); cfgHome != "" {
		return filepath.Join(cfgHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error and yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheBackendFile
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	switch cfg.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return DefaultConfig(), fmt.Errorf("config %s: unknown cache backend %q", path, cfg.Cache.Backend)
	}

	return cfg, nil
}
