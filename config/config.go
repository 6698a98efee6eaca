// Package config loads the server configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Transports accepted by ServerConfig.Transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// DataConfig locates the review records.
type DataConfig struct {
	Path string `yaml:"path"`
	// Aliases renames source keys to record fields at load time.
	Aliases map[string]string `yaml:"aliases"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Transport string `yaml:"transport"` // stdio or http
	Addr      string `yaml:"addr"`
	Path      string `yaml:"path"`
}

// MetricsConfig holds Prometheus settings. Metrics are served in http mode only.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Data: DataConfig{
			Path:    filepath.Join("data", "comments_data.json"),
			Aliases: map[string]string{"university": "institution"},
		},
		Server: ServerConfig{
			Name:      "supervisor-lookup",
			Version:   "0.1.0",
			Transport: TransportStdio,
			Addr:      ":8080",
			Path:      "/mcp",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the config at path over the defaults. An empty path or a
// missing file returns defaults. A data.aliases mapping in the file replaces
// the default aliases rather than merging with them; an empty mapping
// disables renaming.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	cfg.Data.Aliases = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Data.Aliases == nil {
		cfg.Data.Aliases = Defaults().Data.Aliases
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks values that have no usable fallback.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return fmt.Errorf("%w: data.path is required", ErrInvalidConfig)
	}
	switch c.Server.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.Server.Addr == "" {
			return fmt.Errorf("%w: server.addr is required for http transport", ErrInvalidConfig)
		}
		if !strings.HasPrefix(c.Server.Path, "/") {
			return fmt.Errorf("%w: server.path must start with /", ErrInvalidConfig)
		}
		if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
		}
		if c.Metrics.Enabled && c.Metrics.Path == c.Server.Path {
			return fmt.Errorf("%w: metrics.path and server.path must differ", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown server.transport %q", ErrInvalidConfig, c.Server.Transport)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: invalid log level %q: must be one of debug, info, warn, error", ErrInvalidConfig, s)
	}
}
