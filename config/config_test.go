package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Data.Path != filepath.Join("data", "comments_data.json") {
		t.Errorf("data.path = %q", cfg.Data.Path)
	}
	if cfg.Data.Aliases["university"] != "institution" {
		t.Errorf("data.aliases = %v, want university -> institution", cfg.Data.Aliases)
	}
	if cfg.Server.Transport != TransportStdio {
		t.Errorf("server.transport = %q, want stdio", cfg.Server.Transport)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server.addr = %q, want :8080", cfg.Server.Addr)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should be enabled by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q, want info", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Name != "supervisor-lookup" {
		t.Errorf("server.name = %q, want default", cfg.Server.Name)
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Transport != TransportStdio {
		t.Errorf("server.transport = %q, want stdio", cfg.Server.Transport)
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  transport: http\n  addr: \":9090\"\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Transport != TransportHTTP || cfg.Server.Addr != ":9090" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.Path != "/mcp" {
		t.Errorf("server.path = %q, want default /mcp", cfg.Server.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadAliases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "absent keeps default",
			content: "data:\n  path: records.json\n",
			want:    map[string]string{"university": "institution"},
		},
		{
			name:    "mapping replaces default",
			content: "data:\n  aliases:\n    school: institution\n",
			want:    map[string]string{"school": "institution"},
		},
		{
			name:    "empty mapping disables renaming",
			content: "data:\n  aliases: {}\n",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.Data.Aliases == nil {
				t.Fatal("data.aliases is nil")
			}
			if !reflect.DeepEqual(cfg.Data.Aliases, tt.want) {
				t.Errorf("data.aliases = %v, want %v", cfg.Data.Aliases, tt.want)
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.Server.Transport != TransportStdio {
		t.Error("invalid file should return defaults")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Defaults()
	cfg.Data.Path = "/srv/reviews.json"
	cfg.Server.Transport = TransportHTTP

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Data.Path != "/srv/reviews.json" {
		t.Errorf("data.path = %q", loaded.Data.Path)
	}
	if loaded.Server.Transport != TransportHTTP {
		t.Errorf("server.transport = %q", loaded.Server.Transport)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"empty data path":   func(c *Config) { c.Data.Path = "" },
		"unknown transport": func(c *Config) { c.Server.Transport = "grpc" },
		"http without addr": func(c *Config) { c.Server.Transport = TransportHTTP; c.Server.Addr = "" },
		"relative mcp path": func(c *Config) { c.Server.Transport = TransportHTTP; c.Server.Path = "mcp" },
		"same paths": func(c *Config) {
			c.Server.Transport = TransportHTTP
			c.Metrics.Path = c.Server.Path
		},
		"bad level":  func(c *Config) { c.Log.Level = "loud" },
		"bad format": func(c *Config) { c.Log.Format = "xml" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
