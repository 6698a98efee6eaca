package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jonwraymond/supervisorlookup/config"
	"github.com/jonwraymond/supervisorlookup/query"
	"github.com/jonwraymond/supervisorlookup/record"
)

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("data") {
		cfg.Data.Path = c.String("data")
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(cfg.Log.Format, level))

	a.cfg = cfg
	return nil
}

// newLogger writes to stderr; stdout belongs to the stdio transport and to
// command output.
func newLogger(format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// dataPath returns the innermost --data value on c's lineage, falling back to
// the config (which already holds a root-level --data).
func (a *app) dataPath(c *cli.Context) string {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet("data") {
			return ctx.String("data")
		}
	}
	return a.cfg.Data.Path
}

func (a *app) loadEngine(c *cli.Context, opts ...query.Option) (*query.Engine, error) {
	store, err := record.LoadFile(a.dataPath(c), record.LoadOptions{
		Aliases: a.cfg.Data.Aliases,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return query.New(store, opts...), nil
}
