package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"github.com/jonwraymond/supervisorlookup/config"
	"github.com/jonwraymond/supervisorlookup/metrics"
	"github.com/jonwraymond/supervisorlookup/query"
	"github.com/jonwraymond/supervisorlookup/server"
)

func (a *app) serveCommand(c *cli.Context) error {
	cfg := a.cfg
	if c.IsSet("transport") {
		cfg.Server.Transport = c.String("transport")
	}
	if c.IsSet("addr") {
		cfg.Server.Addr = c.String("addr")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []query.Option
	reg := prometheus.NewRegistry()
	metricsOn := cfg.Server.Transport == config.TransportHTTP && cfg.Metrics.Enabled
	if metricsOn {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, query.WithObserver(metrics.New(reg)))
	}

	engine, err := a.loadEngine(c, opts...)
	if err != nil {
		return err
	}

	srv, err := server.New(engine, server.Config{
		ServerInfo: server.ServerInfo{
			Name:    cfg.Server.Name,
			Version: cfg.Server.Version,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if cfg.Server.Transport == config.TransportStdio {
		return server.ServeStdio(ctx, srv)
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Server.Path, server.ServeHTTP(srv))
	if metricsOn {
		mux.Handle(cfg.Metrics.Path, metrics.Handler(reg))
	}
	return serveHTTP(ctx, cfg.Server.Addr, mux)
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving over http", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
