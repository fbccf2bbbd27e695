// Package main implements the rdfstore daemon: a SPARQL triplestore client
// that exposes the mutation API over NATS and serves Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nats-io/nats.go"

	"github.com/c360/rdfstore"
	"github.com/c360/rdfstore/bridge"
	"github.com/c360/rdfstore/config"
	"github.com/c360/rdfstore/metric"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "rdfstore"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting rdfstore daemon",
		"version", Version,
		"config_path", cliCfg.ConfigPath)

	cfg, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	// Metrics
	var metrics *metric.Metrics
	var metricsServer *metric.Server
	if cfg.Metrics.Enabled {
		metrics = metric.NewMetrics()
		registry := metric.NewRegistry()
		if err := registry.RegisterMetrics(metrics); err != nil {
			return err
		}
		metricsServer = metric.NewServer(registry, cfg.Metrics.Port, cfg.Metrics.Path)
		if err := metricsServer.Start(); err != nil {
			return err
		}
		slog.Info("Metrics server started", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
	}

	// Facade
	opts := []rdfstore.Option{}
	if metrics != nil {
		opts = append(opts, rdfstore.WithMetrics(metrics))
	}
	svc, err := rdfstore.New(cfg, opts...)
	if err != nil {
		return err
	}

	// NATS bridge
	var nc *nats.Conn
	var b *bridge.Bridge
	if cfg.NATS.Enabled {
		nc, err = nats.Connect(cfg.NATS.URL,
			nats.Name(appName),
			nats.MaxReconnects(-1),
		)
		if err != nil {
			return fmt.Errorf("connect to NATS at %s: %w", cfg.NATS.URL, err)
		}
		defer nc.Close()

		bridgeOpts := []bridge.Option{bridge.WithLogger(logger)}
		if metrics != nil {
			bridgeOpts = append(bridgeOpts, bridge.WithMetrics(metrics))
		}
		b, err = bridge.New(svc, nc, cfg.NATS.SubjectPrefix, bridgeOpts...)
		if err != nil {
			return err
		}
		if err := b.Start(); err != nil {
			return err
		}
		slog.Info("Mutation bridge started", "prefix", cfg.NATS.SubjectPrefix)
	}

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cliCfg.ShutdownTimeout)
	defer cancel()

	if b != nil {
		b.Stop()
	}
	if nc != nil {
		if err := nc.Drain(); err != nil {
			slog.Warn("NATS drain failed", "error", err)
		}
	}
	if metricsServer != nil {
		if err := metricsServer.Stop(shutdownCtx); err != nil {
			slog.Warn("Metrics server shutdown failed", "error", err)
		}
	}

	slog.Info("Shutdown complete")
	return nil
}
