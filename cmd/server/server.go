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

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	mapshandler "github.com/emberfall/campaign-api/internal/handlers/maps"
	"github.com/emberfall/campaign-api/internal/orchestrators/world"
	"github.com/emberfall/campaign-api/internal/pkg/idgen"
	redisclient "github.com/emberfall/campaign-api/internal/redis"
	mapsrepo "github.com/emberfall/campaign-api/internal/repositories/maps"
)

type serverConfig struct {
	HTTPPort  int    `env:"HTTP_PORT" envDefault:"8080"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the campaign API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides HTTP_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}

	setupLogging(cfg.LogLevel)

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			slog.Warn("failed to close redis client", "error", closeErr)
		}
	}()

	mapRepo, err := mapsrepo.NewRedis(&mapsrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create map repository: %w", err)
	}

	worldService, err := world.NewOrchestrator(&world.Config{
		MapRepo:     mapRepo,
		IDGenerator: idgen.NewPrefixed("map"),
	})
	if err != nil {
		return fmt.Errorf("failed to create world orchestrator: %w", err)
	}

	handler, err := mapshandler.NewHandler(&mapshandler.HandlerConfig{
		WorldService: worldService,
	})
	if err != nil {
		return fmt.Errorf("failed to create maps handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort, "redis_addr", cfg.RedisAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
