package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/regsheet/regsheet/internal/api"
	"github.com/regsheet/regsheet/internal/api/handler"
	"github.com/regsheet/regsheet/internal/config"
	"github.com/regsheet/regsheet/internal/registration"
	"github.com/regsheet/regsheet/internal/sheetcfg"
	"github.com/regsheet/regsheet/internal/sheets"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := parseLogLevel(cfg.LogLevel)
	setupLogger(level)

	ctx := context.Background()

	sheetClient := sheets.NewClient(ctx, cfg.GoogleAPIKey, cfg.GoogleCredentialsFile)
	upstream := sheetClient.Status()
	if upstream.ReadErr != nil {
		slog.Warn("sheet read capability unavailable; data and check endpoints will fail", "error", upstream.ReadErr)
	}
	if upstream.WriteErr != nil {
		slog.Warn("sheet write capability unavailable; registration will fail", "error", upstream.WriteErr)
	}

	var cfgStore sheetcfg.Repository
	var cfgPinger handler.Pinger
	if cfg.DatabaseURL != "" {
		pg, err := sheetcfg.NewPostgresRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to config store", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		cfgStore, cfgPinger = pg, pg
		slog.Info("sheet configuration persisted to postgres")
	} else {
		cfgStore = sheetcfg.NewMemoryRepository()
		slog.Info("sheet configuration kept in memory; set DATABASE_URL to persist it")
	}

	router := api.NewRouter(api.RouterDeps{
		Sheets:    sheetClient,
		Status:    sheetClient,
		Registrar: registration.NewService(sheetClient),
		CfgStore:  cfgStore,
		CfgPinger: cfgPinger,
		Defaults: handler.Defaults{
			SpreadsheetID: cfg.DefaultSpreadsheetID,
			Range:         cfg.DefaultRange,
			AppendRange:   cfg.AppendRange,
		},
		Version:        cfg.Version,
		LogLevel:       level,
		AllowedOrigins: cfg.AllowedOrigins(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting registration server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupLogger(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
