package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/joho/godotenv"
	"github.com/vadimbarashkov/shortlink/internal/app"
	"github.com/vadimbarashkov/shortlink/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Error("application stopped with error", "err", err)
		os.Exit(1)
	}

	logger.Info("application stopped")
}

func newLogger(env string) *httplog.Logger {
	opts := httplog.Options{
		LogLevel:        slog.LevelDebug,
		Concise:         true,
		RequestHeaders:  true,
		QuietDownRoutes: []string{"/api/ping"},
		QuietDownPeriod: 10 * time.Second,
	}

	switch env {
	case config.EnvStage:
		opts.LogLevel = slog.LevelInfo
		opts.JSON = true
		opts.Concise = false
	case config.EnvProd:
		opts.LogLevel = slog.LevelInfo
		opts.JSON = true
		opts.Concise = false
		opts.RequestHeaders = false
	}

	return httplog.NewLogger("shortlink", opts)
}
