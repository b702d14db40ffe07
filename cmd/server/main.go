package main

import (
	"context"
	"delivery-eda-service/internal/adapters/charts"
	"delivery-eda-service/internal/adapters/loader"
	"delivery-eda-service/internal/adapters/session"
	"delivery-eda-service/internal/api"
	"delivery-eda-service/internal/config"
	"delivery-eda-service/internal/platform/logger"
	"delivery-eda-service/internal/services"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (file loader, memory sessions, SVG charts) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	store := session.NewMemoryStore()
	sweeper, err := session.NewSweeper(store, cfg.SessionTTL, cfg.SessionSweep)
	if err != nil {
		slog.Error("invalid session sweep schedule", "err", err)
		os.Exit(1)
	}
	sweeper.Start()
	defer sweeper.Stop()

	router := api.NewRouter(api.Deps{
		Preparer:       services.NewDatasetPreparer(loader.NewFileLoader()),
		Store:          store,
		Renderer:       charts.NewSVGRenderer(cfg.HistogramBins),
		MaxUploadBytes: cfg.MaxUploadBytes,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// Read timeout leaves room for uploads near the size limit.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "session_ttl", cfg.SessionTTL.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
	slog.Info("server stopped")
}
