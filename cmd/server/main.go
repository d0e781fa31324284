package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/docsieve/docsieve/api"
	"github.com/docsieve/docsieve/internal/config"
	"github.com/docsieve/docsieve/pipeline"
	"github.com/docsieve/docsieve/rank"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	refine := rank.DefaultRefineConfig()
	refine.MaxChars = cfg.RefineMaxChars

	runner := pipeline.NewRunnerWithConfig(pipeline.Config{
		Workers:   cfg.WorkerCount,
		MaxRanked: cfg.MaxRanked,
		Refine:    refine,
		Logger:    log,
	})

	srv := api.NewServer(runner, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docsieve", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
