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

	"vecare-backend/internal/adapter/ai"
	httpadapter "vecare-backend/internal/adapter/http"
	"vecare-backend/internal/adapter/pinata"
	"vecare-backend/internal/adapter/thor"
	"vecare-backend/internal/adapter/usecase"
	"vecare-backend/internal/config"
)

// main is the entry point of the vecare backend. It loads configuration,
// wires the AI verifier, the evidence store and the registry client into
// the campaign workflow, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A missing .env is fine; deployment platforms provide the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	verifier, err := ai.NewVerifier(cfg.OpenAI, logger)
	if err != nil {
		logger.Error("ai verifier init error", slog.Any("error", err))
		os.Exit(1)
	}

	store := pinata.NewStore(cfg.Pinata, logger)
	{
		// Surface bad credentials early without refusing to start; the
		// store reports itself unavailable again on first use.
		checkCtx, checkCancel := context.WithTimeout(ctx, 10*time.Second)
		if err = store.CheckAuth(checkCtx); err != nil {
			logger.Warn("content store authentication failed, uploads will fail", slog.Any("error", err))
		}
		checkCancel()
	}

	registry, err := thor.NewRegistry(thor.NewClient(cfg.Thor.NodeURL, logger), cfg.Thor, logger)
	if err != nil {
		logger.Error("registry client init error", slog.Any("error", err))
		os.Exit(1)
	}

	svc := usecase.NewCampaignUseCase(verifier, store, registry, cfg.Verification, logger)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
