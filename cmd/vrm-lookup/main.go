package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vrm-lookup/internal/config"
	"vrm-lookup/internal/dvla"
	httphandler "vrm-lookup/internal/http"
	"vrm-lookup/internal/logger"
	"vrm-lookup/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	if !cfg.HasAPIKey() {
		appLogger.Warn().Msg("DVLA_API_KEY not set, lookups will report vehicles as not found")
	}

	// Shared outbound pool, one per process. Closed on every exit path.
	outbound := &http.Client{Timeout: cfg.DVLA.Timeout}
	defer outbound.CloseIdleConnections()

	dvlaClient := dvla.NewClient(outbound, cfg.DVLA.URL, cfg.DVLA.APIKey, appLogger)
	lookupService := service.NewLookupService(dvlaClient, appLogger)

	handler := httphandler.NewHandler(lookupService, appLogger)
	router := httphandler.NewRouter(handler, cfg.Environment, cfg.AllowedOrigins, appLogger)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting VRM lookup service")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error().Err(err).Msg("failed to start server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server exited")
}
