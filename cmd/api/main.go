package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	domaincfg "wordhoard-backend/domain/config"
	"wordhoard-backend/infrastructure/config"
	"wordhoard-backend/infrastructure/di"
	"wordhoard-backend/infrastructure/seed"
	"wordhoard-backend/interfaces/http/rest"
	"wordhoard-backend/pkg/observability"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	logger := container.Logger

	if cfg.EnableTracing {
		tp, err := observability.InitTracing(ctx, observability.TracingConfig{
			ServiceName: "wordhoard-backend",
			Environment: cfg.Environment,
			Endpoint:    cfg.TracingEndpoint,
		})
		if err != nil {
			logger.Warn("tracing disabled", zap.Error(err))
		} else {
			defer tp.Shutdown(context.Background())
		}
	}

	if cfg.DynamicConfigPath != "" {
		watcher, err := config.NewConfigWatcher(cfg.DynamicConfigPath, logger)
		if err != nil {
			logger.Warn("dynamic configuration disabled", zap.Error(err))
		} else {
			watcher.OnChange(func(dynamic *config.DynamicConfig) {
				duration := time.Duration(dynamic.Epoch.DurationSeconds) * time.Second
				if err := container.EpochClock.SetDuration(duration); err != nil {
					logger.Error("failed to apply epoch duration", zap.Error(err))
				}
				err := domaincfg.ApplyLimits(
					dynamic.Limits.MaxFeeRateBps,
					dynamic.Limits.MaxBookmarksPerAccount,
				)
				if err != nil {
					logger.Error("failed to apply limit overrides", zap.Error(err))
				}
			})
			watcher.Start()
			defer watcher.Stop()
		}
	}

	if cfg.SeedPath != "" {
		fixture, err := seed.Load(cfg.SeedPath)
		if err != nil {
			logger.Fatal("failed to load seed fixture", zap.Error(err))
		}
		if err := seed.Apply(ctx, fixture, container); err != nil {
			logger.Fatal("failed to apply seed fixture", zap.Error(err))
		}
	}

	router := rest.NewRouter(container)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.String("persistence", cfg.PersistenceMode),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}
