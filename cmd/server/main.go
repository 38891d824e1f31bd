package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"currency-converter-api/internal/adapter/cache"
	httpRouter "currency-converter-api/internal/adapter/http"
	"currency-converter-api/internal/adapter/repository"
	"currency-converter-api/internal/config"
	"currency-converter-api/internal/domain/ports"
	"currency-converter-api/internal/metrics"
	"currency-converter-api/internal/service"
	"currency-converter-api/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))
	log.Info("Starting currency converter API")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appMetrics := metrics.NewMetrics()

	var snapshotCache ports.SnapshotCache
	if strings.EqualFold(cfg.Redis.Addr, "memory") {
		log.Info("Using in-memory snapshot cache")
		snapshotCache = cache.NewMemoryCache(log)
	} else {
		log.Info("Using redis snapshot cache", "addr", cfg.Redis.Addr)
		snapshotCache = cache.NewRedisCache(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.KeyPrefix,
			log,
		)
	}

	rateSource := repository.NewECBSource(cfg.ECB.URL, cfg.ECB.Timeout, log)
	store := service.NewSnapshotStore()
	exchangeService := service.NewExchangeService(store, log)
	healthReporter := service.NewHealthReporter(store, snapshotCache)

	coordinator := service.NewRefreshCoordinator(
		rateSource,
		snapshotCache,
		store,
		cfg.Refresh.Timeout,
		log,
		appMetrics,
	)

	// One immediate attempt at startup; failure is non-fatal, the next
	// scheduled trigger is the retry.
	go func() {
		if err := coordinator.RefreshNow(context.Background()); err != nil {
			log.Warn("Initial rate refresh failed, will retry on schedule", "error", err)
		}
	}()

	if err := coordinator.Start(cfg.Refresh.Schedule); err != nil {
		log.Error("Failed to start refresh scheduler", "error", err)
		os.Exit(1)
	}

	handler := httpRouter.NewHandler(exchangeService, healthReporter, log, appMetrics)
	router := httpRouter.NewRouter(handler, log, appMetrics)
	routes := router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      routes,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	coordinator.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
