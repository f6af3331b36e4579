package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/greenlens/backend/config"
	httpDelivery "github.com/greenlens/backend/internal/delivery/http"
	"github.com/greenlens/backend/internal/infrastructure/cache"
	"github.com/greenlens/backend/internal/infrastructure/catalog"
	"github.com/greenlens/backend/internal/infrastructure/metrics"
	"github.com/greenlens/backend/internal/usecase"
	"github.com/greenlens/backend/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Environment,
		ServiceName: "greenlens-backend",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	log.Info("Starting GreenLens backend",
		zap.String("version", httpDelivery.Version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer func() { _ = memoryCache.Close() }()

	products, err := catalog.NewRepository()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("Catalog loaded", zap.Int("products", products.Len()))

	// Initialize usecase layer
	service := usecase.NewSustainabilityService(memoryCache, products, log, usecase.SustainabilityServiceConfig{
		CarbonDelay:    cfg.Analysis.CarbonDelay,
		ESGDelay:       cfg.Analysis.ESGDelay,
		PackagingDelay: cfg.Analysis.PackagingDelay,
		ProductsDelay:  cfg.Analysis.ProductsDelay,
		SessionTTL:     cfg.Session.TTL,
	})

	opts := []httpDelivery.RouterOption{httpDelivery.WithLogger(log)}
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := metrics.New(cfg.Metrics.Prefix, registry)
		service.Runner().SetObserver(m)
		opts = append(opts, httpDelivery.WithMetrics(m, registry))
		log.Info("Prometheus metrics initialized", zap.String("metrics_prefix", cfg.Metrics.Prefix))
	}

	handler := httpDelivery.NewHandler(service)
	router := httpDelivery.SetupRouter(cfg, handler, opts...)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
