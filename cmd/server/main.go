package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/patrickwarner/adweave/internal/api"
	"github.com/patrickwarner/adweave/internal/config"
	"github.com/patrickwarner/adweave/internal/middleware"
	"github.com/patrickwarner/adweave/internal/models"
	"github.com/patrickwarner/adweave/internal/observability"
)

func main() {
	cfg := config.Load()

	logger, err := observability.InitLogger(cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to sync logger: %v\n", err)
		}
	}()

	if err := run(logger, cfg); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(ctx, logger, cfg.ServiceName, cfg.TempoEndpoint, cfg.TracingSampleRate)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer shutdown()
	}

	store := models.NewInMemoryAdConfigStore()
	if cfg.AdConfigFile != "" {
		if err := store.ReloadFile(cfg.AdConfigFile); err != nil {
			return fmt.Errorf("load ad configs: %w", err)
		}
		logger.Info("ad configs loaded",
			zap.String("file", cfg.AdConfigFile),
			zap.Int("count", store.Len()))
	}

	metricsRegistry := observability.NewPrometheusRegistry()
	srvDeps := api.NewServer(logger, store, metricsRegistry, cfg)

	r := mux.NewRouter()
	r.HandleFunc("/enhance", srvDeps.EnhanceHandler).Methods("POST")
	r.HandleFunc("/analyze", srvDeps.AnalyzeHandler).Methods("POST")
	r.HandleFunc("/preview", srvDeps.PreviewHandler).Methods("POST")
	r.HandleFunc("/reload", srvDeps.ReloadHandler).Methods("POST")
	r.HandleFunc("/health", srvDeps.HealthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	r.Use(middleware.WithRequestContext(logger))

	var handler http.Handler = r
	if cfg.TracingEnabled {
		handler = otelhttp.NewHandler(r, cfg.ServiceName)
	}

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("adweave server running", zap.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
