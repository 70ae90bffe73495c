package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/geolens/internal/catalog"
	"github.com/kailas-cloud/geolens/internal/config"
	"github.com/kailas-cloud/geolens/internal/db"
	dbMemory "github.com/kailas-cloud/geolens/internal/db/memory"
	dbRedis "github.com/kailas-cloud/geolens/internal/db/redis"
	dbValkey "github.com/kailas-cloud/geolens/internal/db/valkey"
	logpkg "github.com/kailas-cloud/geolens/internal/logger"
	"github.com/kailas-cloud/geolens/internal/metrics"
	displayrepo "github.com/kailas-cloud/geolens/internal/repository/display"
	sessionrepo "github.com/kailas-cloud/geolens/internal/repository/session"
	"github.com/kailas-cloud/geolens/internal/transport/arcgis"
	chiTransport "github.com/kailas-cloud/geolens/internal/transport/chi"
	enrichmentuc "github.com/kailas-cloud/geolens/internal/usecase/enrichment"
	healthuc "github.com/kailas-cloud/geolens/internal/usecase/health"
	overlayuc "github.com/kailas-cloud/geolens/internal/usecase/overlay"
	sessionuc "github.com/kailas-cloud/geolens/internal/usecase/session"
	toolsuc "github.com/kailas-cloud/geolens/internal/usecase/tools"
	"github.com/kailas-cloud/geolens/internal/version"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting geolens API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("session_driver", cfg.Session.Driver),
	)

	metrics.RegisterBackendMetrics()
	metrics.RegisterOverlayMetrics()

	store, err := openStore(cfg.Session)
	if err != nil {
		logger.Fatal("Failed to create session store", zap.Error(err))
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Session.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Session store not ready", zap.Error(err))
	}
	logger.Info("Connected to session store")

	cat, err := catalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	backend := arcgis.NewClient(&arcgis.Config{
		GeocodeURL:     cfg.Backend.GeocodeURL,
		RouteURL:       cfg.Backend.RouteURL,
		ServiceAreaURL: cfg.Backend.ServiceAreaURL,
		EnrichURL:      cfg.Backend.EnrichURL,
		Timeout:        cfg.Backend.Timeout(),
		Logger:         logger,
	})

	// Composition root
	gateway := enrichmentuc.New(backend, cat.TapestrySegments())
	sessionSvc := sessionuc.New(sessionrepo.New(store, cfg.Session.KeyPrefix, cfg.Session.TTL()))
	board := displayrepo.New(store, cfg.Session.KeyPrefix, cfg.Session.TTL())
	toolsSvc := toolsuc.New(gateway, sessionSvc, board, cat)
	healthSvc := healthuc.New(store, backend)

	server := chiTransport.NewServer(cat, overlayuc.New(cat), gateway, sessionSvc, toolsSvc, healthSvc, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server, cfg.Auth.APIKeys),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// openStore picks the session store backend.
func openStore(cfg config.SessionConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return dbMemory.NewStore(), nil
	case config.DriverValkey:
		return dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
	case config.DriverRedis:
		return dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Driver)
	}
}
