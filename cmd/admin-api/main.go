package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/kalpavruksha/eduhub-admin/api/swagger"
	"github.com/kalpavruksha/eduhub-admin/internal/repository"
	"github.com/kalpavruksha/eduhub-admin/internal/service"
	"github.com/kalpavruksha/eduhub-admin/pkg/cache"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
	"github.com/kalpavruksha/eduhub-admin/pkg/config"
	"github.com/kalpavruksha/eduhub-admin/pkg/jobs"
	"github.com/kalpavruksha/eduhub-admin/pkg/logger"
	"github.com/kalpavruksha/eduhub-admin/pkg/storage"
)

// @title Kalpavruksha EduHub Admin API
// @version 1.0.0
// @description Manage the study resources and live classes shown on the Kalpavruksha EduHub site.
// @BasePath /api
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.Real{}

	stores, err := repository.NewStores(ctx, cfg, clk)
	if err != nil {
		return err
	}
	defer closeWithTimeout(logr, "store", stores.Close)

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	cacheSvc, closeCache, err := newCache(ctx, cfg, metrics, logr)
	if err != nil {
		return err
	}
	defer closeWithTimeout(logr, "cache", closeCache)

	if cacheSvc.Enabled() {
		invalidations := jobs.NewQueue("cache-invalidation", cacheSvc.ProcessInvalidation, jobs.QueueConfig{
			Workers:    1,
			MaxRetries: 5,
			RetryDelay: 2 * time.Second,
			Logger:     logr,
		})
		invalidations.Start(ctx)
		defer invalidations.Stop()
		cacheSvc.RetryInvalidations(invalidations)
	}

	sink, err := newUploadSink(ctx, cfg)
	if err != nil {
		return err
	}

	router, err := newRouter(cfg, logr, components{
		stores:  stores,
		cache:   cacheSvc,
		metrics: metrics,
		sink:    sink,
		clock:   clk,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("store", stores.Driver),
			zap.String("upload", cfg.Upload.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache returns the list cache for the configured driver and a func that
// releases it. A disabled cache is a valid, inert service.
func newCache(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) (*service.CacheService, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Cache.Enabled {
		return service.NewCacheService(nil, metrics, cfg.Cache.TTL, logr, false), noop, nil
	}

	switch cfg.Cache.Driver {
	case config.CacheRedis:
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewCacheRepository(client, logr)
		closeFn := func(context.Context) error { return repo.Close() }
		return service.NewCacheService(repo, metrics, cfg.Cache.TTL, logr, true), closeFn, nil
	case config.CacheMemory, "":
		repo := repository.NewMemoryCacheRepository(cache.NewMemory(cfg.Cache.TTL))
		return service.NewCacheService(repo, metrics, cfg.Cache.TTL, logr, true), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver: %s", cfg.Cache.Driver)
	}
}

func newUploadSink(ctx context.Context, cfg *config.Config) (service.UploadSink, error) {
	switch cfg.Upload.Driver {
	case config.UploadLocal, "":
		return storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPath), nil
	case config.UploadMinIO:
		sink, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("unknown upload driver: %s", cfg.Upload.Driver)
	}
}

func closeWithTimeout(logr *zap.Logger, name string, closeFn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := closeFn(ctx); err != nil {
		logr.Warn("close failed", zap.String("component", name), zap.Error(err))
	}
}
