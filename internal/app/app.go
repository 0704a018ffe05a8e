// Package app arma el proceso a partir de la configuración: logger, métricas,
// backends de storage y el dispatcher. Lo usan los dos binarios de cmd/.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-registry/internal/adapters/storage"
	"pet-registry/internal/docs"
	"pet-registry/internal/platform/config"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/metrics"
	"pet-registry/internal/platform/routing"
	"pet-registry/internal/router"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config     config.Config
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Backends   *storage.Backends
	Dispatcher *routing.Dispatcher
}

func New(cfg config.Config) (*App, error) {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	m := metrics.New()

	backends, err := storage.Open(cfg.Storage, m)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	log.Info("storage backend selected", zap.String("kind", string(backends.Kind)))

	docs.SwaggerInfo.BasePath = cfg.APIPrefix

	d, err := router.NewRouter(router.Options{
		Prefix:               cfg.APIPrefix,
		Backends:             backends,
		Auth:                 cfg.Auth,
		SerializeWrites:      cfg.Storage.SerializeWrites,
		DeleteReplacedPhotos: cfg.Storage.DeleteReplacedPhotos,
		Logger:               log,
		Metrics:              m,
	})
	if err != nil {
		_ = backends.Close()
		return nil, err
	}

	return &App{
		Config:     cfg,
		Logger:     log,
		Metrics:    m,
		Backends:   backends,
		Dispatcher: d,
	}, nil
}

func (a *App) Close() {
	if err := a.Backends.Close(); err != nil {
		a.Logger.Warn("close storage", zap.Error(err))
	}
	_ = a.Logger.Sync()
}

// Serve escucha en la dirección de la config hasta que ctx se cancela y
// después cierra el servidor ordenadamente.
func (a *App) Serve(ctx context.Context, h http.Handler) error {
	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("prefix", a.Config.APIPrefix))
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

	a.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
