package router

import (
	"fmt"

	"pet-registry/internal/adapters/auth/jwtauth"
	"pet-registry/internal/adapters/storage"
	"pet-registry/internal/docs"
	"pet-registry/internal/domain/links"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/photos"
	"pet-registry/internal/domain/sessions"
	"pet-registry/internal/domain/store"
	"pet-registry/internal/domain/tutors"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/config"
	"pet-registry/internal/platform/metrics"
	"pet-registry/internal/platform/routing"
	"pet-registry/internal/ports/auth"

	"go.uber.org/zap"
)

// Tokens emite y verifica los JWT de la API.
type Tokens interface {
	auth.Issuer
	auth.AuthVerifier
}

type Options struct {
	// Prefix se quita antes de matchear; las rutas también responden sin él.
	Prefix string

	// Backends puede ser nil: usa memoria.
	Backends *storage.Backends

	// Tokens puede ser nil: se arma un jwtauth.Manager con Auth.
	Tokens Tokens
	Auth   config.Auth

	SerializeWrites      bool
	DeleteReplacedPhotos bool

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// NewRouter arma la tabla de rutas compartida y el dispatcher que la sirve.
// Los hosts (dev server y funciones) montan el dispatcher devuelto.
func NewRouter(opts Options) (*routing.Dispatcher, error) {
	backends := opts.Backends
	if backends == nil {
		backends = storage.Memory()
	}

	tokens := opts.Tokens
	if tokens == nil {
		m, err := jwtauth.New(jwtauth.Config{
			Secret:     opts.Auth.Secret,
			AccessTTL:  opts.Auth.AccessTTL,
			RefreshTTL: opts.Auth.RefreshTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("router: %w", err)
		}
		tokens = m
	}

	repo := store.NewRepository(backends.Snapshot, store.Options{
		Logger:          opts.Logger,
		Metrics:         opts.Metrics,
		SerializeWrites: opts.SerializeWrites,
	})

	// Services por módulo
	petsSvc := pets.NewService(repo)
	tutorsSvc := tutors.NewService(repo)
	linksSvc := links.NewService(repo)
	photosSvc := photos.NewService(repo, backends.Blobs, photos.Options{
		DeleteReplaced: opts.DeleteReplacedPhotos,
		Logger:         opts.Logger,
	})
	sessionsSvc := sessions.NewService(tokens, tokens, sessions.Credentials{
		Username: opts.Auth.Username,
		Password: opts.Auth.Password,
	})

	t := routing.NewTable()

	// Públicas
	docs.RegisterRoutes(t)
	sessions.RegisterRoutes(t, sessionsSvc)

	// Protegidas. Fotos y vínculos antes que los CRUD con el mismo prefijo.
	protected := t.With(middleware.RequireAccess(tokens))
	photos.RegisterRoutes(protected, photosSvc)
	links.RegisterRoutes(protected, linksSvc)
	pets.RegisterRoutes(protected, petsSvc)
	tutors.RegisterRoutes(protected, tutorsSvc)

	return routing.NewDispatcher(t, routing.DispatcherOptions{
		Prefix:  opts.Prefix,
		Logger:  opts.Logger,
		Metrics: opts.Metrics,
	}), nil
}
