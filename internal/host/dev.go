// Package host adapta el dispatcher compartido a los dos entornos de ejecución:
// el dev server (un proceso, un mux) y el host de funciones (una función por ruta).
package host

import (
	"net/http"

	"pet-registry/internal/platform/metrics"
	"pet-registry/internal/platform/routing"
	"pet-registry/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type DevOptions struct {
	Opener  blob.Opener // nil con backend remoto
	Metrics *metrics.Metrics
}

// NewDevHandler monta /health, /metrics y /__uploads/*; todo lo demás
// (con o sin prefijo) va al dispatcher.
func NewDevHandler(d *routing.Dispatcher, opts DevOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	r.Get(blob.LocalURLPrefix+"*", uploadsHandler(opts.Opener))

	r.NotFound(d.ServeHTTP)
	r.MethodNotAllowed(d.ServeHTTP)

	return r
}
