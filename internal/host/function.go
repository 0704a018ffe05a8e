package host

import (
	"net/http"
	"strings"

	"pet-registry/internal/platform/routing"
	"pet-registry/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type FunctionOptions struct {
	// Prefix bajo el que el proveedor expone las funciones (p.ej. /api).
	Prefix string
	Opener blob.Opener
}

// NewFunctionHandler emula el despliegue función-por-ruta: cada patrón de la
// tabla es una función independiente que acepta solo sus métodos (405 con
// Allow para el resto). Lo que no cae en ningún patrón lo atiende la función
// catch-all, que es el dispatcher completo.
func NewFunctionHandler(d *routing.Dispatcher, opts FunctionOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)

	prefix := strings.TrimRight(opts.Prefix, "/")
	for _, pattern := range d.Table().Patterns() {
		fn := d.ServePattern(pattern)
		r.Handle(pattern, fn)
		if prefix != "" {
			r.Handle(prefix+pattern, fn)
		}
	}
	if opts.Opener != nil {
		r.Get(blob.LocalURLPrefix+"*", uploadsHandler(opts.Opener))
	}

	r.NotFound(d.ServeHTTP)
	r.MethodNotAllowed(d.ServeHTTP)

	return r
}
