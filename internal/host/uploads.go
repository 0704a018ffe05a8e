package host

import (
	"errors"
	"net/http"

	"pet-registry/internal/platform/routing"
	"pet-registry/internal/ports/blob"

	"github.com/go-chi/chi/v5"
)

// uploadsHandler sirve /__uploads/* desde el Opener del backend activo.
// Con backend remoto no hay Opener: las URLs de las fotos ya son públicas.
func uploadsHandler(opener blob.Opener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if opener == nil {
			routing.WriteMessage(w, http.StatusNotFound, "Not Found")
			return
		}

		p, err := opener.Open(r.Context(), chi.URLParam(r, "*"))
		if errors.Is(err, blob.ErrNotFound) {
			routing.WriteMessage(w, http.StatusNotFound, "Not Found")
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		ct := p.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(p.Data)
	}
}
