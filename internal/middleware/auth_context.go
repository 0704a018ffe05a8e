package middleware

import (
	"net/http"
	"strings"

	"pet-registry/internal/platform/routing"
	"pet-registry/internal/ports/auth"
)

// RequireAccess corta con 401 antes de tocar el store si no viene un access
// token válido.
func RequireAccess(verifier auth.AuthVerifier) routing.Middleware {
	return func(next routing.HandlerFunc) routing.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			token := BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				routing.WriteMessage(w, http.StatusUnauthorized, "Authorization header missing.")
				return nil
			}

			if _, err := verifier.Verify(r.Context(), token, auth.TokenAccess); err != nil {
				routing.WriteMessage(w, http.StatusUnauthorized, "Invalid or expired token.")
				return nil
			}
			return next(w, r)
		}
	}
}

// BearerToken extrae el token de "Bearer <token>"; el esquema no distingue mayúsculas.
func BearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
