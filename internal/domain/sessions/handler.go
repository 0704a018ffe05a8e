package sessions

import (
	"errors"
	"net/http"

	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/routing"
	"pet-registry/internal/ports/auth"
)

// RegisterRoutes va en la tabla sin RequireAccess: login y refresh son públicos.
func RegisterRoutes(t *routing.Table, svc *Service) {
	t.Post("/autenticacao/login", loginHandler(svc))
	t.Put("/autenticacao/refresh", refreshHandler(svc))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginHandler godoc
// @Summary Login
// @Tags autenticacao
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} auth.TokenPair
// @Failure 401 {object} routing.Message
// @Router /autenticacao/login [post]
func loginHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req loginRequest
		if err := routing.ReadJSON(r, &req); err != nil {
			routing.WriteMessage(w, http.StatusBadRequest, "JSON invalido.")
			return nil
		}

		pair, err := svc.Login(r.Context(), req.Username, req.Password)
		if errors.Is(err, ErrInvalidCredentials) {
			routing.WriteMessage(w, http.StatusUnauthorized, "Credenciais invalidas.")
			return nil
		}
		if err != nil {
			return err
		}
		routing.WriteJSON(w, http.StatusOK, pair)
		return nil
	}
}

// refreshHandler godoc
// @Summary Rotar tokens
// @Description Recibe el refresh token como Bearer y devuelve un par nuevo.
// @Tags autenticacao
// @Produce json
// @Param Authorization header string true "Bearer <refresh_token>"
// @Success 200 {object} auth.TokenPair
// @Failure 401 {object} routing.Message
// @Router /autenticacao/refresh [put]
func refreshHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		pair, err := svc.Refresh(r.Context(), middleware.BearerToken(r.Header.Get("Authorization")))
		switch {
		case err == nil:
			routing.WriteJSON(w, http.StatusOK, pair)
		case errors.Is(err, ErrTokenMissing):
			routing.WriteMessage(w, http.StatusUnauthorized, "Token ausente.")
		case errors.Is(err, auth.ErrInvalidToken):
			routing.WriteMessage(w, http.StatusUnauthorized, "Token invalido ou expirado.")
		default:
			return err
		}
		return nil
	}
}
