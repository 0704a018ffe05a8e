package links

import (
	"errors"
	"net/http"

	"pet-registry/internal/platform/routing"
)

const msgNotFound = "Pet ou tutor nao encontrado."

func RegisterRoutes(t *routing.Table, svc *Service) {
	t.Post("/v1/tutores/{id}/pets/{petId}", linkHandler(svc))
	t.Delete("/v1/tutores/{id}/pets/{petId}", unlinkHandler(svc))
}

// linkHandler godoc
// @Summary Vincular pet a tutor
// @Tags tutores
// @Security BearerAuth
// @Param id path int true "ID del tutor"
// @Param petId path int true "ID del pet"
// @Success 201
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/tutores/{id}/pets/{petId} [post]
func linkHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		tutorID, petID, ok := pair(r)
		if !ok {
			routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
			return nil
		}

		if err := svc.Link(r.Context(), tutorID, petID); err != nil {
			return writeError(w, err)
		}
		w.WriteHeader(http.StatusCreated)
		return nil
	}
}

// unlinkHandler godoc
// @Summary Desvincular pet de tutor
// @Tags tutores
// @Security BearerAuth
// @Param id path int true "ID del tutor"
// @Param petId path int true "ID del pet"
// @Success 204
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/tutores/{id}/pets/{petId} [delete]
func unlinkHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		tutorID, petID, ok := pair(r)
		if !ok {
			routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
			return nil
		}

		if err := svc.Unlink(r.Context(), tutorID, petID); err != nil {
			return writeError(w, err)
		}
		routing.NoContent(w)
		return nil
	}
}

func pair(r *http.Request) (tutorID, petID int64, ok bool) {
	tutorID, ok = routing.ID(r, "id")
	if !ok {
		return 0, 0, false
	}
	petID, ok = routing.ID(r, "petId")
	return tutorID, petID, ok
}

func writeError(w http.ResponseWriter, err error) error {
	if errors.Is(err, ErrNotFound) {
		routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
		return nil
	}
	return err
}
