package pets

import (
	"errors"
	"net/http"

	"pet-registry/internal/domain/store"
	"pet-registry/internal/platform/routing"
)

const (
	msgNameRequired = "Nome obrigatorio."
	msgNotFound     = "Pet nao encontrado."
	msgInvalidJSON  = "JSON invalido."
)

// RegisterRoutes espera una tabla ya protegida por RequireAccess.
func RegisterRoutes(t *routing.Table, svc *Service) {
	t.Get("/v1/pets", listPetsHandler(svc))
	t.Post("/v1/pets", createPetHandler(svc))
	t.Get("/v1/pets/{id}", getPetHandler(svc))
	t.Put("/v1/pets/{id}", updatePetHandler(svc))
	t.Delete("/v1/pets/{id}", deletePetHandler(svc))
}

// petRequest es el cuerpo de alta y actualización de un pet.
type petRequest struct {
	Nome  string `json:"nome"`
	Raca  string `json:"raca"`
	Idade *int   `json:"idade"`
}

func (r petRequest) input() Input {
	return Input{Name: r.Nome, Breed: r.Raca, Age: r.Idade}
}

// listPetsHandler godoc
// @Summary Listar pets
// @Description Filtros por substring sin distinguir mayúsculas. size <= 0 devuelve todo en una página.
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param nome query string false "Filtro por nombre"
// @Param raca query string false "Filtro por raza"
// @Param page query int false "Página (desde 0)" default(0)
// @Param size query int false "Tamaño de página" default(10)
// @Success 200 {object} store.Page[store.PetView]
// @Failure 401 {object} routing.Message
// @Router /v1/pets [get]
func listPetsHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		nome, _ := routing.Param(r, "nome")
		raca, _ := routing.Param(r, "raca")
		page := routing.Int(r, "page", 0)
		size := routing.Int(r, "size", store.DefaultPageSize)

		routing.WriteJSON(w, http.StatusOK, svc.List(r.Context(), Filter{Name: nome, Breed: raca}, page, size))
		return nil
	}
}

// createPetHandler godoc
// @Summary Crear pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body petRequest true "Datos del pet; nome es obligatorio"
// @Success 201 {object} store.PetView
// @Failure 400 {object} routing.Message
// @Failure 401 {object} routing.Message
// @Router /v1/pets [post]
func createPetHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req petRequest
		if err := routing.ReadJSON(r, &req); err != nil {
			routing.WriteMessage(w, http.StatusBadRequest, msgInvalidJSON)
			return nil
		}

		p, err := svc.Create(r.Context(), req.input())
		if err != nil {
			return writeError(w, err)
		}
		routing.WriteJSON(w, http.StatusCreated, p)
		return nil
	}
}

// getPetHandler godoc
// @Summary Obtener pet con sus tutores
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del pet"
// @Success 200 {object} Detail
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/pets/{id} [get]
func getPetHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, ok := routing.ID(r, "id")
		if !ok {
			routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
			return nil
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			return writeError(w, err)
		}
		routing.WriteJSON(w, http.StatusOK, d)
		return nil
	}
}

// updatePetHandler godoc
// @Summary Actualizar pet
// @Description Reemplaza nome, raca e idade; los campos omitidos quedan vacíos.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del pet"
// @Param payload body petRequest true "Datos del pet"
// @Success 200 {object} store.PetView
// @Failure 400 {object} routing.Message
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/pets/{id} [put]
func updatePetHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req petRequest
		if err := routing.ReadJSON(r, &req); err != nil {
			routing.WriteMessage(w, http.StatusBadRequest, msgInvalidJSON)
			return nil
		}
		if req.Nome == "" {
			routing.WriteMessage(w, http.StatusBadRequest, msgNameRequired)
			return nil
		}

		id, ok := routing.ID(r, "id")
		if !ok {
			routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
			return nil
		}

		p, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			return writeError(w, err)
		}
		routing.WriteJSON(w, http.StatusOK, p)
		return nil
	}
}

// deletePetHandler godoc
// @Summary Borrar pet
// @Description Borra el pet y lo desvincula de todos sus tutores.
// @Tags pets
// @Security BearerAuth
// @Param id path int true "ID del pet"
// @Success 204
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/pets/{id} [delete]
func deletePetHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, ok := routing.ID(r, "id")
		if !ok {
			routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
			return nil
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			return writeError(w, err)
		}
		routing.NoContent(w)
		return nil
	}
}

// writeError responde los errores esperados; el resto sube al dispatcher (500).
func writeError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput):
		routing.WriteMessage(w, http.StatusBadRequest, msgNameRequired)
	case errors.Is(err, ErrNotFound):
		routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
	default:
		return err
	}
	return nil
}
