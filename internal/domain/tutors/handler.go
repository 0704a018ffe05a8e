package tutors

import (
	"errors"
	"net/http"

	"pet-registry/internal/domain/store"
	"pet-registry/internal/platform/routing"
)

const (
	msgRequired    = "Nome e telefone obrigatorios."
	msgNotFound    = "Tutor nao encontrado."
	msgInvalidJSON = "JSON invalido."
)

func RegisterRoutes(t *routing.Table, svc *Service) {
	t.Get("/v1/tutores", listTutorsHandler(svc))
	t.Post("/v1/tutores", createTutorHandler(svc))
	t.Get("/v1/tutores/{id}", getTutorHandler(svc))
	t.Put("/v1/tutores/{id}", updateTutorHandler(svc))
	t.Delete("/v1/tutores/{id}", deleteTutorHandler(svc))
}

type tutorRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
	Cpf      *int64 `json:"cpf"`
}

func (r tutorRequest) input() Input {
	return Input{Name: r.Nome, Email: r.Email, Phone: r.Telefone, Address: r.Endereco, TaxID: r.Cpf}
}

// listTutorsHandler godoc
// @Summary Listar tutores
// @Tags tutores
// @Produce json
// @Security BearerAuth
// @Param nome query string false "Filtro por nombre"
// @Param page query int false "Página (desde 0)" default(0)
// @Param size query int false "Tamaño de página" default(10)
// @Success 200 {object} store.Page[store.TutorView]
// @Failure 401 {object} routing.Message
// @Router /v1/tutores [get]
func listTutorsHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		nome, _ := routing.Param(r, "nome")
		page := routing.Int(r, "page", 0)
		size := routing.Int(r, "size", store.DefaultPageSize)

		routing.WriteJSON(w, http.StatusOK, svc.List(r.Context(), nome, page, size))
		return nil
	}
}

// createTutorHandler godoc
// @Summary Crear tutor
// @Tags tutores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body tutorRequest true "nome y telefone obligatorios"
// @Success 201 {object} store.TutorView
// @Failure 400 {object} routing.Message
// @Failure 401 {object} routing.Message
// @Router /v1/tutores [post]
func createTutorHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req tutorRequest
		if err := routing.ReadJSON(r, &req); err != nil {
			routing.WriteMessage(w, http.StatusBadRequest, msgInvalidJSON)
			return nil
		}

		t, err := svc.Create(r.Context(), req.input())
		if err != nil {
			return writeError(w, err)
		}
		routing.WriteJSON(w, http.StatusCreated, t)
		return nil
	}
}

// getTutorHandler godoc
// @Summary Obtener tutor con sus pets
// @Tags tutores
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del tutor"
// @Success 200 {object} Detail
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/tutores/{id} [get]
func getTutorHandler(svc *Service) routing.HandlerFunc {
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

// updateTutorHandler godoc
// @Summary Actualizar tutor
// @Description Reemplaza todos los campos; los omitidos quedan vacíos.
// @Tags tutores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del tutor"
// @Param payload body tutorRequest true "Datos del tutor"
// @Success 200 {object} store.TutorView
// @Failure 400 {object} routing.Message
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/tutores/{id} [put]
func updateTutorHandler(svc *Service) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req tutorRequest
		if err := routing.ReadJSON(r, &req); err != nil {
			routing.WriteMessage(w, http.StatusBadRequest, msgInvalidJSON)
			return nil
		}
		in := req.input()
		if !in.valid() {
			routing.WriteMessage(w, http.StatusBadRequest, msgRequired)
			return nil
		}

		id, ok := routing.ID(r, "id")
		if !ok {
			routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
			return nil
		}

		t, err := svc.Update(r.Context(), id, in)
		if err != nil {
			return writeError(w, err)
		}
		routing.WriteJSON(w, http.StatusOK, t)
		return nil
	}
}

// deleteTutorHandler godoc
// @Summary Borrar tutor
// @Description Borra el tutor y lo desvincula de todos sus pets.
// @Tags tutores
// @Security BearerAuth
// @Param id path int true "ID del tutor"
// @Success 204
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/tutores/{id} [delete]
func deleteTutorHandler(svc *Service) routing.HandlerFunc {
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

func writeError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput):
		routing.WriteMessage(w, http.StatusBadRequest, msgRequired)
	case errors.Is(err, ErrNotFound):
		routing.WriteMessage(w, http.StatusNotFound, msgNotFound)
	default:
		return err
	}
	return nil
}
