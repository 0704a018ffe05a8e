package photos

import (
	"errors"
	"net/http"

	"pet-registry/internal/domain/store"
	"pet-registry/internal/platform/routing"
	"pet-registry/internal/platform/upload"
)

const (
	fileField = "foto"

	msgFileRequired  = "Arquivo obrigatorio."
	msgFileTooLarge  = "Arquivo muito grande."
	msgPhotoNotFound = "Foto nao encontrada."
)

var ownerNotFound = map[store.Kind]string{
	store.KindPet:   "Pet nao encontrado.",
	store.KindTutor: "Tutor nao encontrado.",
}

func RegisterRoutes(t *routing.Table, svc *Service) {
	t.Post("/v1/pets/{id}/fotos", uploadHandler(svc, store.KindPet))
	t.Delete("/v1/pets/{id}/fotos/{fotoId}", deleteHandler(svc, store.KindPet))
	t.Post("/v1/tutores/{id}/fotos", uploadHandler(svc, store.KindTutor))
	t.Delete("/v1/tutores/{id}/fotos/{fotoId}", deleteHandler(svc, store.KindTutor))
}

// uploadHandler godoc
// @Summary Subir foto
// @Description Reemplaza la foto actual del pet o tutor. Campo multipart `foto`.
// @Tags fotos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del dueño"
// @Param foto formData file true "Imagen"
// @Success 201 {object} store.Anexo
// @Failure 400 {object} routing.Message
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/pets/{id}/fotos [post]
// @Router /v1/tutores/{id}/fotos [post]
func uploadHandler(svc *Service, kind store.Kind) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, ok := routing.ID(r, "id")
		if !ok {
			routing.WriteMessage(w, http.StatusNotFound, ownerNotFound[kind])
			return nil
		}

		a, err := svc.Upload(r.Context(), kind, id, func() (*upload.File, error) {
			return upload.ReadFile(r, fileField, upload.DefaultMaxBytes)
		})
		switch {
		case err == nil:
			routing.WriteJSON(w, http.StatusCreated, a)
		case errors.Is(err, ErrOwnerNotFound):
			routing.WriteMessage(w, http.StatusNotFound, ownerNotFound[kind])
		case errors.Is(err, ErrFileRequired):
			routing.WriteMessage(w, http.StatusBadRequest, msgFileRequired)
		case errors.Is(err, upload.ErrTooLarge):
			routing.WriteMessage(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
		default:
			return err
		}
		return nil
	}
}

// deleteHandler godoc
// @Summary Borrar foto
// @Description fotoId tiene que ser la foto actual del dueño.
// @Tags fotos
// @Security BearerAuth
// @Param id path int true "ID del dueño"
// @Param fotoId path int true "ID de la foto"
// @Success 204
// @Failure 401 {object} routing.Message
// @Failure 404 {object} routing.Message
// @Router /v1/pets/{id}/fotos/{fotoId} [delete]
// @Router /v1/tutores/{id}/fotos/{fotoId} [delete]
func deleteHandler(svc *Service, kind store.Kind) routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, okID := routing.ID(r, "id")
		fotoID, okFoto := routing.ID(r, "fotoId")
		if !okID || !okFoto {
			routing.WriteMessage(w, http.StatusNotFound, msgPhotoNotFound)
			return nil
		}

		err := svc.Delete(r.Context(), kind, id, fotoID)
		if errors.Is(err, ErrPhotoNotFound) {
			routing.WriteMessage(w, http.StatusNotFound, msgPhotoNotFound)
			return nil
		}
		if err != nil {
			return err
		}
		routing.NoContent(w)
		return nil
	}
}
