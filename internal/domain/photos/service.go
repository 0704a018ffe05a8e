package photos

import (
	"context"
	"errors"
	"fmt"

	"pet-registry/internal/domain/store"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/upload"
	"pet-registry/internal/ports/blob"

	"go.uber.org/zap"
)

var (
	ErrOwnerNotFound = errors.New("photo owner not found")
	ErrFileRequired  = errors.New("file required")
	ErrPhotoNotFound = errors.New("photo not found")
)

type Repository interface {
	Mutate(ctx context.Context, fn func(*store.Store) error) error
}

// Source entrega el archivo subido. Se llama recién después de validar el
// dueño, así un dueño inexistente es 404 aunque el body sea inválido.
type Source func() (*upload.File, error)

type Options struct {
	// DeleteReplaced borra el payload anterior al reemplazar una foto.
	// Apagado, el payload viejo queda huérfano en el blob store.
	DeleteReplaced bool
	Logger         *zap.Logger
}

// Service maneja la foto única de pets y tutores.
type Service struct {
	repo           Repository
	blobs          blob.Store
	deleteReplaced bool
	log            *zap.Logger
}

func NewService(repo Repository, blobs blob.Store, opts Options) *Service {
	return &Service{
		repo:           repo,
		blobs:          blobs,
		deleteReplaced: opts.DeleteReplaced,
		log:            logger.OrNop(opts.Logger),
	}
}

// Path es donde se guarda el payload: imagens/{pets|tutores}/{id}/{fotoId}-{nombre}.
func Path(kind store.Kind, ownerID, photoID int64, filename string) string {
	return fmt.Sprintf("imagens/%s/%d/%d-%s", kind, ownerID, photoID, filename)
}

func (s *Service) Upload(ctx context.Context, kind store.Kind, ownerID int64, src Source) (store.Anexo, error) {
	var (
		created  store.Anexo
		replaced *store.Anexo
	)
	err := s.repo.Mutate(ctx, func(st *store.Store) error {
		slot, ok := st.PhotoOf(kind, ownerID)
		if !ok {
			return ErrOwnerNotFound
		}

		f, err := src()
		if err != nil {
			return err
		}
		if f == nil {
			return ErrFileRequired
		}

		id := st.NextPhotoID()
		obj, err := s.blobs.Put(ctx, Path(kind, ownerID, id, f.Name), f.Data, f.ContentType)
		if err != nil {
			return fmt.Errorf("store photo payload: %w", err)
		}

		created = store.Anexo{ID: id, Name: f.Name, ContentType: f.ContentType, URL: obj.URL}
		replaced = *slot
		a := created
		*slot = &a
		return nil
	})
	if err != nil {
		return store.Anexo{}, err
	}

	if replaced != nil && s.deleteReplaced {
		if err := s.blobs.DeleteByURL(ctx, replaced.URL); err != nil {
			s.log.Warn("delete replaced photo failed", zap.String("url", replaced.URL), zap.Error(err))
		}
	}
	return created, nil
}

// Delete exige que photoID sea la foto actual del dueño.
func (s *Service) Delete(ctx context.Context, kind store.Kind, ownerID, photoID int64) error {
	return s.repo.Mutate(ctx, func(st *store.Store) error {
		slot, ok := st.PhotoOf(kind, ownerID)
		if !ok || *slot == nil || (*slot).ID != photoID {
			return ErrPhotoNotFound
		}

		if err := s.blobs.DeleteByURL(ctx, (*slot).URL); err != nil {
			return fmt.Errorf("delete photo payload: %w", err)
		}
		*slot = nil
		return nil
	})
}
