package links

import (
	"context"
	"errors"

	"pet-registry/internal/domain/store"
)

var ErrNotFound = errors.New("pet or tutor not found")

type Repository interface {
	Mutate(ctx context.Context, fn func(*store.Store) error) error
}

// Service mantiene la asociación pet<->tutor en ambos lados a la vez.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Link es idempotente: volver a vincular un par no duplica ids.
func (s *Service) Link(ctx context.Context, tutorID, petID int64) error {
	return s.repo.Mutate(ctx, func(st *store.Store) error {
		if !st.Link(tutorID, petID) {
			return ErrNotFound
		}
		return nil
	})
}

func (s *Service) Unlink(ctx context.Context, tutorID, petID int64) error {
	return s.repo.Mutate(ctx, func(st *store.Store) error {
		if !st.Unlink(tutorID, petID) {
			return ErrNotFound
		}
		return nil
	})
}
