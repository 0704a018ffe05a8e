package pets

import (
	"context"

	"pet-registry/internal/domain/store"
)

// Repository es el subconjunto de store.Repository que usa el servicio.
type Repository interface {
	Load(ctx context.Context) *store.Store
	Mutate(ctx context.Context, fn func(*store.Store) error) error
}
