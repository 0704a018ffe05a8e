package tutors

import (
	"context"

	"pet-registry/internal/domain/store"
)

type Repository interface {
	Load(ctx context.Context) *store.Store
	Mutate(ctx context.Context, fn func(*store.Store) error) error
}
