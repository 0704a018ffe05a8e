package pets

import (
	"context"
	"testing"

	"pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/domain/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *store.Repository) {
	t.Helper()
	repo := store.NewRepository(memory.NewSnapshot(), store.Options{})
	return NewService(repo), repo
}

func intPtr(v int) *int { return &v }

func TestCreate_IDsStrictlyIncreaseAcrossDeletes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	a, err := svc.Create(ctx, Input{Name: "A"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, a.ID))
	b, err := svc.Create(ctx, Input{Name: "B"})
	require.NoError(t, err)

	assert.Equal(t, int64(3), a.ID)
	assert.Equal(t, int64(4), b.ID)
}

func TestCreate_RequiresName(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Create(context.Background(), Input{Breed: "Poodle"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_OverwritesAllFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	p, err := svc.Update(ctx, 1, Input{Name: "Rex II"})
	require.NoError(t, err)
	assert.Equal(t, "Rex II", p.Name)
	assert.Empty(t, p.Breed)
	assert.Nil(t, p.Age)

	_, err = svc.Update(ctx, 99, Input{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_ResolvesTutors(t *testing.T) {
	svc, _ := newService(t)

	d, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Rex", d.Name)
	require.Len(t, d.Tutors, 1)
	assert.Equal(t, "Joao da Silva", d.Tutors[0].Name)

	_, err = svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_CascadesToTutors(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrNotFound)

	st := repo.Load(ctx)
	assert.Nil(t, st.Pet(1))
	assert.Empty(t, st.Tutor(1).PetIDs)
}

func TestList_FiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	for _, n := range []string{"Rexona", "Bolt", "Luna"} {
		_, err := svc.Create(ctx, Input{Name: n, Breed: "Poodle", Age: intPtr(1)})
		require.NoError(t, err)
	}

	page := svc.List(ctx, Filter{Name: "REX"}, 0, 10)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.PageCount)

	page = svc.List(ctx, Filter{Breed: "pood"}, 1, 2)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.PageCount)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Luna", page.Content[0].Name)

	page = svc.List(ctx, Filter{}, 9, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.PageCount)
	assert.Empty(t, page.Content)

	page = svc.List(ctx, Filter{}, 0, 0)
	assert.Len(t, page.Content, 5)
	assert.Equal(t, 1, page.PageCount)
}
