package pets

import (
	"context"
	"errors"

	"pet-registry/internal/domain/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter, page, size int) store.Page[store.PetView] {
	st := s.repo.Load(ctx)

	matched := make([]store.Pet, 0, len(st.Pets))
	for _, p := range st.Pets {
		if store.ContainsFold(p.Name, f.Name) && (f.Breed == "" || store.ContainsFold(p.Breed, f.Breed)) {
			matched = append(matched, p)
		}
	}
	return store.Map(store.Paginate(matched, page, size), store.ToPetView)
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	st := s.repo.Load(ctx)
	p := st.Pet(id)
	if p == nil {
		return Detail{}, ErrNotFound
	}

	tutors := st.TutorsOf(*p)
	out := Detail{PetView: store.ToPetView(*p), Tutors: make([]store.TutorView, 0, len(tutors))}
	for _, t := range tutors {
		out.Tutors = append(out.Tutors, store.ToTutorView(t))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in Input) (store.PetView, error) {
	if in.Name == "" {
		return store.PetView{}, ErrInvalidInput
	}

	var created store.Pet
	err := s.repo.Mutate(ctx, func(st *store.Store) error {
		created = st.AddPet(store.Pet{Name: in.Name, Breed: in.Breed, Age: in.Age})
		return nil
	})
	if err != nil {
		return store.PetView{}, err
	}
	return store.ToPetView(created), nil
}

// Update valida antes de buscar: un body inválido es 400 aunque el id no exista.
func (s *Service) Update(ctx context.Context, id int64, in Input) (store.PetView, error) {
	if in.Name == "" {
		return store.PetView{}, ErrInvalidInput
	}

	var updated store.Pet
	err := s.repo.Mutate(ctx, func(st *store.Store) error {
		p := st.Pet(id)
		if p == nil {
			return ErrNotFound
		}
		p.Name = in.Name
		p.Breed = in.Breed
		p.Age = in.Age
		updated = *p
		return nil
	})
	if err != nil {
		return store.PetView{}, err
	}
	return store.ToPetView(updated), nil
}

// Delete saca el pet de todos los tutores en el mismo snapshot.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Mutate(ctx, func(st *store.Store) error {
		if _, ok := st.RemovePet(id); !ok {
			return ErrNotFound
		}
		return nil
	})
}
