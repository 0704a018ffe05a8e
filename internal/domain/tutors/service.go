package tutors

import (
	"context"
	"errors"

	"pet-registry/internal/domain/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("tutor not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (in Input) valid() bool {
	return in.Name != "" && in.Phone != ""
}

func (in Input) apply(t *store.Tutor) {
	t.Name = in.Name
	t.Email = in.Email
	t.Phone = in.Phone
	t.Address = in.Address
	t.TaxID = in.TaxID
}

// List filtra por nombre (substring, sin mayúsculas) y pagina.
func (s *Service) List(ctx context.Context, name string, page, size int) store.Page[store.TutorView] {
	st := s.repo.Load(ctx)

	matched := make([]store.Tutor, 0, len(st.Tutors))
	for _, t := range st.Tutors {
		if store.ContainsFold(t.Name, name) {
			matched = append(matched, t)
		}
	}
	return store.Map(store.Paginate(matched, page, size), store.ToTutorView)
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	st := s.repo.Load(ctx)
	t := st.Tutor(id)
	if t == nil {
		return Detail{}, ErrNotFound
	}

	pets := st.PetsOf(*t)
	out := Detail{TutorView: store.ToTutorView(*t), Pets: make([]store.PetView, 0, len(pets))}
	for _, p := range pets {
		out.Pets = append(out.Pets, store.ToPetView(p))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in Input) (store.TutorView, error) {
	if !in.valid() {
		return store.TutorView{}, ErrInvalidInput
	}

	var created store.Tutor
	err := s.repo.Mutate(ctx, func(st *store.Store) error {
		var t store.Tutor
		in.apply(&t)
		created = st.AddTutor(t)
		return nil
	})
	if err != nil {
		return store.TutorView{}, err
	}
	return store.ToTutorView(created), nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (store.TutorView, error) {
	if !in.valid() {
		return store.TutorView{}, ErrInvalidInput
	}

	var updated store.Tutor
	err := s.repo.Mutate(ctx, func(st *store.Store) error {
		t := st.Tutor(id)
		if t == nil {
			return ErrNotFound
		}
		in.apply(t)
		updated = *t
		return nil
	})
	if err != nil {
		return store.TutorView{}, err
	}
	return store.ToTutorView(updated), nil
}

// Delete saca el tutor de todos los pets en el mismo snapshot.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Mutate(ctx, func(st *store.Store) error {
		if _, ok := st.RemoveTutor(id); !ok {
			return ErrNotFound
		}
		return nil
	})
}
