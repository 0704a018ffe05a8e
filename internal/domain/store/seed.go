package store

// seed es inmutable: nadie fuera de este archivo la toca y Seed() siempre clona.
var seed = Store{
	NextPetID:   3,
	NextTutorID: 3,
	NextFotoID:  1,
	Pets: []Pet{
		{ID: 1, Name: "Rex", Breed: "Labrador Retriever", Age: intPtr(3), TutorIDs: []int64{1}},
		{ID: 2, Name: "Maya", Breed: "Vira-lata", Age: intPtr(2), TutorIDs: []int64{2}},
	},
	Tutors: []Tutor{
		{
			ID:      1,
			Name:    "Joao da Silva",
			Email:   "joao.silva@email.com",
			Phone:   "(11) 91234-5678",
			Address: "Rua das Flores, 123",
			TaxID:   int64Ptr(12345678901),
			PetIDs:  []int64{1},
		},
		{
			ID:      2,
			Name:    "Maria Santos",
			Email:   "maria.santos@email.com",
			Phone:   "(21) 98765-4321",
			Address: "Av. Central, 500",
			TaxID:   int64Ptr(98765432100),
			PetIDs:  []int64{2},
		},
	},
}

// Seed devuelve una copia profunda y mutable de los datos por defecto.
func Seed() *Store {
	return seed.Clone()
}

// Clone copia profundamente el agregado (slices, punteros y fotos incluidos).
func (s *Store) Clone() *Store {
	out := &Store{
		NextPetID:   s.NextPetID,
		NextTutorID: s.NextTutorID,
		NextFotoID:  s.NextFotoID,
		Pets:        make([]Pet, len(s.Pets)),
		Tutors:      make([]Tutor, len(s.Tutors)),
	}
	for i, p := range s.Pets {
		p.TutorIDs = append([]int64{}, p.TutorIDs...)
		if p.Age != nil {
			p.Age = intPtr(*p.Age)
		}
		p.Photo = clonePhoto(p.Photo)
		out.Pets[i] = p
	}
	for i, t := range s.Tutors {
		t.PetIDs = append([]int64{}, t.PetIDs...)
		if t.TaxID != nil {
			t.TaxID = int64Ptr(*t.TaxID)
		}
		t.Photo = clonePhoto(t.Photo)
		out.Tutors[i] = t
	}
	return out
}

func clonePhoto(a *Anexo) *Anexo {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
