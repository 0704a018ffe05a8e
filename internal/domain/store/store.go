package store

import "slices"

// Operaciones sobre el agregado en memoria. Mantienen la simetría pet<->tutor;
// ninguna toca el medio persistido.

func (s *Store) Pet(id int64) *Pet {
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			return &s.Pets[i]
		}
	}
	return nil
}

func (s *Store) Tutor(id int64) *Tutor {
	for i := range s.Tutors {
		if s.Tutors[i].ID == id {
			return &s.Tutors[i]
		}
	}
	return nil
}

// AddPet asigna el próximo id y agrega al final. Devuelve una copia.
func (s *Store) AddPet(p Pet) Pet {
	p.ID = s.NextPetID
	s.NextPetID++
	p.Photo = nil
	p.TutorIDs = []int64{}
	s.Pets = append(s.Pets, p)
	return p
}

func (s *Store) AddTutor(t Tutor) Tutor {
	t.ID = s.NextTutorID
	s.NextTutorID++
	t.Photo = nil
	t.PetIDs = []int64{}
	s.Tutors = append(s.Tutors, t)
	return t
}

// NextPhotoID consume el contador global de fotos.
func (s *Store) NextPhotoID() int64 {
	id := s.NextFotoID
	s.NextFotoID++
	return id
}

// RemovePet borra el pet y lo quita de la lista de todos los tutores (cascade).
func (s *Store) RemovePet(id int64) (Pet, bool) {
	idx := slices.IndexFunc(s.Pets, func(p Pet) bool { return p.ID == id })
	if idx == -1 {
		return Pet{}, false
	}
	removed := s.Pets[idx]
	s.Pets = slices.Delete(s.Pets, idx, idx+1)

	for i := range s.Tutors {
		s.Tutors[i].PetIDs = without(s.Tutors[i].PetIDs, id)
	}
	return removed, true
}

// RemoveTutor borra el tutor y lo quita de la lista de todos los pets (cascade).
func (s *Store) RemoveTutor(id int64) (Tutor, bool) {
	idx := slices.IndexFunc(s.Tutors, func(t Tutor) bool { return t.ID == id })
	if idx == -1 {
		return Tutor{}, false
	}
	removed := s.Tutors[idx]
	s.Tutors = slices.Delete(s.Tutors, idx, idx+1)

	for i := range s.Pets {
		s.Pets[i].TutorIDs = without(s.Pets[i].TutorIDs, id)
	}
	return removed, true
}

// Link es idempotente: un par ya vinculado no crece.
func (s *Store) Link(tutorID, petID int64) bool {
	t, p := s.Tutor(tutorID), s.Pet(petID)
	if t == nil || p == nil {
		return false
	}
	if !slices.Contains(t.PetIDs, petID) {
		t.PetIDs = append(t.PetIDs, petID)
	}
	if !slices.Contains(p.TutorIDs, tutorID) {
		p.TutorIDs = append(p.TutorIDs, tutorID)
	}
	return true
}

// Unlink es idempotente.
func (s *Store) Unlink(tutorID, petID int64) bool {
	t, p := s.Tutor(tutorID), s.Pet(petID)
	if t == nil || p == nil {
		return false
	}
	t.PetIDs = without(t.PetIDs, petID)
	p.TutorIDs = without(p.TutorIDs, tutorID)
	return true
}

// TutorsOf resuelve los tutores de un pet, en el orden de la colección.
func (s *Store) TutorsOf(p Pet) []Tutor {
	out := make([]Tutor, 0, len(p.TutorIDs))
	for _, t := range s.Tutors {
		if slices.Contains(p.TutorIDs, t.ID) {
			out = append(out, t)
		}
	}
	return out
}

// PetsOf resuelve los pets de un tutor, en el orden de la colección.
func (s *Store) PetsOf(t Tutor) []Pet {
	out := make([]Pet, 0, len(t.PetIDs))
	for _, p := range s.Pets {
		if slices.Contains(t.PetIDs, p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// PhotoOf devuelve un puntero al slot de foto del dueño (nil si el dueño no existe).
func (s *Store) PhotoOf(kind Kind, ownerID int64) (**Anexo, bool) {
	switch kind {
	case KindPet:
		if p := s.Pet(ownerID); p != nil {
			return &p.Photo, true
		}
	case KindTutor:
		if t := s.Tutor(ownerID); t != nil {
			return &t.Photo, true
		}
	}
	return nil, false
}

func without(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
