package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Document es la forma parcial de un snapshot persistido: cualquier campo puede faltar.
type Document struct {
	NextPetID   *int64   `json:"nextPetId"`
	NextTutorID *int64   `json:"nextTutorId"`
	NextFotoID  *int64   `json:"nextFotoId"`
	Pets        *[]Pet   `json:"pets"`
	Tutors      *[]Tutor `json:"tutores"`
}

// Merge aplica un documento parcial sobre base (que no se modifica):
//   - contadores ausentes => los de base
//   - colecciones ausentes => vacías (nunca los registros demo de base)
//
// Después sube los contadores por encima del id más alto presente,
// para que un snapshot sin contadores no termine reusando ids.
func Merge(base *Store, doc Document) *Store {
	out := &Store{
		NextPetID:   base.NextPetID,
		NextTutorID: base.NextTutorID,
		NextFotoID:  base.NextFotoID,
		Pets:        []Pet{},
		Tutors:      []Tutor{},
	}

	if doc.NextPetID != nil {
		out.NextPetID = *doc.NextPetID
	}
	if doc.NextTutorID != nil {
		out.NextTutorID = *doc.NextTutorID
	}
	if doc.NextFotoID != nil {
		out.NextFotoID = *doc.NextFotoID
	}
	if doc.Pets != nil {
		out.Pets = append(out.Pets, (*doc.Pets)...)
	}
	if doc.Tutors != nil {
		out.Tutors = append(out.Tutors, (*doc.Tutors)...)
	}

	for i := range out.Pets {
		if out.Pets[i].TutorIDs == nil {
			out.Pets[i].TutorIDs = []int64{}
		}
	}
	for i := range out.Tutors {
		if out.Tutors[i].PetIDs == nil {
			out.Tutors[i].PetIDs = []int64{}
		}
	}

	out.raiseCounters()
	return out
}

var errNullSnapshot = errors.New("snapshot is null")

// Decode parsea un snapshot y lo mezcla sobre la seed. Un documento null es
// inválido, igual que un JSON roto.
func Decode(raw []byte) (*Store, error) {
	var doc *Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode snapshot: %w", errNullSnapshot)
	}
	return Merge(Seed(), *doc), nil
}

// Encode serializa el agregado completo (indentado, como el archivo local).
func Encode(s *Store) ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

func (s *Store) raiseCounters() {
	for _, p := range s.Pets {
		if p.ID >= s.NextPetID {
			s.NextPetID = p.ID + 1
		}
		if p.Photo != nil && p.Photo.ID >= s.NextFotoID {
			s.NextFotoID = p.Photo.ID + 1
		}
	}
	for _, t := range s.Tutors {
		if t.ID >= s.NextTutorID {
			s.NextTutorID = t.ID + 1
		}
		if t.Photo != nil && t.Photo.ID >= s.NextFotoID {
			s.NextFotoID = t.Photo.ID + 1
		}
	}
}
