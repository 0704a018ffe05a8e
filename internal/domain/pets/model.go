package pets

import "pet-registry/internal/domain/store"

// Input son los campos mutables de un pet. Update pisa todos: lo que no
// viene queda vacío.
type Input struct {
	Name  string
	Breed string
	Age   *int
}

// Filter: substrings case-insensitive; vacío no filtra.
type Filter struct {
	Name  string
	Breed string
}

// Detail es un pet con sus tutores resueltos.
type Detail struct {
	store.PetView
	Tutors []store.TutorView `json:"tutores"`
}
