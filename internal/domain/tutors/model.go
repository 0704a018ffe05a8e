package tutors

import "pet-registry/internal/domain/store"

// Input son los campos mutables de un tutor; nome y telefone son obligatorios.
type Input struct {
	Name    string
	Email   string
	Phone   string
	Address string
	TaxID   *int64
}

// Detail es un tutor con sus pets resueltos.
type Detail struct {
	store.TutorView
	Pets []store.PetView `json:"pets"`
}
