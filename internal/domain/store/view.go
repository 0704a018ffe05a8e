package store

// Vistas de respuesta compartidas por los handlers de pets y tutores:
// la API nunca expone las listas de ids, solo los peers resueltos.

type PetView struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Breed string `json:"raca,omitempty"`
	Age   *int   `json:"idade,omitempty"`
	Photo *Anexo `json:"foto,omitempty"`
}

type TutorView struct {
	ID      int64  `json:"id"`
	Name    string `json:"nome"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefone,omitempty"`
	Address string `json:"endereco,omitempty"`
	TaxID   *int64 `json:"cpf,omitempty"`
	Photo   *Anexo `json:"foto,omitempty"`
}

func ToPetView(p Pet) PetView {
	return PetView{ID: p.ID, Name: p.Name, Breed: p.Breed, Age: p.Age, Photo: p.Photo}
}

func ToTutorView(t Tutor) TutorView {
	return TutorView{
		ID:      t.ID,
		Name:    t.Name,
		Email:   t.Email,
		Phone:   t.Phone,
		Address: t.Address,
		TaxID:   t.TaxID,
		Photo:   t.Photo,
	}
}
