package store

// Anexo es la foto (metadata) de un pet o tutor. Solo existe dentro de su dueño.
type Anexo struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
}

// Pet tal como se persiste en el snapshot.
type Pet struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nome"`
	Breed    string  `json:"raca,omitempty"`
	Age      *int    `json:"idade,omitempty"`
	Photo    *Anexo  `json:"foto,omitempty"`
	TutorIDs []int64 `json:"tutores"`
}

// Tutor tal como se persiste en el snapshot.
type Tutor struct {
	ID      int64   `json:"id"`
	Name    string  `json:"nome"`
	Email   string  `json:"email,omitempty"`
	Phone   string  `json:"telefone,omitempty"`
	Address string  `json:"endereco,omitempty"`
	TaxID   *int64  `json:"cpf,omitempty"` // CPF
	Photo   *Anexo  `json:"foto,omitempty"`
	PetIDs  []int64 `json:"pets"`
}

// Store es el agregado completo: la unidad de persistencia.
// Toda mutación es load completo -> cambio en memoria -> save completo.
type Store struct {
	NextPetID   int64   `json:"nextPetId"`
	NextTutorID int64   `json:"nextTutorId"`
	NextFotoID  int64   `json:"nextFotoId"`
	Pets        []Pet   `json:"pets"`
	Tutors      []Tutor `json:"tutores"`
}

// Kind identifica el tipo de entidad dueña de una foto.
type Kind string

const (
	KindPet   Kind = "pets"
	KindTutor Kind = "tutores"
)
