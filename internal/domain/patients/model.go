package patients

import (
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
)

// Patient es el animal atendido en la clínica. Pertenece a un customer.
type Patient struct {
	lifecycle.Record

	AnimalName     string
	Species        string
	Breed          string
	Gender         enums.Gender
	BirthDate      time.Time // solo fecha
	Weight         float64   // kg, decimal(5,2)
	Classification enums.Classification
	PhotoURL       string

	RegisteredAt time.Time
	RegisteredBy string

	CustomerID int64

	// Proyección del dueño; solo viene poblada en resultados de búsqueda.
	Owner *Owner
}

// Owner es la vista plana del customer que necesita la búsqueda.
type Owner struct {
	CustomerID       int64
	FirstNames       string
	PaternalLastName string
	MaternalLastName string
	DocumentID       string
	Phone            string
	Email            string
	Status           enums.CustomerStatus
}

func (o Owner) FullName() string {
	return o.FirstNames + " " + o.PaternalLastName + " " + o.MaternalLastName
}

// Age se calcula, nunca se guarda. Fecha de nacimiento vacía => 0.
func Age(birth, today time.Time) int {
	if birth.IsZero() {
		return 0
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

func (p Patient) AgeAt(today time.Time) int { return Age(p.BirthDate, today) }
