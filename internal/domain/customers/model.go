package customers

import (
	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
)

// Customer es el dueño de uno o más pacientes.
type Customer struct {
	lifecycle.Record

	FirstNames       string
	PaternalLastName string
	MaternalLastName string
	DocumentID       string // único entre activos
	Phone            string
	Email            string // único entre activos cuando no está vacío
	Address          string
	Type             enums.CustomerType
	Status           enums.CustomerStatus
	Notes            string
}

func (c Customer) FullName() string {
	return c.FirstNames + " " + c.PaternalLastName + " " + c.MaternalLastName
}
