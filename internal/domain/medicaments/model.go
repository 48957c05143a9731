package medicaments

import "vet-clinic-records/internal/domain/lifecycle"

// Medicament es el catálogo de productos que se pueden prescribir.
type Medicament struct {
	lifecycle.Record

	CommercialName   string // único entre activos
	ActiveIngredient string
	Presentation     string
	Laboratory       string
}
