package patients

import (
	"context"

	"vet-clinic-records/internal/domain/lifecycle"
)

type Repository interface {
	lifecycle.Repository[Patient]
	Searcher

	// Unicidad (animalName, customerId) entre activos; excludeID se usa al actualizar.
	AnimalNameExistsForOwner(ctx context.Context, animalName string, customerID int64, excludeID *int64) (bool, error)

	// Pacientes activos del customer, ordenados por nombre.
	ListActiveByCustomer(ctx context.Context, customerID int64) ([]Patient, error)

	// UpdatePhoto solo toca photoUrl y updatedAt; false si no hay paciente activo.
	UpdatePhoto(ctx context.Context, id int64, url string) (bool, error)

	// Catálogos distintos y ordenados sobre pacientes activos.
	Species(ctx context.Context) ([]string, error)
	Breeds(ctx context.Context) ([]string, error)
}

// Searcher es el motor de búsqueda. Solo lee.
type Searcher interface {
	Search(ctx context.Context, q SearchQuery) (SearchResult, error)
}
