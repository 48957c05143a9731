package prescriptions

import (
	"context"

	"vet-clinic-records/internal/domain/lifecycle"
)

type Repository interface {
	lifecycle.Repository[Prescription]

	// Prescripciones activas del tratamiento, por fecha de inicio.
	ListActiveByTreatment(ctx context.Context, treatmentID int64) ([]Prescription, error)
}
