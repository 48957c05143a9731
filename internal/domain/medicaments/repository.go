package medicaments

import (
	"context"

	"vet-clinic-records/internal/domain/lifecycle"
)

type Repository interface {
	lifecycle.Repository[Medicament]

	// CommercialNameExists compara sin distinguir mayúsculas, solo entre activos.
	CommercialNameExists(ctx context.Context, name string, excludeID *int64) (bool, error)
}
