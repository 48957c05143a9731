package treatments

import "vet-clinic-records/internal/domain/lifecycle"

// Repository no agrega probes propios: un tratamiento no tiene campos únicos.
type Repository interface {
	lifecycle.Repository[Treatment]
}
