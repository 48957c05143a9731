package customers

import (
	"context"

	"vet-clinic-records/internal/domain/lifecycle"
)

type Repository interface {
	lifecycle.Repository[Customer]

	// Probes de unicidad sobre activos. excludeID != nil ignora ese registro.
	EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error)
	DocumentIDExists(ctx context.Context, documentID string, excludeID *int64) (bool, error)
}
