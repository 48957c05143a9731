package lifecycle

import "context"

// Repository es la superficie de ciclo de vida que comparten las cinco entidades.
// Todas las lecturas quedan restringidas a una partición.
type Repository[E any] interface {
	ListActive(ctx context.Context) ([]E, error)
	ListDeleted(ctx context.Context) ([]E, error)

	// Devuelven *NotFoundError si el id no está en esa partición.
	GetActiveByID(ctx context.Context, id int64) (E, error)
	GetDeletedByID(ctx context.Context, id int64) (E, error)

	Create(ctx context.Context, e E) (E, error)
	Update(ctx context.Context, e E) (E, error)

	// false cuando no hay fila en la partición de origen.
	SoftDelete(ctx context.Context, id int64, by string) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)

	Existence
}

// Existence alcanza para validar referencias hacia una entidad padre.
type Existence interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
	ExistsDeleted(ctx context.Context, id int64) (bool, error)
}

// ExistsAny responde si el id existe en cualquiera de las dos particiones.
func ExistsAny(ctx context.Context, r Existence, id int64) (bool, error) {
	ok, err := r.ExistsActive(ctx, id)
	if err != nil || ok {
		return ok, err
	}
	return r.ExistsDeleted(ctx, id)
}
