package lifecycle

import "time"

// Partition identifica en qué mitad (activos / eliminados) vive un registro.
type Partition string

const (
	Active  Partition = "active"
	Deleted Partition = "deleted"
)

// Record agrupa la identidad y los campos de auditoría que comparten todas las entidades.
// Se embebe en cada entidad del dominio.
type Record struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsDeleted bool
	DeletedAt *time.Time
	DeletedBy *string
}

// Base permite que los adapters genéricos lleguen al Record embebido.
func (r *Record) Base() *Record { return r }

// Entity se cumple por *E para cualquier struct E que embeba Record.
type Entity[E any] interface {
	*E
	Base() *Record
}

// MarkCreated deja el registro listo para insertarse: activo y sin marcas de borrado.
func (r *Record) MarkCreated(now time.Time) {
	r.CreatedAt = now
	r.UpdatedAt = nil
	r.IsDeleted = false
	r.DeletedAt = nil
	r.DeletedBy = nil
}

// PreserveFrom copia los campos protegidos desde la fila almacenada.
// Update nunca puede pisar createdAt ni los campos de borrado.
func (r *Record) PreserveFrom(stored Record, now time.Time) {
	r.ID = stored.ID
	r.CreatedAt = stored.CreatedAt
	r.IsDeleted = stored.IsDeleted
	r.DeletedAt = stored.DeletedAt
	r.DeletedBy = stored.DeletedBy
	r.UpdatedAt = &now
}

func (r *Record) MarkDeleted(now time.Time, by string) {
	r.IsDeleted = true
	r.DeletedAt = &now
	r.DeletedBy = &by
}

func (r *Record) MarkRestored(now time.Time) {
	r.IsDeleted = false
	r.DeletedAt = nil
	r.DeletedBy = nil
	r.UpdatedAt = &now
}

func (r Record) Partition() Partition {
	if r.IsDeleted {
		return Deleted
	}
	return Active
}
