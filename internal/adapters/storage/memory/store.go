// Package memory es el EntityStore en proceso: todas las tablas detrás de un único lock,
// así cada llamada es atómica respecto de las demás. Se usa en dev y en tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"vet-clinic-records/internal/domain/customers"
	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/domain/medicaments"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/prescriptions"
	"vet-clinic-records/internal/domain/treatments"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	customers     *table[customers.Customer, *customers.Customer]
	patients      *table[patients.Patient, *patients.Patient]
	medicaments   *table[medicaments.Medicament, *medicaments.Medicament]
	treatments    *table[treatments.Treatment, *treatments.Treatment]
	prescriptions *table[prescriptions.Prescription, *prescriptions.Prescription]
}

func NewStore() *Store {
	return &Store{
		now:           time.Now,
		customers:     newTable[customers.Customer](customers.EntityName, customerKeys...),
		patients:      newTable[patients.Patient](patients.EntityName, patientKeys...),
		medicaments:   newTable[medicaments.Medicament](medicaments.EntityName, medicamentKeys...),
		treatments:    newTable[treatments.Treatment](treatments.EntityName),
		prescriptions: newTable[prescriptions.Prescription](prescriptions.EntityName),
	}
}

// uniqueKey es una restricción de unicidad entre activos. key devuelve "" cuando
// la fila no participa (ej. email vacío).
type uniqueKey[E any] struct {
	field string
	key   func(e *E) string
	show  func(e *E) string
}

type table[E any, P lifecycle.Entity[E]] struct {
	entity string
	rows   map[int64]E
	nextID int64
	keys   []uniqueKey[E]
}

func newTable[E any, P lifecycle.Entity[E]](entity string, keys ...uniqueKey[E]) *table[E, P] {
	return &table[E, P]{
		entity: entity,
		rows:   make(map[int64]E),
		keys:   keys,
	}
}

// Todos los métodos de table asumen que el caller tiene el lock del Store.

func (t *table[E, P]) list(part lifecycle.Partition) []E {
	out := make([]E, 0)
	for _, e := range t.rows {
		if P(&e).Base().Partition() == part {
			out = append(out, e)
		}
	}

	// Activos por id; eliminados por fecha de borrado.
	sort.Slice(out, func(i, j int) bool {
		a, b := P(&out[i]).Base(), P(&out[j]).Base()
		if part == lifecycle.Deleted && a.DeletedAt != nil && b.DeletedAt != nil && !a.DeletedAt.Equal(*b.DeletedAt) {
			return a.DeletedAt.Before(*b.DeletedAt)
		}
		return a.ID < b.ID
	})
	return out
}

func (t *table[E, P]) get(id int64, part lifecycle.Partition) (E, error) {
	e, ok := t.rows[id]
	if !ok || P(&e).Base().Partition() != part {
		var zero E
		return zero, &lifecycle.NotFoundError{Entity: t.entity, ID: id, Partition: part}
	}
	return e, nil
}

func (t *table[E, P]) exists(id int64, part lifecycle.Partition) bool {
	e, ok := t.rows[id]
	return ok && P(&e).Base().Partition() == part
}

// conflict revisa las claves únicas de e contra los activos, ignorando excludeID.
func (t *table[E, P]) conflict(e *E, excludeID int64) error {
	for _, k := range t.keys {
		v := k.key(e)
		if v == "" {
			continue
		}
		for id, row := range t.rows {
			if id == excludeID || P(&row).Base().IsDeleted {
				continue
			}
			if k.key(&row) == v {
				return &lifecycle.ConflictError{Entity: t.entity, Field: k.field, Value: k.show(e)}
			}
		}
	}
	return nil
}

// taken es el probe: ¿hay un activo (distinto de excludeID) con la misma clave que probe?
func (t *table[E, P]) taken(field string, probe *E, excludeID *int64) bool {
	for _, k := range t.keys {
		if k.field != field {
			continue
		}
		v := k.key(probe)
		if v == "" {
			return false
		}
		for id, row := range t.rows {
			if excludeID != nil && id == *excludeID {
				continue
			}
			if !P(&row).Base().IsDeleted && k.key(&row) == v {
				return true
			}
		}
	}
	return false
}

func (t *table[E, P]) insert(e E, now time.Time) (E, error) {
	b := P(&e).Base()
	b.MarkCreated(now)
	if err := t.conflict(&e, 0); err != nil {
		var zero E
		return zero, err
	}
	t.nextID++
	b.ID = t.nextID
	t.rows[b.ID] = e
	return e, nil
}

func (t *table[E, P]) update(e E, now time.Time) (E, error) {
	id := P(&e).Base().ID
	stored, err := t.get(id, lifecycle.Active)
	if err != nil {
		var zero E
		return zero, err
	}
	if err := t.conflict(&e, id); err != nil {
		var zero E
		return zero, err
	}
	P(&e).Base().PreserveFrom(*P(&stored).Base(), now)
	t.rows[id] = e
	return e, nil
}

func (t *table[E, P]) softDelete(id int64, by string, now time.Time) bool {
	e, err := t.get(id, lifecycle.Active)
	if err != nil {
		return false
	}
	P(&e).Base().MarkDeleted(now, by)
	t.rows[id] = e
	return true
}

// restore vuelve a chequear unicidad: mientras estuvo eliminado otro activo pudo tomar la clave.
func (t *table[E, P]) restore(id int64, now time.Time) (bool, error) {
	e, err := t.get(id, lifecycle.Deleted)
	if err != nil {
		return false, nil
	}
	if err := t.conflict(&e, id); err != nil {
		return false, err
	}
	P(&e).Base().MarkRestored(now)
	t.rows[id] = e
	return true, nil
}

// repo implementa lifecycle.Repository[E] sobre una tabla del Store.
type repo[E any, P lifecycle.Entity[E]] struct {
	s *Store
	t *table[E, P]
}

func (r *repo[E, P]) ListActive(ctx context.Context) ([]E, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.list(lifecycle.Active), nil
}

func (r *repo[E, P]) ListDeleted(ctx context.Context) ([]E, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.list(lifecycle.Deleted), nil
}

func (r *repo[E, P]) GetActiveByID(ctx context.Context, id int64) (E, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.get(id, lifecycle.Active)
}

func (r *repo[E, P]) GetDeletedByID(ctx context.Context, id int64) (E, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.get(id, lifecycle.Deleted)
}

func (r *repo[E, P]) Create(ctx context.Context, e E) (E, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.t.insert(e, r.s.now().UTC())
}

func (r *repo[E, P]) Update(ctx context.Context, e E) (E, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.t.update(e, r.s.now().UTC())
}

func (r *repo[E, P]) SoftDelete(ctx context.Context, id int64, by string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.t.softDelete(id, by, r.s.now().UTC()), nil
}

func (r *repo[E, P]) Restore(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.t.restore(id, r.s.now().UTC())
}

func (r *repo[E, P]) ExistsActive(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.exists(id, lifecycle.Active), nil
}

func (r *repo[E, P]) ExistsDeleted(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.exists(id, lifecycle.Deleted), nil
}
