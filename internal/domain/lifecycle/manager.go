package lifecycle

import (
	"context"
	"time"
)

type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionRestored Action = "restored"
)

// Event describe una mutación exitosa sobre una entidad.
type Event struct {
	Entity string
	Action Action
	ID     int64
	Actor  string
	At     time.Time
}

// Hook recibe los eventos del ciclo de vida (métricas, mensajería, logs).
// Puede ser nil.
type Hook func(ctx context.Context, ev Event)

// Manager implementa la parte del caso de uso que es idéntica para todas las entidades:
// distinguir "no existe" de "existe en la otra partición" y emitir eventos.
// Los services de cada módulo lo embeben y agregan sus reglas de unicidad y referencias.
type Manager[E any, P Entity[E]] struct {
	entity string
	repo   Repository[E]
	hook   Hook
	now    func() time.Time
}

func NewManager[E any, P Entity[E]](entity string, repo Repository[E], hook Hook) *Manager[E, P] {
	return &Manager[E, P]{
		entity: entity,
		repo:   repo,
		hook:   hook,
		now:    time.Now,
	}
}

func (m *Manager[E, P]) EntityName() string { return m.entity }

func (m *Manager[E, P]) ListActive(ctx context.Context) ([]E, error) {
	return m.repo.ListActive(ctx)
}

func (m *Manager[E, P]) ListDeleted(ctx context.Context) ([]E, error) {
	return m.repo.ListDeleted(ctx)
}

func (m *Manager[E, P]) Get(ctx context.Context, id int64) (E, error) {
	return m.repo.GetActiveByID(ctx, id)
}

func (m *Manager[E, P]) GetDeleted(ctx context.Context, id int64) (E, error) {
	return m.repo.GetDeletedByID(ctx, id)
}

// RequireActive devuelve *NotFoundError si el id no está entre los activos.
func (m *Manager[E, P]) RequireActive(ctx context.Context, id int64) error {
	ok, err := m.repo.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: m.entity, ID: id, Partition: Active}
	}
	return nil
}

func (m *Manager[E, P]) Create(ctx context.Context, e E, actor string) (E, error) {
	created, err := m.repo.Create(ctx, e)
	if err != nil {
		var zero E
		return zero, err
	}
	m.Emit(ctx, ActionCreated, P(&created).Base().ID, actor)
	return created, nil
}

func (m *Manager[E, P]) Update(ctx context.Context, e E, actor string) (E, error) {
	updated, err := m.repo.Update(ctx, e)
	if err != nil {
		var zero E
		return zero, err
	}
	m.Emit(ctx, ActionUpdated, P(&updated).Base().ID, actor)
	return updated, nil
}

// Delete marca como eliminado. Si ya estaba eliminado responde ConflictError;
// si no existe en ninguna partición, NotFoundError.
func (m *Manager[E, P]) Delete(ctx context.Context, id int64, by string) error {
	ok, err := m.repo.SoftDelete(ctx, id, by)
	if err != nil {
		return err
	}
	if ok {
		m.Emit(ctx, ActionDeleted, id, by)
		return nil
	}

	deleted, err := m.repo.ExistsDeleted(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		return &ConflictError{Entity: m.entity, Reason: "record is already deleted"}
	}
	return &NotFoundError{Entity: m.entity, ID: id}
}

// Restore es el espejo de Delete.
func (m *Manager[E, P]) Restore(ctx context.Context, id int64, actor string) error {
	ok, err := m.repo.Restore(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		m.Emit(ctx, ActionRestored, id, actor)
		return nil
	}

	active, err := m.repo.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return &ConflictError{Entity: m.entity, Reason: "record is not deleted"}
	}
	return &NotFoundError{Entity: m.entity, ID: id}
}

// Emit notifica al hook; lo usan también los services para mutaciones propias (ej. foto).
func (m *Manager[E, P]) Emit(ctx context.Context, action Action, id int64, actor string) {
	if m.hook == nil {
		return
	}
	m.hook(ctx, Event{
		Entity: m.entity,
		Action: action,
		ID:     id,
		Actor:  actor,
		At:     m.now().UTC(),
	})
}
