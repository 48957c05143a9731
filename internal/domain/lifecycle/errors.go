package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// ValidationError lleva la lista completa de problemas de campo, nunca solo el primero.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid arma un ValidationError a partir de mensajes sueltos.
func Invalid(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

// Problems acumula errores de campo para devolverlos todos juntos.
type Problems []string

func (p *Problems) Add(err error) {
	if err != nil {
		*p = append(*p, err.Error())
	}
}

func (p *Problems) Addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

// Err devuelve nil si no hubo problemas.
func (p Problems) Err() error {
	if len(p) == 0 {
		return nil
	}
	out := make([]string, len(p))
	copy(out, p)
	return &ValidationError{Problems: out}
}

// Merge junta los problemas de varios ValidationError en uno solo, en orden.
// Un error que no sea de validación se devuelve tal cual y tiene prioridad.
func Merge(errs ...error) error {
	var problems Problems
	for _, err := range errs {
		if err == nil {
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		problems = append(problems, verr.Problems...)
	}
	return problems.Err()
}

// NotFoundError indica que el id no existe en la partición esperada.
type NotFoundError struct {
	Entity    string
	ID        int64
	Partition Partition
}

func (e *NotFoundError) Error() string {
	if e.Partition == "" {
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s %d not found among %s records", e.Entity, e.ID, e.Partition)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError: un probe de unicidad o una constraint rechazó el valor.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s with %s '%s' already exists", e.Entity, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// StorageError envuelve fallas inesperadas de la capa de persistencia.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage envuelve err como StorageError salvo que ya sea un error tipado del dominio.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, ErrValidation) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
