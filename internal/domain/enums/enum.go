// Package enums define los enumerados cerrados del dominio. Se persisten como enteros
// y se intercambian como texto; cada uno tiene una única función de parseo.
package enums

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidValueError es el resultado "inválido" del parseo: nombra el valor
// recibido y lista todos los valores permitidos.
type InvalidValueError struct {
	Enum    string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid %s: '%s'. Valid values are: %s", e.Enum, e.Value, strings.Join(e.Allowed, ", "))
}

// Enum es la tabla nombre<->valor de un enumerado.
type Enum[T ~int] struct {
	name   string
	values []T
	names  map[T]string
}

func define[T ~int](name string, names map[T]string) Enum[T] {
	values := make([]T, 0, len(names))
	for v := range names {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return Enum[T]{name: name, values: values, names: names}
}

func (e Enum[T]) Name() string { return e.name }

// Parse compara sin distinguir mayúsculas contra los nombres definidos.
func (e Enum[T]) Parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	for _, v := range e.values {
		if strings.EqualFold(e.names[v], s) {
			return v, nil
		}
	}
	var zero T
	return zero, &InvalidValueError{Enum: e.name, Value: s, Allowed: e.Names()}
}

func (e Enum[T]) Names() []string {
	out := make([]string, 0, len(e.values))
	for _, v := range e.values {
		out = append(out, e.names[v])
	}
	return out
}

func (e Enum[T]) Valid(v T) bool {
	_, ok := e.names[v]
	return ok
}

func (e Enum[T]) Format(v T) string {
	if n, ok := e.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", e.name, int(v))
}
