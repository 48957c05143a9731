package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/lifecycle"
)

// table resuelve el ciclo de vida común sobre una tabla con las columnas de auditoría
// (created_at, updated_at, is_deleted, deleted_at, deleted_by). Cada repo concreto
// declara sus columnas de negocio y cómo leerlas/escribirlas.
type table[E any, P lifecycle.Entity[E]] struct {
	db     *sql.DB
	entity string
	name   string

	columns []string
	// values devuelve los valores de negocio en el mismo orden que columns.
	values func(e *E) []any
	// targets devuelve los destinos de Scan en el mismo orden que columns.
	targets func(e *E) []any

	now func() time.Time
}

func (t *table[E, P]) selectList(alias string) string {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	cols := make([]string, 0, len(t.columns)+6)
	cols = append(cols, prefix+"id")
	for _, c := range t.columns {
		cols = append(cols, prefix+c)
	}
	for _, c := range []string{"created_at", "updated_at", "is_deleted", "deleted_at", "deleted_by"} {
		cols = append(cols, prefix+c)
	}
	return strings.Join(cols, ", ")
}

type scanner interface {
	Scan(dest ...any) error
}

// scan lee una fila en el orden de selectList. extra son columnas adicionales al final.
func (t *table[E, P]) scan(row scanner, extra ...any) (E, error) {
	var e E
	b := P(&e).Base()

	dest := make([]any, 0, len(t.columns)+6+len(extra))
	dest = append(dest, &b.ID)
	dest = append(dest, t.targets(&e)...)
	dest = append(dest, &b.CreatedAt, &b.UpdatedAt, &b.IsDeleted, &b.DeletedAt, &b.DeletedBy)
	dest = append(dest, extra...)

	err := row.Scan(dest...)
	return e, err
}

func (t *table[E, P]) query(ctx context.Context, op, q string, args ...any) ([]E, error) {
	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr(t.entity, op, err, nil)
	}
	defer rows.Close()

	out := make([]E, 0)
	for rows.Next() {
		e, err := t.scan(rows)
		if err != nil {
			return nil, mapErr(t.entity, op, err, nil)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(t.entity, op, err, nil)
	}
	return out, nil
}

func (t *table[E, P]) ListActive(ctx context.Context) ([]E, error) {
	return t.query(ctx, "list active", fmt.Sprintf(
		`SELECT %s FROM %s WHERE is_deleted = FALSE ORDER BY id`, t.selectList(""), t.name))
}

func (t *table[E, P]) ListDeleted(ctx context.Context) ([]E, error) {
	return t.query(ctx, "list deleted", fmt.Sprintf(
		`SELECT %s FROM %s WHERE is_deleted = TRUE ORDER BY deleted_at, id`, t.selectList(""), t.name))
}

func (t *table[E, P]) get(ctx context.Context, id int64, part lifecycle.Partition) (E, error) {
	row := t.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM %s WHERE id = $1 AND is_deleted = $2`, t.selectList(""), t.name),
		id, part == lifecycle.Deleted)

	e, err := t.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		var zero E
		return zero, &lifecycle.NotFoundError{Entity: t.entity, ID: id, Partition: part}
	}
	if err != nil {
		var zero E
		return zero, mapErr(t.entity, "get", err, nil)
	}
	return e, nil
}

func (t *table[E, P]) GetActiveByID(ctx context.Context, id int64) (E, error) {
	return t.get(ctx, id, lifecycle.Active)
}

func (t *table[E, P]) GetDeletedByID(ctx context.Context, id int64) (E, error) {
	return t.get(ctx, id, lifecycle.Deleted)
}

func (t *table[E, P]) Create(ctx context.Context, e E) (E, error) {
	P(&e).Base().MarkCreated(t.now().UTC())

	args := t.values(&e)
	placeholders := make([]string, 0, len(args)+1)
	for i := range args {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	args = append(args, P(&e).Base().CreatedAt)
	placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))

	row := t.db.QueryRowContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (%s, created_at, is_deleted) VALUES (%s, FALSE) RETURNING %s`,
		t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "), t.selectList("")),
		args...)

	created, err := t.scan(row)
	if err != nil {
		var zero E
		return zero, mapErr(t.entity, "create", err, t.describe(&e))
	}
	return created, nil
}

// Update solo escribe columnas de negocio y updated_at; nunca toca las de borrado.
func (t *table[E, P]) Update(ctx context.Context, e E) (E, error) {
	id := P(&e).Base().ID

	args := []any{id}
	sets := make([]string, 0, len(t.columns)+1)
	for i, v := range t.values(&e) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", t.columns[i], len(args)))
	}
	args = append(args, t.now().UTC())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	row := t.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE %s SET %s WHERE id = $1 AND is_deleted = FALSE RETURNING %s`,
		t.name, strings.Join(sets, ", "), t.selectList("")),
		args...)

	updated, err := t.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		var zero E
		return zero, &lifecycle.NotFoundError{Entity: t.entity, ID: id, Partition: lifecycle.Active}
	}
	if err != nil {
		var zero E
		return zero, mapErr(t.entity, "update", err, t.describe(&e))
	}
	return updated, nil
}

func (t *table[E, P]) SoftDelete(ctx context.Context, id int64, by string) (bool, error) {
	res, err := t.db.ExecContext(ctx, fmt.Sprintf(
		`UPDATE %s SET is_deleted = TRUE, deleted_at = $2, deleted_by = $3
		 WHERE id = $1 AND is_deleted = FALSE`, t.name),
		id, t.now().UTC(), by)
	return affected(t.entity, "soft delete", res, err)
}

// Restore puede chocar con un índice único parcial si otro activo tomó la clave.
func (t *table[E, P]) Restore(ctx context.Context, id int64) (bool, error) {
	res, err := t.db.ExecContext(ctx, fmt.Sprintf(
		`UPDATE %s SET is_deleted = FALSE, deleted_at = NULL, deleted_by = NULL, updated_at = $2
		 WHERE id = $1 AND is_deleted = TRUE`, t.name),
		id, t.now().UTC())
	return affected(t.entity, "restore", res, err)
}

func affected(entity, op string, res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, mapErr(entity, op, err, nil)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapErr(entity, op, err, nil)
	}
	return n > 0, nil
}

func (t *table[E, P]) exists(ctx context.Context, id int64, deleted bool) (bool, error) {
	var ok bool
	err := t.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1 AND is_deleted = $2)`, t.name),
		id, deleted).Scan(&ok)
	if err != nil {
		return false, mapErr(t.entity, "exists", err, nil)
	}
	return ok, nil
}

func (t *table[E, P]) ExistsActive(ctx context.Context, id int64) (bool, error) {
	return t.exists(ctx, id, false)
}

func (t *table[E, P]) ExistsDeleted(ctx context.Context, id int64) (bool, error) {
	return t.exists(ctx, id, true)
}

// probe responde si hay un activo que cumpla cond, ignorando excludeID.
// cond usa $1..$n con args; excludeID va al final.
func (t *table[E, P]) probe(ctx context.Context, cond string, excludeID *int64, args ...any) (bool, error) {
	args = append(args, excludeID)
	n := len(args)

	var ok bool
	err := t.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE is_deleted = FALSE AND %s AND ($%d::bigint IS NULL OR id <> $%d))`,
		t.name, cond, n, n),
		args...).Scan(&ok)
	if err != nil {
		return false, mapErr(t.entity, "probe", err, nil)
	}
	return ok, nil
}

// describe arma el lookup de valores para los mensajes de conflicto.
func (t *table[E, P]) describe(e *E) func(field string) string {
	values := t.values(e)
	return func(field string) string {
		for i, c := range t.columns {
			if c == field {
				return fmt.Sprint(values[i])
			}
		}
		return ""
	}
}
