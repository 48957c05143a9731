package postgres

import (
	"errors"
	"fmt"

	"vet-clinic-records/internal/domain/lifecycle"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraintFields traduce los índices únicos parciales a nombres de campo.
var constraintFields = map[string]string{
	"ux_customers_email_active":             "email",
	"ux_customers_document_id_active":       "document_id",
	"ux_patients_customer_name_active":      "animal_name",
	"ux_medicaments_commercial_name_active": "commercial_name",
}

// mapErr convierte errores del driver a la taxonomía del dominio.
// value, si viene, se usa para describir el valor duplicado.
func mapErr(entity, op string, err error, value func(field string) string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			field, ok := constraintFields[pgErr.ConstraintName]
			if !ok {
				return &lifecycle.ConflictError{Entity: entity, Reason: pgErr.Detail}
			}
			if value == nil {
				return &lifecycle.ConflictError{Entity: entity, Reason: field + " is already used by an active record"}
			}
			return &lifecycle.ConflictError{Entity: entity, Field: field, Value: value(field)}
		case codeForeignKeyViolation:
			return lifecycle.Invalid(fmt.Sprintf("%s references a record that does not exist (%s)", entity, pgErr.ConstraintName))
		}
	}

	return lifecycle.Storage(entity+": "+op, err)
}
