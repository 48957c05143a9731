package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/customers"
)

type CustomerRepo struct {
	*table[customers.Customer, *customers.Customer]
}

func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{table: &table[customers.Customer, *customers.Customer]{
		db:     db,
		entity: customers.EntityName,
		name:   "customers",
		columns: []string{
			"first_names", "paternal_last_name", "maternal_last_name",
			"document_id", "phone", "email", "address",
			"customer_type", "customer_status", "notes",
		},
		values: func(c *customers.Customer) []any {
			return []any{
				c.FirstNames, c.PaternalLastName, c.MaternalLastName,
				c.DocumentID, c.Phone, c.Email, c.Address,
				int64(c.Type), int64(c.Status), c.Notes,
			}
		},
		targets: func(c *customers.Customer) []any {
			return []any{
				&c.FirstNames, &c.PaternalLastName, &c.MaternalLastName,
				&c.DocumentID, &c.Phone, &c.Email, &c.Address,
				&c.Type, &c.Status, &c.Notes,
			}
		},
		now: time.Now,
	}}
}

// EmailExists: un email vacío nunca choca (el índice excluye '').
func (r *CustomerRepo) EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, nil
	}
	return r.probe(ctx, "lower(email) = lower($1)", excludeID, email)
}

func (r *CustomerRepo) DocumentIDExists(ctx context.Context, documentID string, excludeID *int64) (bool, error) {
	return r.probe(ctx, "document_id = $1", excludeID, strings.TrimSpace(documentID))
}

var _ customers.Repository = (*CustomerRepo)(nil)
