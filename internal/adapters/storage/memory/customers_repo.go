package memory

import (
	"context"
	"strings"

	"vet-clinic-records/internal/domain/customers"
)

var customerKeys = []uniqueKey[customers.Customer]{
	{
		field: "email",
		key:   func(c *customers.Customer) string { return strings.ToLower(strings.TrimSpace(c.Email)) },
		show:  func(c *customers.Customer) string { return c.Email },
	},
	{
		field: "document_id",
		key:   func(c *customers.Customer) string { return strings.TrimSpace(c.DocumentID) },
		show:  func(c *customers.Customer) string { return c.DocumentID },
	},
}

type CustomerRepo struct {
	*repo[customers.Customer, *customers.Customer]
}

func NewCustomerRepo(s *Store) *CustomerRepo {
	return &CustomerRepo{repo: &repo[customers.Customer, *customers.Customer]{s: s, t: s.customers}}
}

func (r *CustomerRepo) EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.taken("email", &customers.Customer{Email: email}, excludeID), nil
}

func (r *CustomerRepo) DocumentIDExists(ctx context.Context, documentID string, excludeID *int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.taken("document_id", &customers.Customer{DocumentID: documentID}, excludeID), nil
}

var _ customers.Repository = (*CustomerRepo)(nil)
