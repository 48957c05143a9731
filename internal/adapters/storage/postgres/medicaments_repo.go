package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/medicaments"
)

type MedicamentRepo struct {
	*table[medicaments.Medicament, *medicaments.Medicament]
}

func NewMedicamentRepo(db *sql.DB) *MedicamentRepo {
	return &MedicamentRepo{table: &table[medicaments.Medicament, *medicaments.Medicament]{
		db:      db,
		entity:  medicaments.EntityName,
		name:    "medicaments",
		columns: []string{"commercial_name", "active_ingredient", "presentation", "laboratory"},
		values: func(m *medicaments.Medicament) []any {
			return []any{m.CommercialName, m.ActiveIngredient, m.Presentation, m.Laboratory}
		},
		targets: func(m *medicaments.Medicament) []any {
			return []any{&m.CommercialName, &m.ActiveIngredient, &m.Presentation, &m.Laboratory}
		},
		now: time.Now,
	}}
}

func (r *MedicamentRepo) CommercialNameExists(ctx context.Context, name string, excludeID *int64) (bool, error) {
	return r.probe(ctx, "lower(commercial_name) = lower($1)", excludeID, strings.TrimSpace(name))
}

var _ medicaments.Repository = (*MedicamentRepo)(nil)
