package memory

import (
	"context"
	"strings"

	"vet-clinic-records/internal/domain/medicaments"
)

var medicamentKeys = []uniqueKey[medicaments.Medicament]{
	{
		field: "commercial_name",
		key:   func(m *medicaments.Medicament) string { return strings.ToLower(strings.TrimSpace(m.CommercialName)) },
		show:  func(m *medicaments.Medicament) string { return m.CommercialName },
	},
}

type MedicamentRepo struct {
	*repo[medicaments.Medicament, *medicaments.Medicament]
}

func NewMedicamentRepo(s *Store) *MedicamentRepo {
	return &MedicamentRepo{repo: &repo[medicaments.Medicament, *medicaments.Medicament]{s: s, t: s.medicaments}}
}

func (r *MedicamentRepo) CommercialNameExists(ctx context.Context, name string, excludeID *int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.t.taken("commercial_name", &medicaments.Medicament{CommercialName: name}, excludeID), nil
}

var _ medicaments.Repository = (*MedicamentRepo)(nil)
