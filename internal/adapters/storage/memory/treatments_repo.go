package memory

import (
	"context"
	"sort"

	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/domain/prescriptions"
	"vet-clinic-records/internal/domain/treatments"
)

type TreatmentRepo struct {
	*repo[treatments.Treatment, *treatments.Treatment]
}

func NewTreatmentRepo(s *Store) *TreatmentRepo {
	return &TreatmentRepo{repo: &repo[treatments.Treatment, *treatments.Treatment]{s: s, t: s.treatments}}
}

type PrescriptionRepo struct {
	*repo[prescriptions.Prescription, *prescriptions.Prescription]
}

func NewPrescriptionRepo(s *Store) *PrescriptionRepo {
	return &PrescriptionRepo{repo: &repo[prescriptions.Prescription, *prescriptions.Prescription]{s: s, t: s.prescriptions}}
}

func (r *PrescriptionRepo) ListActiveByTreatment(ctx context.Context, treatmentID int64) ([]prescriptions.Prescription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]prescriptions.Prescription, 0)
	for _, p := range r.t.list(lifecycle.Active) {
		if p.TreatmentID == treatmentID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

var (
	_ treatments.Repository    = (*TreatmentRepo)(nil)
	_ prescriptions.Repository = (*PrescriptionRepo)(nil)
)
