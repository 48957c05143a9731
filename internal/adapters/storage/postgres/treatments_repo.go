package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vet-clinic-records/internal/domain/prescriptions"
	"vet-clinic-records/internal/domain/treatments"
)

type TreatmentRepo struct {
	*table[treatments.Treatment, *treatments.Treatment]
}

func NewTreatmentRepo(db *sql.DB) *TreatmentRepo {
	return &TreatmentRepo{table: &table[treatments.Treatment, *treatments.Treatment]{
		db:     db,
		entity: treatments.EntityName,
		name:   "treatments",
		columns: []string{
			"patient_id", "origin_attention_id",
			"start_date", "estimated_end_date", "real_end_date",
			"description", "treatment_type", "treatment_status", "objective",
		},
		values: func(t *treatments.Treatment) []any {
			return []any{
				t.PatientID, t.OriginAttentionID,
				t.StartDate, t.EstimatedEndDate, t.RealEndDate,
				t.Description, int64(t.Type), int64(t.Status), t.Objective,
			}
		},
		targets: func(t *treatments.Treatment) []any {
			return []any{
				&t.PatientID, &t.OriginAttentionID,
				&t.StartDate, &t.EstimatedEndDate, &t.RealEndDate,
				&t.Description, &t.Type, &t.Status, &t.Objective,
			}
		},
		now: time.Now,
	}}
}

type PrescriptionRepo struct {
	*table[prescriptions.Prescription, *prescriptions.Prescription]
}

func NewPrescriptionRepo(db *sql.DB) *PrescriptionRepo {
	return &PrescriptionRepo{table: &table[prescriptions.Prescription, *prescriptions.Prescription]{
		db:     db,
		entity: prescriptions.EntityName,
		name:   "medicament_prescriptions",
		columns: []string{
			"treatment_id", "medicament_id",
			"dosage", "dosage_unit", "frequency", "administration_route",
			"start_date", "end_date", "prescription_status",
		},
		values: func(p *prescriptions.Prescription) []any {
			return []any{
				p.TreatmentID, p.MedicamentID,
				p.Dosage, p.DosageUnit, p.Frequency, p.AdministrationRoute,
				p.StartDate, p.EndDate, int64(p.Status),
			}
		},
		targets: func(p *prescriptions.Prescription) []any {
			return []any{
				&p.TreatmentID, &p.MedicamentID,
				&p.Dosage, &p.DosageUnit, &p.Frequency, &p.AdministrationRoute,
				&p.StartDate, &p.EndDate, &p.Status,
			}
		},
		now: time.Now,
	}}
}

func (r *PrescriptionRepo) ListActiveByTreatment(ctx context.Context, treatmentID int64) ([]prescriptions.Prescription, error) {
	return r.query(ctx, "list by treatment", fmt.Sprintf(
		`SELECT %s FROM %s WHERE treatment_id = $1 AND is_deleted = FALSE ORDER BY start_date, id`,
		r.selectList(""), r.name), treatmentID)
}

var (
	_ treatments.Repository    = (*TreatmentRepo)(nil)
	_ prescriptions.Repository = (*PrescriptionRepo)(nil)
)
