package treatments_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mem "vet-clinic-records/internal/adapters/storage/memory"
	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/domain/prescriptions"
	"vet-clinic-records/internal/domain/treatments"
)

// existence es un fake de lifecycle.Existence.
type existence struct {
	active  map[int64]bool
	deleted map[int64]bool
}

func (e existence) ExistsActive(_ context.Context, id int64) (bool, error)  { return e.active[id], nil }
func (e existence) ExistsDeleted(_ context.Context, id int64) (bool, error) { return e.deleted[id], nil }

var start = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func record() treatments.Record {
	return treatments.Record{
		PatientID:         1,
		OriginAttentionID: 10,
		StartDate:         start,
		Description:       "Limpieza dental",
		TreatmentType:     "Surgical",
		TreatmentStatus:   "Planned",
		Objective:         "Remover sarro",
	}
}

func TestRecord_DateOrderAndEnumsReportedTogether(t *testing.T) {
	before := start.AddDate(0, 0, -1)
	in := record()
	in.TreatmentType = "Magic"
	in.EstimatedEndDate = &before
	in.RealEndDate = &before

	tr, err := in.ToEntity()
	var verr *lifecycle.ValidationError
	if tr != nil || !errors.As(err, &verr) || len(verr.Problems) != 3 {
		t.Fatalf("expected 3 problems, got %v", err)
	}
}

func TestToRecordWithPrescriptions(t *testing.T) {
	in := record()
	tr, err := in.ToEntity()
	if err != nil {
		t.Fatal(err)
	}
	rx := []prescriptions.Prescription{{TreatmentID: 1, Dosage: "5", Status: enums.PrescriptionStatusActive}}

	rec := treatments.ToRecordWithPrescriptions(*tr, rx)
	if len(rec.Prescriptions) != 1 || rec.Prescriptions[0].PrescriptionStatus != "Active" {
		t.Fatalf("unexpected prescriptions: %+v", rec.Prescriptions)
	}
	if rec.TreatmentType != "Surgical" || rec.TreatmentStatus != "Planned" {
		t.Fatalf("unexpected enums: %+v", rec)
	}
}

func TestService_PatientReference(t *testing.T) {
	ctx := context.Background()
	pats := existence{active: map[int64]bool{1: true}, deleted: map[int64]bool{2: true}}
	svc := treatments.NewService(mem.NewTreatmentRepo(mem.NewStore()), pats, nil)

	tr, _ := record().ToEntity()

	created, err := svc.Create(ctx, *tr, "vet")
	if err != nil {
		t.Fatalf("create with active patient: %v", err)
	}

	// Un paciente eliminado sigue siendo una referencia válida
	tr.PatientID = 2
	if _, err := svc.Create(ctx, *tr, "vet"); err != nil {
		t.Fatalf("create with deleted patient: %v", err)
	}

	tr.PatientID = 3
	if _, err := svc.Create(ctx, *tr, "vet"); !errors.Is(err, lifecycle.ErrValidation) {
		t.Fatalf("expected validation error for unknown patient, got %v", err)
	}

	upd := created
	upd.Status = enums.TreatmentStatusCompleted
	end := start.AddDate(0, 1, 0)
	upd.RealEndDate = &end
	got, err := svc.Update(ctx, upd, "vet")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != enums.TreatmentStatusCompleted || !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("unexpected update result: %+v", got)
	}
}
