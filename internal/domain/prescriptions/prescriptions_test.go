package prescriptions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mem "vet-clinic-records/internal/adapters/storage/memory"
	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/domain/prescriptions"
)

type existence struct {
	active  map[int64]bool
	deleted map[int64]bool
}

func (e existence) ExistsActive(_ context.Context, id int64) (bool, error)  { return e.active[id], nil }
func (e existence) ExistsDeleted(_ context.Context, id int64) (bool, error) { return e.deleted[id], nil }

var start = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func prescription(treatmentID, medicamentID int64, startOffset int) prescriptions.Prescription {
	return prescriptions.Prescription{
		TreatmentID:         treatmentID,
		MedicamentID:        medicamentID,
		Dosage:              "1",
		DosageUnit:          "ml",
		Frequency:           "cada 12 horas",
		AdministrationRoute: "oral",
		StartDate:           start.AddDate(0, 0, startOffset),
		Status:              enums.PrescriptionStatusActive,
	}
}

func TestRecord_EndBeforeStartAndStatus(t *testing.T) {
	end := start.AddDate(0, 0, -3)
	in := prescriptions.Record{
		TreatmentID:         1,
		MedicamentID:        1,
		StartDate:           start,
		EndDate:             &end,
		PrescriptionStatus:  "Paused",
		Dosage:              "1",
		DosageUnit:          "ml",
		Frequency:           "diaria",
		AdministrationRoute: "oral",
	}
	p, err := in.ToEntity()
	var verr *lifecycle.ValidationError
	if p != nil || !errors.As(err, &verr) || len(verr.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", err)
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	end := start.AddDate(0, 0, 10)
	in := prescriptions.Record{
		PrescriptionID:      7,
		TreatmentID:         1,
		MedicamentID:        2,
		Dosage:              "2.5",
		DosageUnit:          "mg",
		Frequency:           "diaria",
		AdministrationRoute: "subcutánea",
		StartDate:           start,
		EndDate:             &end,
		PrescriptionStatus:  "suspended",
	}
	p, err := in.ToEntity()
	if err != nil {
		t.Fatal(err)
	}
	want := in
	want.PrescriptionStatus = "Suspended"
	if got := prescriptions.ToRecord(*p); got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestService_ReferencesAndListing(t *testing.T) {
	ctx := context.Background()
	tx := existence{active: map[int64]bool{1: true}, deleted: map[int64]bool{2: true}}
	meds := existence{active: map[int64]bool{5: true}}
	svc := prescriptions.NewService(mem.NewPrescriptionRepo(mem.NewStore()), tx, meds, nil)

	_, err := svc.Create(ctx, prescription(9, 9, 0), "vet")
	var verr *lifecycle.ValidationError
	if !errors.As(err, &verr) || len(verr.Problems) != 2 {
		t.Fatalf("expected both references reported, got %v", err)
	}

	late, err := svc.Create(ctx, prescription(1, 5, 5), "vet")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, prescription(1, 5, 0), "vet"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, prescription(2, 5, 0), "vet"); err != nil {
		t.Fatalf("deleted treatment is still a valid reference: %v", err)
	}

	if err := svc.Delete(ctx, late.ID, "vet"); err != nil {
		t.Fatal(err)
	}
	items, err := svc.ListByTreatment(ctx, 1)
	if err != nil || len(items) != 1 || !items[0].StartDate.Equal(start) {
		t.Fatalf("unexpected listing: %+v %v", items, err)
	}

	// Listar exige tratamiento activo
	_, err = svc.ListByTreatment(ctx, 2)
	var nf *lifecycle.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "treatment" {
		t.Fatalf("expected treatment not found, got %v", err)
	}
}
