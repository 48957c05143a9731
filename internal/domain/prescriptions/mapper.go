package prescriptions

import (
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
)

// Record expone el tratamiento y el medicamento solo como ids.
type Record struct {
	PrescriptionID      int64      `json:"prescription_id"`
	TreatmentID         int64      `json:"treatment_id" validate:"required,gt=0"`
	MedicamentID        int64      `json:"medicament_id" validate:"required,gt=0"`
	Dosage              string     `json:"dosage" validate:"required,max=50"`
	DosageUnit          string     `json:"dosage_unit" validate:"required,max=20"`
	Frequency           string     `json:"frequency" validate:"required,max=50"`
	AdministrationRoute string     `json:"administration_route" validate:"required,max=50"`
	StartDate           time.Time  `json:"start_date" validate:"required"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	PrescriptionStatus  string     `json:"prescription_status" validate:"required"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy *string    `json:"deleted_by,omitempty"`
}

func (r Record) ToEntity() (*Prescription, error) {
	var problems lifecycle.Problems

	status, err := enums.ParsePrescriptionStatus(r.PrescriptionStatus)
	problems.Add(err)

	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		problems.Addf("end_date must not be before start_date")
	}

	if err := problems.Err(); err != nil {
		return nil, err
	}

	return &Prescription{
		Record: lifecycle.Record{
			ID:        r.PrescriptionID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			IsDeleted: r.IsDeleted,
			DeletedAt: r.DeletedAt,
			DeletedBy: r.DeletedBy,
		},
		TreatmentID:         r.TreatmentID,
		MedicamentID:        r.MedicamentID,
		Dosage:              r.Dosage,
		DosageUnit:          r.DosageUnit,
		Frequency:           r.Frequency,
		AdministrationRoute: r.AdministrationRoute,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Status:              status,
	}, nil
}

func ToRecord(p Prescription) Record {
	return Record{
		PrescriptionID:      p.ID,
		TreatmentID:         p.TreatmentID,
		MedicamentID:        p.MedicamentID,
		Dosage:              p.Dosage,
		DosageUnit:          p.DosageUnit,
		Frequency:           p.Frequency,
		AdministrationRoute: p.AdministrationRoute,
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		PrescriptionStatus:  p.Status.String(),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		IsDeleted:           p.IsDeleted,
		DeletedAt:           p.DeletedAt,
		DeletedBy:           p.DeletedBy,
	}
}

func ToRecords(items []Prescription) []Record {
	out := make([]Record, 0, len(items))
	for _, p := range items {
		out = append(out, ToRecord(p))
	}
	return out
}
