package prescriptions

import (
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
)

// Prescription es un medicamento indicado dentro de un tratamiento.
type Prescription struct {
	lifecycle.Record

	TreatmentID  int64
	MedicamentID int64

	Dosage              string
	DosageUnit          string
	Frequency           string
	AdministrationRoute string

	StartDate time.Time
	EndDate   *time.Time

	Status enums.PrescriptionStatus
}
