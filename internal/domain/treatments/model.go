package treatments

import (
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
)

// Treatment agrupa las prescripciones indicadas a un paciente a partir de una atención.
type Treatment struct {
	lifecycle.Record

	PatientID         int64
	OriginAttentionID int64

	StartDate        time.Time
	EstimatedEndDate *time.Time
	RealEndDate      *time.Time

	Description string
	Type        enums.TreatmentType
	Status      enums.TreatmentStatus
	Objective   string
}
