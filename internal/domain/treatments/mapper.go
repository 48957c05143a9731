package treatments

import (
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/domain/prescriptions"
)

type Record struct {
	TreatmentID       int64      `json:"treatment_id"`
	PatientID         int64      `json:"patient_id" validate:"required,gt=0"`
	OriginAttentionID int64      `json:"origin_attention_id" validate:"required,gt=0"`
	StartDate         time.Time  `json:"start_date" validate:"required"`
	EstimatedEndDate  *time.Time `json:"estimated_end_date,omitempty"`
	RealEndDate       *time.Time `json:"real_end_date,omitempty"`
	Description       string     `json:"description" validate:"required"`
	TreatmentType     string     `json:"treatment_type" validate:"required"`
	TreatmentStatus   string     `json:"treatment_status" validate:"required"`
	Objective         string     `json:"objective" validate:"required"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy *string    `json:"deleted_by,omitempty"`

	// Solo en el detalle.
	Prescriptions []prescriptions.Record `json:"prescriptions,omitempty"`
}

// ToEntity junta los errores de ambos enums y de las fechas antes de responder.
func (r Record) ToEntity() (*Treatment, error) {
	var problems lifecycle.Problems

	typ, err := enums.ParseTreatmentType(r.TreatmentType)
	problems.Add(err)

	status, err := enums.ParseTreatmentStatus(r.TreatmentStatus)
	problems.Add(err)

	if r.EstimatedEndDate != nil && r.EstimatedEndDate.Before(r.StartDate) {
		problems.Addf("estimated_end_date must not be before start_date")
	}
	if r.RealEndDate != nil && r.RealEndDate.Before(r.StartDate) {
		problems.Addf("real_end_date must not be before start_date")
	}

	if err := problems.Err(); err != nil {
		return nil, err
	}

	return &Treatment{
		Record: lifecycle.Record{
			ID:        r.TreatmentID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			IsDeleted: r.IsDeleted,
			DeletedAt: r.DeletedAt,
			DeletedBy: r.DeletedBy,
		},
		PatientID:         r.PatientID,
		OriginAttentionID: r.OriginAttentionID,
		StartDate:         r.StartDate,
		EstimatedEndDate:  r.EstimatedEndDate,
		RealEndDate:       r.RealEndDate,
		Description:       r.Description,
		Type:              typ,
		Status:            status,
		Objective:         r.Objective,
	}, nil
}

func ToRecord(t Treatment) Record {
	return Record{
		TreatmentID:       t.ID,
		PatientID:         t.PatientID,
		OriginAttentionID: t.OriginAttentionID,
		StartDate:         t.StartDate,
		EstimatedEndDate:  t.EstimatedEndDate,
		RealEndDate:       t.RealEndDate,
		Description:       t.Description,
		TreatmentType:     t.Type.String(),
		TreatmentStatus:   t.Status.String(),
		Objective:         t.Objective,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		IsDeleted:         t.IsDeleted,
		DeletedAt:         t.DeletedAt,
		DeletedBy:         t.DeletedBy,
	}
}

func ToRecordWithPrescriptions(t Treatment, items []prescriptions.Prescription) Record {
	out := ToRecord(t)
	out.Prescriptions = prescriptions.ToRecords(items)
	return out
}

func ToRecords(items []Treatment) []Record {
	out := make([]Record, 0, len(items))
	for _, t := range items {
		out = append(out, ToRecord(t))
	}
	return out
}
