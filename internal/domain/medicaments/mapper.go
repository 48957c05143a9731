package medicaments

import (
	"strings"
	"time"

	"vet-clinic-records/internal/domain/lifecycle"
)

type Record struct {
	MedicamentID     int64  `json:"medicament_id"`
	CommercialName   string `json:"commercial_name" validate:"required,max=200"`
	ActiveIngredient string `json:"active_ingredient" validate:"required,max=200"`
	Presentation     string `json:"presentation" validate:"required,max=100"`
	Laboratory       string `json:"laboratory" validate:"required,max=150"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy *string    `json:"deleted_by,omitempty"`
}

// ToEntity no tiene enums que parsear; mantiene la misma firma que el resto de los mappers.
func (r Record) ToEntity() (*Medicament, error) {
	return &Medicament{
		Record: lifecycle.Record{
			ID:        r.MedicamentID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			IsDeleted: r.IsDeleted,
			DeletedAt: r.DeletedAt,
			DeletedBy: r.DeletedBy,
		},
		CommercialName:   strings.TrimSpace(r.CommercialName),
		ActiveIngredient: r.ActiveIngredient,
		Presentation:     r.Presentation,
		Laboratory:       r.Laboratory,
	}, nil
}

func ToRecord(m Medicament) Record {
	return Record{
		MedicamentID:     m.ID,
		CommercialName:   m.CommercialName,
		ActiveIngredient: m.ActiveIngredient,
		Presentation:     m.Presentation,
		Laboratory:       m.Laboratory,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		IsDeleted:        m.IsDeleted,
		DeletedAt:        m.DeletedAt,
		DeletedBy:        m.DeletedBy,
	}
}

func ToRecords(items []Medicament) []Record {
	out := make([]Record, 0, len(items))
	for _, m := range items {
		out = append(out, ToRecord(m))
	}
	return out
}
