package patients

import (
	"strings"
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
)

// Record es la forma externa del paciente. Los enums viajan como texto.
type Record struct {
	PatientID      int64     `json:"patient_id"`
	AnimalName     string    `json:"animal_name" validate:"required,max=100"`
	Species        string    `json:"species" validate:"required,max=50"`
	Breed          string    `json:"breed" validate:"max=50"`
	Gender         string    `json:"gender" validate:"required"`
	BirthDate      time.Time `json:"birth_date"`
	Age            int       `json:"age"`
	Weight         float64   `json:"weight" validate:"gte=0,lte=999.99"`
	Classification string    `json:"classification" validate:"required"`
	PhotoURL       string    `json:"photo_url" validate:"max=200"`
	RegisteredAt   time.Time `json:"registered_at"`
	RegisteredBy   string    `json:"registered_by" validate:"max=50"`
	CustomerID     int64     `json:"customer_id" validate:"required,gt=0"`

	Owner *OwnerRecord `json:"owner,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy *string    `json:"deleted_by,omitempty"`
}

// OwnerRecord es la proyección desnormalizada del dueño (sin sus pacientes).
type OwnerRecord struct {
	CustomerID int64  `json:"customer_id"`
	FullName   string `json:"full_name"`
	DocumentID string `json:"document_id"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

// ToEntity intenta parsear todos los enums antes de decidir; devuelve todos los errores juntos.
// Age es de solo salida y se ignora.
func (r Record) ToEntity() (*Patient, error) {
	var problems lifecycle.Problems

	gender, err := enums.ParseGender(r.Gender)
	problems.Add(err)

	classification, err := enums.ParseClassification(r.Classification)
	problems.Add(err)

	if err := problems.Err(); err != nil {
		return nil, err
	}

	return &Patient{
		Record: lifecycle.Record{
			ID:        r.PatientID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			IsDeleted: r.IsDeleted,
			DeletedAt: r.DeletedAt,
			DeletedBy: r.DeletedBy,
		},
		AnimalName:     strings.TrimSpace(r.AnimalName),
		Species:        strings.TrimSpace(r.Species),
		Breed:          strings.TrimSpace(r.Breed),
		Gender:         gender,
		BirthDate:      CalendarDate(r.BirthDate),
		Weight:         r.Weight,
		Classification: classification,
		PhotoURL:       r.PhotoURL,
		RegisteredAt:   r.RegisteredAt,
		RegisteredBy:   r.RegisteredBy,
		CustomerID:     r.CustomerID,
	}, nil
}

// ToRecord es una proyección pura; today solo se usa para la edad.
func ToRecord(p Patient, today time.Time) Record {
	out := Record{
		PatientID:      p.ID,
		AnimalName:     p.AnimalName,
		Species:        p.Species,
		Breed:          p.Breed,
		Gender:         p.Gender.String(),
		BirthDate:      p.BirthDate,
		Age:            p.AgeAt(today),
		Weight:         p.Weight,
		Classification: p.Classification.String(),
		PhotoURL:       p.PhotoURL,
		RegisteredAt:   p.RegisteredAt,
		RegisteredBy:   p.RegisteredBy,
		CustomerID:     p.CustomerID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		IsDeleted:      p.IsDeleted,
		DeletedAt:      p.DeletedAt,
		DeletedBy:      p.DeletedBy,
	}
	if p.Owner != nil {
		out.Owner = &OwnerRecord{
			CustomerID: p.Owner.CustomerID,
			FullName:   p.Owner.FullName(),
			DocumentID: p.Owner.DocumentID,
			Phone:      p.Owner.Phone,
			Email:      p.Owner.Email,
			Status:     p.Owner.Status.String(),
		}
	}
	return out
}

func ToRecords(items []Patient, today time.Time) []Record {
	out := make([]Record, 0, len(items))
	for _, p := range items {
		out = append(out, ToRecord(p, today))
	}
	return out
}
