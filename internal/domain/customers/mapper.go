package customers

import (
	"strings"
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/domain/patients"
)

// Record es la forma externa del customer. Los pacientes solo se exponen desde acá
// (el paciente referencia al dueño por id).
type Record struct {
	CustomerID       int64  `json:"customer_id"`
	FirstNames       string `json:"first_names" validate:"required,max=100"`
	PaternalLastName string `json:"paternal_last_name" validate:"required,max=50"`
	MaternalLastName string `json:"maternal_last_name" validate:"required,max=50"`
	DocumentID       string `json:"document_id" validate:"required,max=20"`
	Phone            string `json:"phone" validate:"max=20"`
	Email            string `json:"email" validate:"omitempty,max=100,email"`
	Address          string `json:"address" validate:"max=200"`
	CustomerType     string `json:"customer_type" validate:"required"`
	CustomerStatus   string `json:"customer_status" validate:"required"`
	Notes            string `json:"notes"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy *string    `json:"deleted_by,omitempty"`

	Patients []patients.Record `json:"patients,omitempty"`
}

// ToEntity parsea todos los enums y devuelve todos los errores juntos.
func (r Record) ToEntity() (*Customer, error) {
	var problems lifecycle.Problems

	typ, err := enums.ParseCustomerType(r.CustomerType)
	problems.Add(err)

	status, err := enums.ParseCustomerStatus(r.CustomerStatus)
	problems.Add(err)

	if err := problems.Err(); err != nil {
		return nil, err
	}

	return &Customer{
		Record: lifecycle.Record{
			ID:        r.CustomerID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			IsDeleted: r.IsDeleted,
			DeletedAt: r.DeletedAt,
			DeletedBy: r.DeletedBy,
		},
		FirstNames:       strings.TrimSpace(r.FirstNames),
		PaternalLastName: strings.TrimSpace(r.PaternalLastName),
		MaternalLastName: strings.TrimSpace(r.MaternalLastName),
		DocumentID:       strings.TrimSpace(r.DocumentID),
		Phone:            strings.TrimSpace(r.Phone),
		Email:            strings.TrimSpace(r.Email),
		Address:          r.Address,
		Type:             typ,
		Status:           status,
		Notes:            r.Notes,
	}, nil
}

func ToRecord(c Customer) Record {
	return Record{
		CustomerID:       c.ID,
		FirstNames:       c.FirstNames,
		PaternalLastName: c.PaternalLastName,
		MaternalLastName: c.MaternalLastName,
		DocumentID:       c.DocumentID,
		Phone:            c.Phone,
		Email:            c.Email,
		Address:          c.Address,
		CustomerType:     c.Type.String(),
		CustomerStatus:   c.Status.String(),
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		IsDeleted:        c.IsDeleted,
		DeletedAt:        c.DeletedAt,
		DeletedBy:        c.DeletedBy,
	}
}

// ToRecordWithPatients agrega los pacientes del customer (vista de detalle).
func ToRecordWithPatients(c Customer, pets []patients.Patient, today time.Time) Record {
	out := ToRecord(c)
	out.Patients = patients.ToRecords(pets, today)
	return out
}

func ToRecords(items []Customer) []Record {
	out := make([]Record, 0, len(items))
	for _, c := range items {
		out = append(out, ToRecord(c))
	}
	return out
}
