package patients

import (
	"strings"
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SearchParams son los filtros tal como llegan del exterior. Todos opcionales.
type SearchParams struct {
	AnimalName      string
	OwnerName       string
	OwnerDocumentID string
	Species         string
	Breed           string
	MinAge          *int
	MaxAge          *int
	OwnerStatus     string
	Page            int
	PageSize        int
}

// Normalize completa page y page_size cuando no se indicaron (cero). Solo la usa
// Query para llamadas internas; Service.Search valida los valores tal como llegan.
func (p SearchParams) Normalize() SearchParams {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Validate junta todos los problemas de los parámetros.
func (p SearchParams) Validate() error {
	var problems lifecycle.Problems

	if p.Page < 1 {
		problems.Addf("page must be greater than or equal to 1")
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		problems.Addf("page_size must be between 1 and %d", MaxPageSize)
	}
	if p.MinAge != nil && *p.MinAge < 0 {
		problems.Addf("min_age must not be negative")
	}
	if p.MaxAge != nil && *p.MaxAge < 0 {
		problems.Addf("max_age must not be negative")
	}
	if p.MinAge != nil && p.MaxAge != nil && *p.MinAge > *p.MaxAge {
		problems.Addf("min_age must not be greater than max_age")
	}
	if strings.TrimSpace(p.OwnerStatus) != "" {
		_, err := enums.ParseCustomerStatus(p.OwnerStatus)
		problems.Add(err)
	}

	return problems.Err()
}

// Query traduce los parámetros a la consulta del motor. Un status que no parsea
// se ignora acá: validarlo es responsabilidad de quien llama.
func (p SearchParams) Query(today time.Time) SearchQuery {
	p = p.Normalize()
	today = dateOnly(today)

	q := SearchQuery{
		AnimalName:      strings.TrimSpace(p.AnimalName),
		OwnerName:       strings.TrimSpace(p.OwnerName),
		OwnerDocumentID: strings.TrimSpace(p.OwnerDocumentID),
		Species:         strings.TrimSpace(p.Species),
		Breed:           strings.TrimSpace(p.Breed),
		Offset:          (p.Page - 1) * p.PageSize,
		Limit:           p.PageSize,
	}

	if p.MinAge != nil {
		t := today.AddDate(-*p.MinAge, 0, 0)
		q.BornOnOrBefore = &t
	}
	if p.MaxAge != nil {
		t := today.AddDate(-(*p.MaxAge + 1), 0, 0)
		q.BornAfter = &t
	}
	if s := strings.TrimSpace(p.OwnerStatus); s != "" {
		if st, err := enums.ParseCustomerStatus(s); err == nil {
			q.OwnerStatus = &st
		}
	}

	return q
}

// SearchQuery es la consulta ya resuelta que ejecutan los adapters.
type SearchQuery struct {
	AnimalName      string // substring, sin mayúsculas
	OwnerName       string // substring sobre "nombres materno paterno" o "nombres paterno"
	OwnerDocumentID string // substring
	Species         string // igualdad sin mayúsculas
	Breed           string // igualdad sin mayúsculas

	BornOnOrBefore *time.Time // min_age
	BornAfter      *time.Time // max_age

	OwnerStatus *enums.CustomerStatus

	Offset int
	Limit  int
}

type SearchResult struct {
	Items      []Patient
	TotalCount int
}

// Matches evalúa los filtros sobre un paciente con Owner poblado.
// Lo usa el store en memoria; Postgres lo expresa en SQL.
func (q SearchQuery) Matches(p Patient) bool {
	if p.IsDeleted || p.Owner == nil {
		return false
	}
	o := p.Owner

	if q.AnimalName != "" && !containsFold(p.AnimalName, q.AnimalName) {
		return false
	}
	if q.OwnerName != "" {
		full := o.FirstNames + " " + o.MaternalLastName + " " + o.PaternalLastName
		short := o.FirstNames + " " + o.PaternalLastName
		if !containsFold(full, q.OwnerName) && !containsFold(short, q.OwnerName) {
			return false
		}
	}
	if q.OwnerDocumentID != "" && !strings.Contains(o.DocumentID, q.OwnerDocumentID) {
		return false
	}
	if q.Species != "" && !strings.EqualFold(p.Species, q.Species) {
		return false
	}
	if q.Breed != "" && !strings.EqualFold(p.Breed, q.Breed) {
		return false
	}
	birth := CalendarDate(p.BirthDate)
	if q.BornOnOrBefore != nil && birth.After(*q.BornOnOrBefore) {
		return false
	}
	if q.BornAfter != nil && !birth.After(*q.BornAfter) {
		return false
	}
	if q.OwnerStatus != nil && o.Status != *q.OwnerStatus {
		return false
	}
	return true
}

// SearchLess ordena por nombre del animal y luego por nombres del dueño.
func SearchLess(a, b Patient) bool {
	if a.AnimalName != b.AnimalName {
		return a.AnimalName < b.AnimalName
	}
	var af, bf string
	if a.Owner != nil {
		af = a.Owner.FirstNames
	}
	if b.Owner != nil {
		bf = b.Owner.FirstNames
	}
	if af != bf {
		return af < bf
	}
	return a.ID < b.ID
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// CalendarDate se queda con el año, mes y día tal como vienen (sin pasar a UTC)
// y los fija a medianoche UTC. Así se guarda la fecha de nacimiento.
func CalendarDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
