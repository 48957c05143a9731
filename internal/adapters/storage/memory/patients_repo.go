package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"vet-clinic-records/internal/domain/customers"
	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/domain/patients"
)

var patientKeys = []uniqueKey[patients.Patient]{
	{
		field: "animal_name",
		key: func(p *patients.Patient) string {
			name := strings.ToLower(strings.TrimSpace(p.AnimalName))
			if name == "" {
				return ""
			}
			return strconv.FormatInt(p.CustomerID, 10) + "/" + name
		},
		show: func(p *patients.Patient) string { return p.AnimalName },
	},
}

type PatientRepo struct {
	*repo[patients.Patient, *patients.Patient]
}

func NewPatientRepo(s *Store) *PatientRepo {
	return &PatientRepo{repo: &repo[patients.Patient, *patients.Patient]{s: s, t: s.patients}}
}

func (r *PatientRepo) AnimalNameExistsForOwner(ctx context.Context, animalName string, customerID int64, excludeID *int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	probe := patients.Patient{AnimalName: animalName, CustomerID: customerID}
	return r.t.taken("animal_name", &probe, excludeID), nil
}

func (r *PatientRepo) ListActiveByCustomer(ctx context.Context, customerID int64) ([]patients.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]patients.Patient, 0)
	for _, p := range r.t.list(lifecycle.Active) {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AnimalName < out[j].AnimalName })
	return out, nil
}

func (r *PatientRepo) UpdatePhoto(ctx context.Context, id int64, url string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, err := r.t.get(id, lifecycle.Active)
	if err != nil {
		return false, nil
	}
	now := r.s.now().UTC()
	p.PhotoURL = url
	p.UpdatedAt = &now
	r.t.rows[id] = p
	return true, nil
}

func (r *PatientRepo) Species(ctx context.Context) ([]string, error) {
	return r.distinct(func(p patients.Patient) string { return p.Species }), nil
}

func (r *PatientRepo) Breeds(ctx context.Context) ([]string, error) {
	return r.distinct(func(p patients.Patient) string { return p.Breed }), nil
}

func (r *PatientRepo) distinct(field func(p patients.Patient) string) []string {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := map[string]bool{}
	out := make([]string, 0)
	for _, p := range r.t.rows {
		v := strings.TrimSpace(field(p))
		if p.IsDeleted || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Search une cada paciente activo con su dueño (en cualquier partición), filtra,
// cuenta y recién después pagina.
func (r *PatientRepo) Search(ctx context.Context, q patients.SearchQuery) (patients.SearchResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]patients.Patient, 0)
	for _, p := range r.t.rows {
		if p.IsDeleted {
			continue
		}
		c, ok := r.s.customers.rows[p.CustomerID]
		if !ok {
			continue
		}
		p.Owner = ownerOf(c)
		if q.Matches(p) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return patients.SearchLess(matched[i], matched[j]) })

	total := len(matched)
	start := min(q.Offset, total)
	end := total
	if q.Limit > 0 {
		end = min(start+q.Limit, total)
	}

	return patients.SearchResult{Items: matched[start:end], TotalCount: total}, nil
}

func ownerOf(c customers.Customer) *patients.Owner {
	return &patients.Owner{
		CustomerID:       c.ID,
		FirstNames:       c.FirstNames,
		PaternalLastName: c.PaternalLastName,
		MaternalLastName: c.MaternalLastName,
		DocumentID:       c.DocumentID,
		Phone:            c.Phone,
		Email:            c.Email,
		Status:           c.Status,
	}
}

var _ patients.Repository = (*PatientRepo)(nil)
