package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/patients"
)

type PatientRepo struct {
	*table[patients.Patient, *patients.Patient]
}

func NewPatientRepo(db *sql.DB) *PatientRepo {
	return &PatientRepo{table: &table[patients.Patient, *patients.Patient]{
		db:     db,
		entity: patients.EntityName,
		name:   "patients",
		columns: []string{
			"animal_name", "species", "breed", "gender", "birth_date", "weight",
			"classification", "photo_url", "registered_at", "registered_by", "customer_id",
		},
		values: func(p *patients.Patient) []any {
			return []any{
				p.AnimalName, p.Species, p.Breed, int64(p.Gender), p.BirthDate, p.Weight,
				int64(p.Classification), p.PhotoURL, p.RegisteredAt, p.RegisteredBy, p.CustomerID,
			}
		},
		targets: func(p *patients.Patient) []any {
			return []any{
				&p.AnimalName, &p.Species, &p.Breed, &p.Gender, &p.BirthDate, &p.Weight,
				&p.Classification, &p.PhotoURL, &p.RegisteredAt, &p.RegisteredBy, &p.CustomerID,
			}
		},
		now: time.Now,
	}}
}

func (r *PatientRepo) AnimalNameExistsForOwner(ctx context.Context, animalName string, customerID int64, excludeID *int64) (bool, error) {
	return r.probe(ctx, "customer_id = $1 AND lower(animal_name) = lower($2)", excludeID,
		customerID, strings.TrimSpace(animalName))
}

func (r *PatientRepo) ListActiveByCustomer(ctx context.Context, customerID int64) ([]patients.Patient, error) {
	return r.query(ctx, "list by customer", fmt.Sprintf(
		`SELECT %s FROM patients WHERE customer_id = $1 AND is_deleted = FALSE ORDER BY animal_name COLLATE "C", id`,
		r.selectList("")), customerID)
}

func (r *PatientRepo) UpdatePhoto(ctx context.Context, id int64, url string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE patients SET photo_url = $2, updated_at = $3 WHERE id = $1 AND is_deleted = FALSE`,
		id, url, r.now().UTC())
	return affected(r.entity, "update photo", res, err)
}

func (r *PatientRepo) Species(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "species")
}

func (r *PatientRepo) Breeds(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "breed")
}

func (r *PatientRepo) distinct(ctx context.Context, column string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT DISTINCT %[1]s FROM patients WHERE is_deleted = FALSE AND %[1]s <> '' ORDER BY %[1]s COLLATE "C"`,
		column))
	if err != nil {
		return nil, mapErr(r.entity, "catalog", err, nil)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, mapErr(r.entity, "catalog", err, nil)
		}
		out = append(out, v)
	}
	return out, mapErr(r.entity, "catalog", rows.Err(), nil)
}

// Search arma el WHERE dinámico una sola vez y lo usa para el COUNT y para la página.
func (r *PatientRepo) Search(ctx context.Context, q patients.SearchQuery) (patients.SearchResult, error) {
	where, args := searchWhere(q)
	from := `FROM patients p JOIN customers c ON c.id = p.customer_id WHERE ` + where

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) `+from, args...).Scan(&total); err != nil {
		return patients.SearchResult{}, mapErr(r.entity, "search count", err, nil)
	}

	pageArgs := append(append([]any{}, args...), q.Limit, q.Offset)
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s,
		        c.first_names, c.paternal_last_name, c.maternal_last_name,
		        c.document_id, c.phone, c.email, c.customer_status
		 %s
		 ORDER BY p.animal_name COLLATE "C", c.first_names COLLATE "C", p.id
		 LIMIT $%d OFFSET $%d`,
		r.selectList("p"), from, len(pageArgs)-1, len(pageArgs)),
		pageArgs...)
	if err != nil {
		return patients.SearchResult{}, mapErr(r.entity, "search", err, nil)
	}
	defer rows.Close()

	items := make([]patients.Patient, 0)
	for rows.Next() {
		var o patients.Owner
		p, err := r.scan(rows,
			&o.FirstNames, &o.PaternalLastName, &o.MaternalLastName,
			&o.DocumentID, &o.Phone, &o.Email, &o.Status)
		if err != nil {
			return patients.SearchResult{}, mapErr(r.entity, "search", err, nil)
		}
		o.CustomerID = p.CustomerID
		p.Owner = &o
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return patients.SearchResult{}, mapErr(r.entity, "search", err, nil)
	}

	return patients.SearchResult{Items: items, TotalCount: total}, nil
}

// searchWhere traduce SearchQuery a SQL. Mismas reglas que SearchQuery.Matches.
func searchWhere(q patients.SearchQuery) (string, []any) {
	conds := []string{"p.is_deleted = FALSE"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.AnimalName != "" {
		conds = append(conds, "p.animal_name ILIKE "+arg(contains(q.AnimalName)))
	}
	if q.OwnerName != "" {
		n := arg(contains(q.OwnerName))
		conds = append(conds, fmt.Sprintf(
			"((c.first_names || ' ' || c.maternal_last_name || ' ' || c.paternal_last_name) ILIKE %[1]s"+
				" OR (c.first_names || ' ' || c.paternal_last_name) ILIKE %[1]s)", n))
	}
	if q.OwnerDocumentID != "" {
		conds = append(conds, "c.document_id LIKE "+arg(contains(q.OwnerDocumentID)))
	}
	if q.Species != "" {
		conds = append(conds, "lower(p.species) = lower("+arg(q.Species)+")")
	}
	if q.Breed != "" {
		conds = append(conds, "lower(p.breed) = lower("+arg(q.Breed)+")")
	}
	if q.BornOnOrBefore != nil {
		conds = append(conds, "p.birth_date <= "+arg(*q.BornOnOrBefore))
	}
	if q.BornAfter != nil {
		conds = append(conds, "p.birth_date > "+arg(*q.BornAfter))
	}
	if q.OwnerStatus != nil {
		conds = append(conds, "c.customer_status = "+arg(int64(*q.OwnerStatus)))
	}

	return strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains arma el patrón LIKE '%v%' escapando los comodines del usuario.
func contains(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}

var _ patients.Repository = (*PatientRepo)(nil)
