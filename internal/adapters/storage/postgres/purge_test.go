//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/customers"
	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/patients"
)

func backdateDeletion(t *testing.T, db *sql.DB, table string, id int64, at time.Time) {
	t.Helper()
	if _, err := db.Exec(`UPDATE `+table+` SET deleted_at = $2 WHERE id = $1`, id, at); err != nil {
		t.Fatalf("backdate %s %d: %v", table, id, err)
	}
}

func rowExists(t *testing.T, db *sql.DB, table string, id int64) bool {
	t.Helper()
	var ok bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&ok); err != nil {
		t.Fatalf("exists %s %d: %v", table, id, err)
	}
	return ok
}

func TestIntegration_PurgeChildrenFirstKeepsParentsWithChildren(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cr := NewCustomerRepo(db)
	pr := NewPatientRepo(db)

	old := time.Now().UTC().AddDate(0, 0, -120)
	cutoff := time.Now().UTC().AddDate(0, 0, -90)

	newCustomer := func(doc string) customers.Customer {
		c, err := cr.Create(ctx, customers.Customer{
			FirstNames: "Ana", PaternalLastName: "Pérez", MaternalLastName: "Soto", DocumentID: doc,
			Type: enums.CustomerTypeIndividual, Status: enums.CustomerStatusActive,
		})
		if err != nil {
			t.Fatalf("create customer %s: %v", doc, err)
		}
		return c
	}
	newPatient := func(customerID int64, name string) patients.Patient {
		p, err := pr.Create(ctx, patients.Patient{
			AnimalName:     name,
			Species:        "Dog",
			Gender:         enums.GenderMale,
			BirthDate:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Classification: enums.ClassificationDomestic,
			CustomerID:     customerID,
		})
		if err != nil {
			t.Fatalf("create patient %s: %v", name, err)
		}
		return p
	}
	softDelete := func(tbl string, del func(context.Context, int64, string) (bool, error), id int64, at time.Time) {
		if ok, err := del(ctx, id, "retention"); err != nil || !ok {
			t.Fatalf("soft delete %s %d: %v %v", tbl, id, ok, err)
		}
		backdateDeletion(t, db, tbl, id, at)
	}

	// Dueño y paciente eliminados hace tiempo: se van los dos, primero el paciente.
	gone := newCustomer("100")
	gonePet := newPatient(gone.ID, "Gone")
	softDelete("patients", pr.SoftDelete, gonePet.ID, old)
	softDelete("customers", cr.SoftDelete, gone.ID, old)

	// Dueño viejo con un paciente activo: el dueño se conserva.
	parent := newCustomer("200")
	alive := newPatient(parent.ID, "Alive")
	softDelete("customers", cr.SoftDelete, parent.ID, old)

	// Eliminado después del corte: se conserva.
	recent := newCustomer("300")
	softDelete("customers", cr.SoftDelete, recent.ID, time.Now().UTC().AddDate(0, 0, -10))

	res, err := NewPurger(db).Purge(ctx, cutoff)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if res["patients"] != 1 || res["customers"] != 1 || res.Total() != 2 {
		t.Fatalf("unexpected purge counts: %v", res)
	}

	if rowExists(t, db, "patients", gonePet.ID) || rowExists(t, db, "customers", gone.ID) {
		t.Fatalf("old deleted rows must be gone")
	}
	if !rowExists(t, db, "customers", parent.ID) || !rowExists(t, db, "patients", alive.ID) {
		t.Fatalf("a parent with remaining children must be kept along with them")
	}
	if !rowExists(t, db, "customers", recent.ID) {
		t.Fatalf("rows deleted after the cutoff must be kept")
	}

	// Ya no queda nada viejo que borrar.
	res, err = NewPurger(db).Purge(ctx, cutoff)
	if err != nil || res.Total() != 0 {
		t.Fatalf("second purge: %v %v", res, err)
	}
}
