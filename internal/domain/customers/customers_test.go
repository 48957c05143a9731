package customers_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	mem "vet-clinic-records/internal/adapters/storage/memory"
	"vet-clinic-records/internal/domain/customers"
	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/domain/patients"
)

func record(email, document string) customers.Record {
	return customers.Record{
		FirstNames:       "Ana",
		PaternalLastName: "Soto",
		MaternalLastName: "Rojas",
		DocumentID:       document,
		Phone:            "999888777",
		Email:            email,
		Address:          "Av. Siempre Viva 742",
		CustomerType:     "Individual",
		CustomerStatus:   "VIP",
		Notes:            "prefiere turno mañana",
	}
}

func TestRecord_RoundTripNormalizesEnumCase(t *testing.T) {
	in := record("ana@vet.test", "123")
	in.CustomerID = 4
	in.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in.CustomerType = "shelter"
	in.CustomerStatus = "indebt"

	c, err := in.ToEntity()
	if err != nil {
		t.Fatalf("to entity: %v", err)
	}
	if c.Type != enums.CustomerTypeShelter || c.Status != enums.CustomerStatusInDebt {
		t.Fatalf("unexpected enums: %v %v", c.Type, c.Status)
	}

	want := in
	want.CustomerType = "Shelter"
	want.CustomerStatus = "InDebt"
	if got := customers.ToRecord(*c); !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestRecord_AllEnumErrorsTogether(t *testing.T) {
	in := record("", "123")
	in.CustomerType = "Alien"
	in.CustomerStatus = ""

	c, err := in.ToEntity()
	if c != nil {
		t.Fatalf("entity must be nil on error")
	}
	var verr *lifecycle.ValidationError
	if !errors.As(err, &verr) || len(verr.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", err)
	}
	if !strings.HasPrefix(verr.Problems[0], "Invalid CustomerType: 'Alien'. Valid values are: ") {
		t.Fatalf("unexpected message: %s", verr.Problems[0])
	}
}

func TestRecord_ToEntityTrimsUniqueKeys(t *testing.T) {
	c := mustEntity(t, record("  ana@vet.test ", " 123\t"))
	if c.Email != "ana@vet.test" || c.DocumentID != "123" {
		t.Fatalf("keys must be stored trimmed: %q %q", c.Email, c.DocumentID)
	}

	ctx := context.Background()
	var events []lifecycle.Event
	svc := newService(&events)
	if _, err := svc.Create(ctx, c, "u1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if ok, _ := svc.DocumentIDExists(ctx, "123", nil); !ok {
		t.Fatalf("trimmed document must be found")
	}
}

func TestToRecordWithPatients(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	c := customers.Customer{FirstNames: "Ana", Type: enums.CustomerTypeIndividual, Status: enums.CustomerStatusActive}
	c.ID = 1
	pets := []patients.Patient{{AnimalName: "Milo", CustomerID: 1, BirthDate: time.Date(2020, 6, 16, 0, 0, 0, 0, time.UTC)}}

	rec := customers.ToRecordWithPatients(c, pets, today)
	if len(rec.Patients) != 1 || rec.Patients[0].Age != 3 {
		t.Fatalf("unexpected patients: %+v", rec.Patients)
	}
	if len(customers.ToRecord(c).Patients) != 0 {
		t.Fatalf("plain projection must not carry patients")
	}
}

func newService(events *[]lifecycle.Event) *customers.Service {
	hook := func(_ context.Context, ev lifecycle.Event) { *events = append(*events, ev) }
	return customers.NewService(mem.NewCustomerRepo(mem.NewStore()), hook)
}

func mustEntity(t *testing.T, r customers.Record) customers.Customer {
	t.Helper()
	c, err := r.ToEntity()
	if err != nil {
		t.Fatal(err)
	}
	return *c
}

func TestService_Uniqueness(t *testing.T) {
	ctx := context.Background()
	var events []lifecycle.Event
	svc := newService(&events)

	first, err := svc.Create(ctx, mustEntity(t, record("Ana@Vet.test", "123")), "u1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Create(ctx, mustEntity(t, record("ana@vet.TEST", "999")), "u1")
	var cerr *lifecycle.ConflictError
	if !errors.As(err, &cerr) || cerr.Field != "email" {
		t.Fatalf("expected email conflict, got %v", err)
	}

	// Email vacío no cuenta para unicidad
	if _, err := svc.Create(ctx, mustEntity(t, record("", "200")), "u1"); err != nil {
		t.Fatalf("create without email: %v", err)
	}
	if _, err := svc.Create(ctx, mustEntity(t, record("", "201")), "u1"); err != nil {
		t.Fatalf("second create without email: %v", err)
	}

	// El propio registro no choca consigo mismo al actualizar
	upd := first
	upd.Phone = "111"
	if _, err := svc.Update(ctx, upd, "u2"); err != nil {
		t.Fatalf("update self: %v", err)
	}

	exclude := first.ID
	if ok, _ := svc.DocumentIDExists(ctx, "123", &exclude); ok {
		t.Fatalf("excluded id must not count")
	}
	if ok, _ := svc.DocumentIDExists(ctx, "123", nil); !ok {
		t.Fatalf("document must exist")
	}

	if len(events) != 4 || events[3].Action != lifecycle.ActionUpdated || events[3].Actor != "u2" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestService_UpdateMissingIsNotFound(t *testing.T) {
	var events []lifecycle.Event
	svc := newService(&events)

	c := mustEntity(t, record("", "1"))
	c.ID = 42
	_, err := svc.Update(context.Background(), c, "u")
	if !errors.Is(err, lifecycle.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("no event expected on failure")
	}
}
