package enums

import (
	"errors"
	"testing"
)

func TestParse_CaseInsensitive(t *testing.T) {
	cases := map[string]CustomerStatus{
		"active":  CustomerStatusActive,
		"ACTIVE":  CustomerStatusActive,
		" vip ":   CustomerStatusVIP,
		"inDebt":  CustomerStatusInDebt,
		"Overdue": CustomerStatusOverdue,
	}
	for in, want := range cases {
		got, err := ParseCustomerStatus(in)
		if err != nil {
			t.Fatalf("ParseCustomerStatus(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseCustomerStatus(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestParse_InvalidListsAllowedValues(t *testing.T) {
	_, err := ParseCustomerType("Alien")
	if err == nil {
		t.Fatalf("expected error for unknown value")
	}

	var inv *InvalidValueError
	if !errors.As(err, &inv) {
		t.Fatalf("expected *InvalidValueError, got %T", err)
	}
	if inv.Enum != "CustomerType" || inv.Value != "Alien" {
		t.Fatalf("unexpected error fields: %+v", inv)
	}

	want := "Invalid CustomerType: 'Alien'. Valid values are: Individual, Company, Shelter"
	if err.Error() != want {
		t.Fatalf("message mismatch\n got: %s\nwant: %s", err.Error(), want)
	}
}

func TestParse_EmptyAndNumericAreInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "1"} {
		if _, err := ParseGender(in); err == nil {
			t.Fatalf("ParseGender(%q) should fail", in)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := TreatmentStatusInProgress.String(); got != "InProgress" {
		t.Fatalf("String()=%s", got)
	}
	if got := Gender(42).String(); got != "Gender(42)" {
		t.Fatalf("unknown value formatted as %s", got)
	}
	if !Classifications.Valid(ClassificationWild) || Classifications.Valid(0) {
		t.Fatalf("Valid() mismatch")
	}
}

func TestNames_SortedByValue(t *testing.T) {
	got := PrescriptionStatuses.Names()
	want := []string{"Active", "Suspended", "Completed", "Cancelled"}
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names()[%d]=%s want %s", i, got[i], want[i])
		}
	}
}
