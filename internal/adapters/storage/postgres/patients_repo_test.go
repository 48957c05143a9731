package postgres

import (
	"strings"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/patients"
)

func TestSearchWhere_OnlyActiveByDefault(t *testing.T) {
	where, args := searchWhere(patients.SearchQuery{})
	if where != "p.is_deleted = FALSE" || len(args) != 0 {
		t.Fatalf("unexpected where: %q %v", where, args)
	}
}

func TestSearchWhere_AllFilters(t *testing.T) {
	before := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	after := time.Date(2017, 6, 15, 0, 0, 0, 0, time.UTC)
	st := enums.CustomerStatusVIP

	where, args := searchWhere(patients.SearchQuery{
		AnimalName:      "re",
		OwnerName:       "ana",
		OwnerDocumentID: "12",
		Species:         "Dog",
		Breed:           "Mixed",
		BornOnOrBefore:  &before,
		BornAfter:       &after,
		OwnerStatus:     &st,
	})

	if len(args) != 8 {
		t.Fatalf("expected 8 args, got %d: %v", len(args), args)
	}
	for _, frag := range []string{
		"p.animal_name ILIKE $1",
		"ILIKE $2 OR",
		"c.document_id LIKE $3",
		"lower(p.species) = lower($4)",
		"lower(p.breed) = lower($5)",
		"p.birth_date <= $6",
		"p.birth_date > $7",
		"c.customer_status = $8",
	} {
		if !strings.Contains(where, frag) {
			t.Fatalf("where is missing %q: %s", frag, where)
		}
	}
	if args[0] != "%re%" || args[7] != int64(5) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestContains_EscapesWildcards(t *testing.T) {
	if got := contains(`50%_off\`); got != `%50\%\_off\\%` {
		t.Fatalf("unexpected pattern: %s", got)
	}
}
