package patients

import (
	"errors"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"
)

func intp(n int) *int { return &n }

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestAge(t *testing.T) {
	today := date(2024, 6, 15)
	cases := []struct {
		birth time.Time
		want  int
	}{
		{date(2019, 6, 15), 5},
		{date(2019, 6, 16), 4},
		{date(2019, 5, 31), 5},
		{date(2023, 12, 31), 0},
		{time.Time{}, 0},
	}
	for _, c := range cases {
		if got := Age(c.birth, today); got != c.want {
			t.Fatalf("Age(%s) = %d, want %d", c.birth.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestSearchParams_ValidateAggregates(t *testing.T) {
	p := SearchParams{Page: -1, PageSize: 101, MinAge: intp(-1), MaxAge: intp(-2), OwnerStatus: "Gold"}
	err := p.Validate()
	var verr *lifecycle.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// page, page_size, min_age, max_age, min>max, status
	if len(verr.Problems) != 6 {
		t.Fatalf("expected 6 problems, got %v", verr.Problems)
	}

	if err := (SearchParams{}).Normalize().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	// Cero explícito no se completa con defaults: se rechaza.
	err = SearchParams{Page: 0, PageSize: 0}.Validate()
	if !errors.As(err, &verr) || len(verr.Problems) != 2 {
		t.Fatalf("expected page and page_size problems, got %v", err)
	}
}

func TestSearchParams_Query(t *testing.T) {
	today := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)
	q := SearchParams{MinAge: intp(3), MaxAge: intp(8), OwnerStatus: "vip", Page: 3, PageSize: 10}.Query(today)

	if !q.BornOnOrBefore.Equal(date(2021, 6, 15)) {
		t.Fatalf("unexpected min cutoff: %v", q.BornOnOrBefore)
	}
	if !q.BornAfter.Equal(date(2015, 6, 15)) {
		t.Fatalf("unexpected max cutoff: %v", q.BornAfter)
	}
	if q.OwnerStatus == nil || *q.OwnerStatus != enums.CustomerStatusVIP {
		t.Fatalf("unexpected status: %v", q.OwnerStatus)
	}
	if q.Offset != 20 || q.Limit != 10 {
		t.Fatalf("unexpected window: offset=%d limit=%d", q.Offset, q.Limit)
	}

	// Un status que no parsea se ignora en el motor
	if q := (SearchParams{OwnerStatus: "Gold"}).Query(today); q.OwnerStatus != nil {
		t.Fatalf("unparseable status must be ignored")
	}
}

func TestSearchQuery_Matches(t *testing.T) {
	p := Patient{
		AnimalName: "Milo",
		Species:    "Dog",
		Breed:      "Beagle",
		BirthDate:  date(2019, 1, 10),
		Owner: &Owner{
			FirstNames:       "Ana María",
			PaternalLastName: "Soto",
			MaternalLastName: "Rojas",
			DocumentID:       "44556677",
			Status:           enums.CustomerStatusActive,
		},
	}
	active := enums.CustomerStatusActive
	vip := enums.CustomerStatusVIP

	cases := []struct {
		name string
		q    SearchQuery
		want bool
	}{
		{"empty", SearchQuery{}, true},
		{"animal substring", SearchQuery{AnimalName: "mil"}, true},
		{"owner full order", SearchQuery{OwnerName: "maría rojas soto"}, true},
		{"owner short order", SearchQuery{OwnerName: "ana maría soto"}, true},
		{"owner wrong order", SearchQuery{OwnerName: "soto rojas"}, false},
		{"document substring", SearchQuery{OwnerDocumentID: "5566"}, true},
		{"species fold", SearchQuery{Species: "DOG"}, true},
		{"breed must be equal", SearchQuery{Breed: "Beag"}, false},
		{"status match", SearchQuery{OwnerStatus: &active}, true},
		{"status mismatch", SearchQuery{OwnerStatus: &vip}, false},
	}
	for _, c := range cases {
		if got := c.q.Matches(p); got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}

	deleted := p
	deleted.IsDeleted = true
	if (SearchQuery{}).Matches(deleted) {
		t.Fatalf("deleted patients never match")
	}
}
