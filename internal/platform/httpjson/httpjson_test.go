package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vet-clinic-records/internal/domain/lifecycle"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
	Count int    `json:"count" validate:"gt=0"`
}

func (s sample) toEntity() (*sample, error) {
	if s.Email == "nope" {
		return nil, lifecycle.Invalid("Invalid Kind: 'nope'")
	}
	return &s, nil
}

func TestValidate_ReportsEveryField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"too long name","email":"nope","count":0}`))
	var s sample
	if err := Decode(r, &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	err := Validate(s)

	var verr *lifecycle.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Problems) != 3 {
		t.Fatalf("expected 3 problems, got %d: %v", len(verr.Problems), verr.Problems)
	}
	if !strings.HasPrefix(verr.Problems[0], "name ") {
		t.Fatalf("problems should use json names: %v", verr.Problems)
	}
}

func TestBind_MergesSchemaAndMappingProblems(t *testing.T) {
	s := sample{Name: "", Email: "nope", Count: 1}
	e, err := Bind(s, s.toEntity)
	if e != nil {
		t.Fatalf("entity must be nil on error")
	}
	var verr *lifecycle.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// name requerido + email inválido (esquema) + el error del mapeo
	if len(verr.Problems) != 3 || verr.Problems[2] != "Invalid Kind: 'nope'" {
		t.Fatalf("unexpected problems: %v", verr.Problems)
	}

	ok := sample{Name: "Ana", Count: 2}
	e, err = Bind(ok, ok.toEntity)
	if err != nil || e == nil || e.Name != "Ana" {
		t.Fatalf("unexpected %v %v", e, err)
	}
}

func TestBind_NonValidationErrorWins(t *testing.T) {
	boom := errors.New("boom")
	_, err := Bind(sample{}, func() (*sample, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{`))
	var s sample
	if err := Decode(r, &s); !errors.Is(err, lifecycle.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{lifecycle.Invalid("a", "b"), http.StatusBadRequest},
		{&lifecycle.NotFoundError{Entity: "customer", ID: 1}, http.StatusNotFound},
		{&lifecycle.ConflictError{Entity: "customer", Field: "email", Value: "x"}, http.StatusConflict},
		{&lifecycle.StorageError{Op: "q", Err: errors.New("down")}, http.StatusInternalServerError},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		WriteError(w, httptest.NewRequest("GET", "/", nil), c.err)
		if w.Code != c.want {
			t.Fatalf("%T: status %d, want %d", c.err, w.Code, c.want)
		}
	}

	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest("GET", "/", nil), lifecycle.Invalid("a", "b"))
	var body ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Errors) != 2 {
		t.Fatalf("expected full problem list, got %+v", body)
	}
}

func TestQueryInt64(t *testing.T) {
	r := httptest.NewRequest("GET", "/?exclude_id=7&bad=x", nil)
	v, err := QueryInt64(r, "exclude_id")
	if err != nil || v == nil || *v != 7 {
		t.Fatalf("unexpected %v %v", v, err)
	}
	if v, err := QueryInt64(r, "missing"); err != nil || v != nil {
		t.Fatalf("missing param must be nil")
	}
	if _, err := QueryInt64(r, "bad"); err == nil {
		t.Fatalf("expected error for non integer")
	}
}
