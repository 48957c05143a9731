// Package httpjson junta los helpers de request/response que antes se duplicaban
// en cada módulo (writeJSON, decode, mapeo de errores a status).
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre json.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ErrorResponse es el cuerpo de todas las respuestas de error.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce la taxonomía de errores del dominio a status HTTP.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *lifecycle.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Errors: verr.Problems})
	case errors.Is(err, lifecycle.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, lifecycle.ErrConflict):
		WriteJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"error":  err,
			"method": r.Method,
			"path":   r.URL.Path,
		})
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// Decode solo lee el JSON del body. La validación de esquema corre en Bind.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return lifecycle.Invalid("invalid json: " + err.Error())
	}
	return nil
}

// Bind corre la validación de esquema de rec y el mapeo a entidad, y devuelve
// los problemas de ambos en un solo ValidationError.
func Bind[E any](rec any, toEntity func() (*E, error)) (*E, error) {
	schemaErr := Validate(rec)
	e, mapErr := toEntity()
	if err := lifecycle.Merge(schemaErr, mapErr); err != nil {
		return nil, err
	}
	return e, nil
}

func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return lifecycle.Invalid(err.Error())
	}
	var problems lifecycle.Problems
	for _, fe := range fieldErrs {
		problems.Addf("%s", describe(fe))
	}
	return problems.Err()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
	}
}

// PathID lee un id entero positivo de la URL.
func PathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, lifecycle.Invalid(fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

// QueryInt64 devuelve nil si el parámetro no viene.
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, lifecycle.Invalid(fmt.Sprintf("%s must be an integer", name))
	}
	return &n, nil
}

// ExistsResponse es la respuesta de los probes de unicidad.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
