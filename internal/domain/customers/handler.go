package customers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// PatientLister es lo que el módulo necesita del módulo de pacientes.
type PatientLister interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]patients.Patient, error)
	Today() time.Time
}

func RegisterRoutes(r chi.Router, svc *Service, pets PatientLister) {
	r.Route("/api/customers", func(cr chi.Router) {
		cr.Get("/", listHandler(svc))
		cr.Post("/", createHandler(svc))

		cr.Get("/deleted", listDeletedHandler(svc))
		cr.Get("/deleted/{id}", getDeletedHandler(svc))
		cr.Get("/exists", existsHandler(svc))

		cr.Get("/{id}", getHandler(svc, pets))
		cr.Put("/{id}", updateHandler(svc))
		cr.Delete("/{id}", deleteHandler(svc))
		cr.Post("/{id}/restore", restoreHandler(svc))

		// Pacientes activos del customer (customer activo o 404)
		cr.Get("/{id}/patients", listPatientsHandler(pets))
	})
}

type existsResponse struct {
	EmailExists      *bool `json:"email_exists,omitempty"`
	DocumentIDExists *bool `json:"document_id_exists,omitempty"`
}

// @Summary Listar customers activos
// @Tags customers
// @Produce json
// @Success 200 {array} Record
// @Router /api/customers [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecords(items))
	}
}

// @Summary Listar customers eliminados
// @Tags customers
// @Produce json
// @Success 200 {array} Record
// @Router /api/customers/deleted [get]
func listDeletedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDeleted(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecords(items))
	}
}

// @Summary Obtener customer activo con sus pacientes
// @Tags customers
// @Produce json
// @Param id path int true "ID del customer"
// @Success 200 {object} Record
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /api/customers/{id} [get]
func getHandler(svc *Service, pets PatientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		c, err := svc.Get(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := pets.ListByCustomer(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecordWithPatients(c, items, pets.Today()))
	}
}

// @Summary Obtener customer eliminado
// @Tags customers
// @Produce json
// @Param id path int true "ID del customer"
// @Success 200 {object} Record
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /api/customers/deleted/{id} [get]
func getDeletedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		c, err := svc.GetDeleted(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecord(c))
	}
}

// @Summary Crear customer
// @Description customer_type y customer_status se aceptan como texto sin distinguir mayúsculas. Email y document_id deben ser únicos entre customers activos.
// @Tags customers
// @Accept json
// @Produce json
// @Param payload body Record true "Customer"
// @Success 201 {object} Record
// @Failure 400 {object} httpjson.ErrorResponse "Todos los errores de validación"
// @Failure 409 {object} httpjson.ErrorResponse "Email o documento duplicado"
// @Router /api/customers [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec Record
		if err := httpjson.Decode(r, &rec); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		c, err := httpjson.Bind(rec, rec.ToEntity)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		created, err := svc.Create(r.Context(), *c, middleware.Actor(r.Context()))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusCreated, ToRecord(created))
	}
}

// @Summary Actualizar customer
// @Description Solo campos de negocio; created_at y los campos de borrado se conservan.
// @Tags customers
// @Accept json
// @Param id path int true "ID del customer"
// @Param payload body Record true "Customer"
// @Success 204
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 409 {object} httpjson.ErrorResponse
// @Router /api/customers/{id} [put]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		var rec Record
		if err := httpjson.Decode(r, &rec); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if rec.CustomerID != 0 && rec.CustomerID != id {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "id in path and body do not match"})
			return
		}
		rec.CustomerID = id

		c, err := httpjson.Bind(rec, rec.ToEntity)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if _, err := svc.Update(r.Context(), *c, middleware.Actor(r.Context())); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Eliminar customer (soft delete)
// @Description No se propaga a sus pacientes.
// @Tags customers
// @Param id path int true "ID del customer"
// @Param X-User-ID header string false "Usuario que elimina"
// @Success 204
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 409 {object} httpjson.ErrorResponse "Ya estaba eliminado"
// @Router /api/customers/{id} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), id, middleware.Actor(r.Context())); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Restaurar customer
// @Tags customers
// @Param id path int true "ID del customer"
// @Success 204
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 409 {object} httpjson.ErrorResponse "No estaba eliminado"
// @Router /api/customers/{id}/restore [post]
func restoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if err := svc.Restore(r.Context(), id, middleware.Actor(r.Context())); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Probes de unicidad
// @Tags customers
// @Produce json
// @Param email query string false "Email a verificar"
// @Param document_id query string false "Documento a verificar"
// @Param exclude_id query int false "Ignorar este customer (edición)"
// @Success 200 {object} existsResponse
// @Router /api/customers/exists [get]
func existsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exclude, err := httpjson.QueryInt64(r, "exclude_id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		email := strings.TrimSpace(r.URL.Query().Get("email"))
		doc := strings.TrimSpace(r.URL.Query().Get("document_id"))
		if email == "" && doc == "" {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "email or document_id is required"})
			return
		}

		var out existsResponse
		if email != "" {
			v, err := svc.EmailExists(r.Context(), email, exclude)
			if err != nil {
				httpjson.WriteError(w, r, err)
				return
			}
			out.EmailExists = &v
		}
		if doc != "" {
			v, err := svc.DocumentIDExists(r.Context(), doc, exclude)
			if err != nil {
				httpjson.WriteError(w, r, err)
				return
			}
			out.DocumentIDExists = &v
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func listPatientsHandler(pets PatientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := pets.ListByCustomer(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, patients.ToRecords(items, pets.Today()))
	}
}
