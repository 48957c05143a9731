package treatments

import (
	"context"
	"net/http"

	"vet-clinic-records/internal/domain/prescriptions"
	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// PrescriptionLister resuelve las prescripciones activas de un tratamiento activo.
type PrescriptionLister interface {
	ListByTreatment(ctx context.Context, treatmentID int64) ([]prescriptions.Prescription, error)
}

func RegisterRoutes(r chi.Router, svc *Service, rx PrescriptionLister) {
	r.Route("/api/treatments", func(tr chi.Router) {
		tr.Get("/", listHandler(svc))
		tr.Post("/", createHandler(svc))

		tr.Get("/deleted", listDeletedHandler(svc))
		tr.Get("/deleted/{id}", getDeletedHandler(svc))

		tr.Get("/{id}", getHandler(svc, rx))
		tr.Put("/{id}", updateHandler(svc))
		tr.Delete("/{id}", deleteHandler(svc))
		tr.Post("/{id}/restore", restoreHandler(svc))

		tr.Get("/{id}/prescriptions", listPrescriptionsHandler(rx))
	})
}

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

// @Summary Obtener tratamiento con sus prescripciones activas
// @Tags treatments
// @Produce json
// @Param id path int true "ID del tratamiento"
// @Success 200 {object} Record
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /api/treatments/{id} [get]
func getHandler(svc *Service, rx PrescriptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		t, err := svc.Get(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := rx.ListByTreatment(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecordWithPrescriptions(t, items))
	}
}

func getDeletedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		t, err := svc.GetDeleted(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecord(t))
	}
}

// @Summary Crear tratamiento
// @Description treatment_type y treatment_status como texto; se devuelven todos los errores juntos.
// @Tags treatments
// @Accept json
// @Produce json
// @Param payload body Record true "Tratamiento"
// @Success 201 {object} Record
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /api/treatments [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec Record
		if err := httpjson.Decode(r, &rec); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		t, err := httpjson.Bind(rec, rec.ToEntity)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		created, err := svc.Create(r.Context(), *t, middleware.Actor(r.Context()))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusCreated, ToRecord(created))
	}
}

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
		if rec.TreatmentID != 0 && rec.TreatmentID != id {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "id in path and body do not match"})
			return
		}
		rec.TreatmentID = id

		t, err := httpjson.Bind(rec, rec.ToEntity)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if _, err := svc.Update(r.Context(), *t, middleware.Actor(r.Context())); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

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

// @Summary Prescripciones activas del tratamiento
// @Tags treatments
// @Produce json
// @Param id path int true "ID del tratamiento"
// @Success 200 {array} prescriptions.Record
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /api/treatments/{id}/prescriptions [get]
func listPrescriptionsHandler(rx PrescriptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := rx.ListByTreatment(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, prescriptions.ToRecords(items))
	}
}
