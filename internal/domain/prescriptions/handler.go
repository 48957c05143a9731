package prescriptions

import (
	"net/http"

	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/prescriptions", func(pr chi.Router) {
		pr.Get("/", listHandler(svc))
		pr.Post("/", createHandler(svc))

		pr.Get("/deleted", listDeletedHandler(svc))
		pr.Get("/deleted/{id}", getDeletedHandler(svc))

		pr.Get("/{id}", getHandler(svc))
		pr.Put("/{id}", updateHandler(svc))
		pr.Delete("/{id}", deleteHandler(svc))
		pr.Post("/{id}/restore", restoreHandler(svc))
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

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		p, err := svc.Get(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecord(p))
	}
}

func getDeletedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		p, err := svc.GetDeleted(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecord(p))
	}
}

// @Summary Crear prescripción
// @Description treatment_id y medicament_id deben existir (activos o eliminados). prescription_status como texto.
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param payload body Record true "Prescripción"
// @Success 201 {object} Record
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /api/prescriptions [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec Record
		if err := httpjson.Decode(r, &rec); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		p, err := httpjson.Bind(rec, rec.ToEntity)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		created, err := svc.Create(r.Context(), *p, middleware.Actor(r.Context()))
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
		if rec.PrescriptionID != 0 && rec.PrescriptionID != id {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "id in path and body do not match"})
			return
		}
		rec.PrescriptionID = id

		p, err := httpjson.Bind(rec, rec.ToEntity)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if _, err := svc.Update(r.Context(), *p, middleware.Actor(r.Context())); err != nil {
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
