package medicaments

import (
	"net/http"
	"strings"

	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/medicaments", func(mr chi.Router) {
		mr.Get("/", listHandler(svc))
		mr.Post("/", createHandler(svc))

		mr.Get("/deleted", listDeletedHandler(svc))
		mr.Get("/deleted/{id}", getDeletedHandler(svc))
		mr.Get("/exists", existsHandler(svc))

		mr.Get("/{id}", getHandler(svc))
		mr.Put("/{id}", updateHandler(svc))
		mr.Delete("/{id}", deleteHandler(svc))
		mr.Post("/{id}/restore", restoreHandler(svc))
	})
}

// @Summary Listar medicamentos activos
// @Tags medicaments
// @Produce json
// @Success 200 {array} Record
// @Router /api/medicaments [get]
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
		m, err := svc.Get(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecord(m))
	}
}

func getDeletedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		m, err := svc.GetDeleted(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecord(m))
	}
}

// @Summary Crear medicamento
// @Tags medicaments
// @Accept json
// @Produce json
// @Param payload body Record true "Medicamento"
// @Success 201 {object} Record
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 409 {object} httpjson.ErrorResponse "Nombre comercial duplicado"
// @Router /api/medicaments [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec Record
		if err := httpjson.Decode(r, &rec); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		m, err := httpjson.Bind(rec, rec.ToEntity)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		created, err := svc.Create(r.Context(), *m, middleware.Actor(r.Context()))
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
		if rec.MedicamentID != 0 && rec.MedicamentID != id {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "id in path and body do not match"})
			return
		}
		rec.MedicamentID = id

		m, err := httpjson.Bind(rec, rec.ToEntity)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if _, err := svc.Update(r.Context(), *m, middleware.Actor(r.Context())); err != nil {
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

// @Summary Probe de nombre comercial
// @Tags medicaments
// @Produce json
// @Param commercial_name query string true "Nombre comercial"
// @Param exclude_id query int false "Ignorar este medicamento"
// @Success 200 {object} httpjson.ExistsResponse
// @Router /api/medicaments/exists [get]
func existsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("commercial_name"))
		exclude, err := httpjson.QueryInt64(r, "exclude_id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if name == "" {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "commercial_name is required"})
			return
		}
		exists, err := svc.CommercialNameExists(r.Context(), name, exclude)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.ExistsResponse{Exists: exists})
	}
}
