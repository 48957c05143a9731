package patients

import (
	"net/http"
	"strconv"
	"strings"

	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/httpjson"
	"vet-clinic-records/internal/platform/pagination"

	"github.com/go-chi/chi/v5"
)

// SearchObserver recibe cada búsqueda exitosa (métricas). Puede ser nil.
type SearchObserver func(r *http.Request, results int)

func RegisterRoutes(r chi.Router, svc *Service, onSearch SearchObserver) {
	r.Route("/api/patients", func(pr chi.Router) {
		pr.Get("/", listHandler(svc))
		pr.Post("/", createHandler(svc))

		pr.Get("/deleted", listDeletedHandler(svc))
		pr.Get("/deleted/{id}", getDeletedHandler(svc))

		pr.Get("/search", searchHandler(svc, onSearch))
		pr.Get("/search/filters", filtersHandler(svc))
		pr.Get("/exists", existsHandler(svc))

		pr.Get("/{id}", getHandler(svc))
		pr.Put("/{id}", updateHandler(svc))
		pr.Delete("/{id}", deleteHandler(svc))
		pr.Post("/{id}/restore", restoreHandler(svc))
		pr.Post("/{id}/photo", uploadPhotoHandler(svc))
	})

	r.Get("/api/catalogs/species", speciesHandler(svc))
	r.Get("/api/catalogs/breeds", breedsHandler(svc))
}

type searchResponse struct {
	Data           []Record        `json:"data"`
	Pagination     pagination.Meta `json:"pagination"`
	SearchCriteria searchCriteria  `json:"search_criteria"`
}

type searchCriteria struct {
	AnimalName      string `json:"animal_name,omitempty"`
	OwnerName       string `json:"owner_name,omitempty"`
	OwnerDocumentID string `json:"owner_document_id,omitempty"`
	Species         string `json:"species,omitempty"`
	Breed           string `json:"breed,omitempty"`
	MinAge          *int   `json:"min_age,omitempty"`
	MaxAge          *int   `json:"max_age,omitempty"`
	Status          string `json:"status,omitempty"`
}

type photoResponse struct {
	PhotoURL string `json:"photo_url"`
}

// @Summary Listar pacientes activos
// @Tags patients
// @Produce json
// @Success 200 {array} Record
// @Router /api/patients [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecords(items, svc.Today()))
	}
}

func listDeletedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDeleted(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, ToRecords(items, svc.Today()))
	}
}

// @Summary Obtener paciente activo
// @Tags patients
// @Produce json
// @Param id path int true "ID del paciente"
// @Success 200 {object} Record
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /api/patients/{id} [get]
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
		httpjson.WriteJSON(w, http.StatusOK, ToRecord(p, svc.Today()))
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
		httpjson.WriteJSON(w, http.StatusOK, ToRecord(p, svc.Today()))
	}
}

// @Summary Registrar paciente
// @Description Gender y classification se aceptan como texto sin distinguir mayúsculas. Se devuelven todos los errores de validación juntos.
// @Tags patients
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Usuario que registra"
// @Param payload body Record true "Paciente"
// @Success 201 {object} Record
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 409 {object} httpjson.ErrorResponse "Ya existe un paciente con ese nombre para el dueño"
// @Router /api/patients [post]
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
		httpjson.WriteJSON(w, http.StatusCreated, ToRecord(created, svc.Today()))
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
		if rec.PatientID != 0 && rec.PatientID != id {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "id in path and body do not match"})
			return
		}
		rec.PatientID = id

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

// @Summary Buscar pacientes
// @Description Filtros combinables sobre pacientes activos y su dueño. Ordena por nombre del animal y luego por nombres del dueño.
// @Tags patients
// @Produce json
// @Param animal_name query string false "Contiene (sin mayúsculas)"
// @Param owner_name query string false "Contiene, sobre nombre completo del dueño"
// @Param owner_document_id query string false "Contiene"
// @Param species query string false "Igual (sin mayúsculas)"
// @Param breed query string false "Igual (sin mayúsculas)"
// @Param min_age query int false "Edad mínima en años"
// @Param max_age query int false "Edad máxima en años"
// @Param status query string false "CustomerStatus del dueño"
// @Param page query int false "Página (>= 1). Por defecto 1"
// @Param page_size query int false "Tamaño de página (1-100). Por defecto 20"
// @Success 200 {object} searchResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /api/patients/search [get]
func searchHandler(svc *Service, onSearch SearchObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, bad := pagination.ParseParams(r)

		params := SearchParams{
			AnimalName:      q.Get("animal_name"),
			OwnerName:       q.Get("owner_name"),
			OwnerDocumentID: q.Get("owner_document_id"),
			Species:         q.Get("species"),
			Breed:           q.Get("breed"),
			OwnerStatus:     q.Get("status"),
			Page:            page.Page,
			PageSize:        page.PageSize,
		}

		var problems []string
		for _, name := range bad {
			problems = append(problems, name+" must be an integer")
		}
		var err error
		if params.MinAge, err = optionalInt(q.Get("min_age")); err != nil {
			problems = append(problems, "min_age must be an integer")
		}
		if params.MaxAge, err = optionalInt(q.Get("max_age")); err != nil {
			problems = append(problems, "max_age must be an integer")
		}
		if len(problems) > 0 {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "validation failed", Errors: problems})
			return
		}

		res, params, err := svc.Search(r.Context(), params)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if onSearch != nil {
			onSearch(r, res.TotalCount)
		}

		meta := pagination.Params{Page: params.Page, PageSize: params.PageSize}.Meta(res.TotalCount)
		httpjson.WriteJSON(w, http.StatusOK, searchResponse{
			Data:       ToRecords(res.Items, svc.Today()),
			Pagination: meta,
			SearchCriteria: searchCriteria{
				AnimalName:      params.AnimalName,
				OwnerName:       params.OwnerName,
				OwnerDocumentID: params.OwnerDocumentID,
				Species:         params.Species,
				Breed:           params.Breed,
				MinAge:          params.MinAge,
				MaxAge:          params.MaxAge,
				Status:          params.OwnerStatus,
			},
		})
	}
}

func optionalInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// @Summary Catálogos para el formulario de búsqueda
// @Tags patients
// @Produce json
// @Success 200 {object} Filters
// @Router /api/patients/search/filters [get]
func filtersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Filters(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, f)
	}
}

// existsHandler: probe de unicidad (animal_name, customer_id) con exclude_id opcional.
func existsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("animal_name"))
		customerID, err := httpjson.QueryInt64(r, "customer_id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		exclude, err := httpjson.QueryInt64(r, "exclude_id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if name == "" || customerID == nil {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "animal_name and customer_id are required"})
			return
		}

		exists, err := svc.AnimalNameExistsForOwner(r.Context(), name, *customerID, exclude)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.ExistsResponse{Exists: exists})
	}
}

// @Summary Subir foto del paciente
// @Description Multipart con campo `file`. Formatos jpg, jpeg, png, gif; máximo 5 MB.
// @Tags patients
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID del paciente"
// @Param file formData file true "Imagen"
// @Success 200 {object} photoResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /api/patients/{id}/photo [post]
func uploadPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.PathID(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		// Margen para los headers del multipart.
		r.Body = http.MaxBytesReader(w, r.Body, MaxPhotoSize+1<<20)
		file, header, err := r.FormFile("file")
		if err != nil {
			httpjson.WriteJSON(w, http.StatusBadRequest, httpjson.ErrorResponse{Error: "file is required"})
			return
		}
		defer file.Close()

		url, err := svc.UploadPhoto(r.Context(), id, PhotoUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		}, middleware.Actor(r.Context()))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, photoResponse{PhotoURL: url})
	}
}

func speciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Species(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func breedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Breeds(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}
