package router

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	_ "vet-clinic-records/docs"
	"vet-clinic-records/internal/adapters/blobstore"
	"vet-clinic-records/internal/adapters/messaging"
	mem "vet-clinic-records/internal/adapters/storage/memory"
	pg "vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/domain/customers"
	"vet-clinic-records/internal/domain/medicaments"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/prescriptions"
	"vet-clinic-records/internal/domain/treatments"
	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/httpjson"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/platform/telemetry"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger      // nil => descarta
	Metrics *telemetry.Metrics // puede ser nil

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// nil => los eventos solo quedan en el log.
	Publisher messaging.Publisher

	// nil => blob store en memoria (fotos no servidas).
	Photos patients.PhotoStore
	// Si viene, se sirve como archivos estáticos bajo UploadBaseURL.
	UploadDir     string
	UploadBaseURL string

	CORSOrigins []string
}

type repos struct {
	customers     customers.Repository
	patients      patients.Repository
	medicaments   medicaments.Repository
	treatments    treatments.Repository
	prescriptions prescriptions.Repository
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			customers:     pg.NewCustomerRepo(db),
			patients:      pg.NewPatientRepo(db),
			medicaments:   pg.NewMedicamentRepo(db),
			treatments:    pg.NewTreatmentRepo(db),
			prescriptions: pg.NewPrescriptionRepo(db),
		}
	}
	s := mem.NewStore()
	return repos{
		customers:     mem.NewCustomerRepo(s),
		patients:      mem.NewPatientRepo(s),
		medicaments:   mem.NewMedicamentRepo(s),
		treatments:    mem.NewTreatmentRepo(s),
		prescriptions: mem.NewPrescriptionRepo(s),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	uploadBase := opts.UploadBaseURL
	if uploadBase == "" {
		uploadBase = "/uploads"
	}
	photos := opts.Photos
	if photos == nil {
		photos = blobstore.NewMemoryStore(uploadBase)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.ActorContext)
	r.Use(middleware.RequestLog(log, opts.Metrics))

	r.Get("/health", healthHandler(opts.DB))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if opts.UploadDir != "" && strings.HasPrefix(uploadBase, "/") {
		prefix := strings.TrimRight(uploadBase, "/") + "/"
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(opts.UploadDir))))
	}

	rp := newRepos(opts.DB)
	hook := messaging.NewHook(opts.Publisher, opts.Metrics, log)

	// Services por módulo; las referencias al padre se validan contra su repo.
	customersSvc := customers.NewService(rp.customers, hook)
	patientsSvc := patients.NewService(rp.patients, rp.customers, photos, hook)
	medicamentsSvc := medicaments.NewService(rp.medicaments, hook)
	treatmentsSvc := treatments.NewService(rp.treatments, rp.patients, hook)
	prescriptionsSvc := prescriptions.NewService(rp.prescriptions, rp.treatments, rp.medicaments, hook)

	// Rutas por módulo
	customers.RegisterRoutes(r, customersSvc, patientsSvc)
	patients.RegisterRoutes(r, patientsSvc, func(req *http.Request, results int) {
		opts.Metrics.RecordPatientSearch(req.Context(), results)
	})
	medicaments.RegisterRoutes(r, medicamentsSvc)
	treatments.RegisterRoutes(r, treatmentsSvc, prescriptionsSvc)
	prescriptions.RegisterRoutes(r, prescriptionsSvc)

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			httpjson.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "memory"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.FromContext(r.Context()).Warn("health check failed", map[string]any{"error": err})
			httpjson.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Storage: "postgres"})
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "postgres"})
	}
}
