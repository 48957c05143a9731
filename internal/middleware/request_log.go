package middleware

import (
	"net/http"
	"time"

	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/platform/telemetry"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog deja un logger con request_id en el contexto, loguea cada request
// y registra la métrica HTTP. metrics puede ser nil.
func RequestLog(log logger.Logger, metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rid := chimw.GetReqID(r.Context())

			reqLog := log.With(map[string]any{"request_id": rid})
			r = r.WithContext(logger.WithContext(r.Context(), reqLog))

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			elapsed := time.Since(start)
			fields := map[string]any{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"latency_ms": elapsed.Milliseconds(),
				"remote_ip":  r.RemoteAddr,
				"actor":      Actor(r.Context()),
			}
			if status >= http.StatusInternalServerError {
				reqLog.Error("request", fields)
			} else {
				reqLog.Info("request", fields)
			}

			metrics.RecordHTTPRequest(r.Context(), r.Method, route, status, float64(elapsed.Microseconds())/1000)
		})
	}
}
