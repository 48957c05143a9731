package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "vet-clinic-records"

// Metrics agrupa los instrumentos propios del servicio. Un *Metrics nil no registra nada.
type Metrics struct {
	HTTPRequestsTotal    metric.Int64Counter
	HTTPDurationMs       metric.Float64Histogram
	LifecycleEventsTotal metric.Int64Counter
	PublishFailuresTotal metric.Int64Counter
	PatientSearchesTotal metric.Int64Counter
}

// InitMetrics crea los instrumentos sobre el MeterProvider global.
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	httpRequests, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	httpDuration, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	lifecycleEvents, err := meter.Int64Counter(
		"clinic_lifecycle_events_total",
		metric.WithDescription("Create/update/delete/restore operations per entity"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	publishFailures, err := meter.Int64Counter(
		"clinic_event_publish_failures_total",
		metric.WithDescription("Lifecycle events that could not be published"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	searches, err := meter.Int64Counter(
		"clinic_patient_searches_total",
		metric.WithDescription("Patient search requests"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		HTTPRequestsTotal:    httpRequests,
		HTTPDurationMs:       httpDuration,
		LifecycleEventsTotal: lifecycleEvents,
		PublishFailuresTotal: publishFailures,
		PatientSearchesTotal: searches,
	}, nil
}

func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	)
	m.HTTPRequestsTotal.Add(ctx, 1, attrs)
	m.HTTPDurationMs.Record(ctx, durationMs, attrs)
}

func (m *Metrics) RecordLifecycleEvent(ctx context.Context, entity, action string) {
	if m == nil {
		return
	}
	m.LifecycleEventsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("action", action),
	))
}

func (m *Metrics) RecordPublishFailure(ctx context.Context, routingKey string) {
	if m == nil {
		return
	}
	m.PublishFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("routing_key", routingKey),
	))
}

func (m *Metrics) RecordPatientSearch(ctx context.Context, results int) {
	if m == nil {
		return
	}
	m.PatientSearchesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("empty", results == 0),
	))
}
