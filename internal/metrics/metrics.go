// Package metrics defines the Prometheus metrics exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Intent metrics
	IntentRequestsTotal   *prometheus.CounterVec
	IntentDurationSeconds *prometheus.HistogramVec

	// Collaborator metrics
	CollaboratorRequestsTotal   *prometheus.CounterVec
	CollaboratorDurationSeconds *prometheus.HistogramVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Content metrics
	ContentObjectsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		// Intent metrics
		IntentRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "winston_intent_requests_total",
				Help: "Total number of dispatched intents by intent, phase and resulting dialog action",
			},
			[]string{"intent", "phase", "action"}, // phase: eliciting, fulfilling; action: ElicitSlot, Delegate, Close
		),

		IntentDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "winston_intent_duration_seconds",
				Help:    "Intent handling duration in seconds",
				Buckets: []float64{0.005, 0.05, 0.25, 0.5, 1, 2, 5, 10, 30}, // CreatePTORequest chains four calls
			},
			[]string{"intent"},
		),

		// Collaborator metrics
		CollaboratorRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "winston_collaborator_requests_total",
				Help: "Total number of outbound collaborator calls by service and status",
			},
			[]string{"service", "status"}, // status: success, error, timeout
		),

		CollaboratorDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "winston_collaborator_duration_seconds",
				Help:    "Outbound collaborator call duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}, // Clients time out at 6-10s
			},
			[]string{"service"}, // service: bamboo, slack, parking, numbers, calendar
		),

		// HTTP metrics
		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "winston_http_errors_total",
				Help: "Total inbound request errors by type",
			},
			[]string{"error_type"}, // error_type: bad_request, unauthorized, invalid_bot, unsupported_intent, internal
		),

		// Content metrics
		ContentObjectsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "winston_content_objects_total",
				Help: "Static content objects applied at start-up by source",
			},
			[]string{"source"}, // source: embedded, bucket
		),
	}
}

// RecordIntent records one dispatched intent.
func (m *Metrics) RecordIntent(intent, phase, action string, duration float64) {
	m.IntentRequestsTotal.WithLabelValues(intent, phase, action).Inc()
	m.IntentDurationSeconds.WithLabelValues(intent).Observe(duration)
}

// RecordCollaborator records one outbound collaborator call.
func (m *Metrics) RecordCollaborator(service, status string, duration float64) {
	m.CollaboratorRequestsTotal.WithLabelValues(service, status).Inc()
	m.CollaboratorDurationSeconds.WithLabelValues(service).Observe(duration)
}

// RecordHTTPError records an inbound request that was rejected or failed.
func (m *Metrics) RecordHTTPError(errorType string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordContentObject records where a content object came from.
func (m *Metrics) RecordContentObject(source string) {
	m.ContentObjectsTotal.WithLabelValues(source).Inc()
}
