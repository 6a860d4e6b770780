package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the ad engine. All recording
// helpers tolerate a nil receiver so callers wired without metrics (tests,
// tools) need no guards.
type Metrics struct {
	DeliveriesServed *prometheus.CounterVec
	DeliveriesEmpty  *prometheus.CounterVec
	EventsWritten    *prometheus.CounterVec
	ReportRequests   *prometheus.CounterVec
	RateLimitHits    prometheus.Counter
}

// New creates and registers all metrics on the default registry under the
// given namespace. Call once per process.
func New(namespace string) *Metrics {
	return &Metrics{
		DeliveriesServed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deliveries_served_total",
				Help:      "Deliveries that returned a creative",
			},
			[]string{"slot"},
		),
		DeliveriesEmpty: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deliveries_empty_total",
				Help:      "Deliveries that returned no creative",
			},
			[]string{"slot", "reason"},
		),
		EventsWritten: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_written_total",
				Help:      "Impression and click events appended to the log",
			},
			[]string{"event_type"},
		),
		ReportRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_requests_total",
				Help:      "Campaign report requests by outcome",
			},
			[]string{"status"},
		),
		RateLimitHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_hits_total",
				Help:      "Requests rejected by the delivery rate limiter",
			},
		),
	}
}

// RecordDelivery counts a served delivery for a slot.
func (m *Metrics) RecordDelivery(slot string) {
	if m != nil {
		m.DeliveriesServed.WithLabelValues(slot).Inc()
	}
}

// RecordEmptyDelivery counts a no-fill outcome with its reason.
func (m *Metrics) RecordEmptyDelivery(slot, reason string) {
	if m != nil {
		m.DeliveriesEmpty.WithLabelValues(slot, reason).Inc()
	}
}

// RecordEvent counts an appended event by type.
func (m *Metrics) RecordEvent(eventType string) {
	if m != nil {
		m.EventsWritten.WithLabelValues(eventType).Inc()
	}
}

// RecordReport counts a report request outcome ("ok" or "error").
func (m *Metrics) RecordReport(status string) {
	if m != nil {
		m.ReportRequests.WithLabelValues(status).Inc()
	}
}

// RecordRateLimitHit counts a rejected request.
func (m *Metrics) RecordRateLimitHit() {
	if m != nil {
		m.RateLimitHits.Inc()
	}
}
