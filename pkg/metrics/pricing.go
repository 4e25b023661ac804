package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics records outcomes of calls to the upstream pricing engine.
type PricingMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	inflight *prometheus.CounterVec
}

// NewPricingMetrics registers the pricing call metrics on the provided registerer.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		return &PricingMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_request_duration_seconds",
		Help:    "Duration of upstream pricing requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_request_success",
		Help: "Successful upstream pricing requests.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_request_failure",
		Help: "Failed upstream pricing requests.",
	}, []string{"operation"})
	inflight := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_request_rejected_inflight",
		Help: "Pricing requests rejected because an identical request was already running.",
	}, []string{"operation"})
	reg.MustRegister(duration, success, failure, inflight)
	return &PricingMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		inflight: inflight,
	}
}

// ObserveDuration records the duration for the named operation.
func (p *PricingMetrics) ObserveDuration(operation string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (p *PricingMetrics) IncSuccess(operation string) {
	if p == nil || p.success == nil {
		return
	}
	p.success.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncFailure increments the failure counter for the named operation.
func (p *PricingMetrics) IncFailure(operation string) {
	if p == nil || p.failure == nil {
		return
	}
	p.failure.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncInFlightRejected increments the duplicate-rejection counter.
func (p *PricingMetrics) IncInFlightRejected(operation string) {
	if p == nil || p.inflight == nil {
		return
	}
	p.inflight.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
