// Package metrics holds the Prometheus collectors of the generator.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"onboardpdf/internal/model"
)

// Result label values of onboarding_documents_total.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds the generator's collectors.
type Metrics struct {
	documents      *prometheus.CounterVec
	signatures     *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboarding_documents_total",
				Help: "Onboarding documents generated, by result.",
			},
			[]string{"result"},
		),
		signatures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "onboarding_signature_total",
				Help: "Signature payloads handled, by outcome.",
			},
			[]string{"outcome"},
		),
		renderDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "onboarding_render_duration_seconds",
				Help:    "Time spent laying out and serializing a document.",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.documents, m.signatures, m.renderDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Document counts one finished call.
func (m *Metrics) Document(err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.documents.WithLabelValues(result).Inc()
}

// Signature counts one signature outcome.
func (m *Metrics) Signature(outcome model.SignatureOutcome) {
	if m == nil {
		return
	}
	m.signatures.WithLabelValues(string(outcome)).Inc()
}

// ObserveRender records a render duration.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(d.Seconds())
}
