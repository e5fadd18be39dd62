// Package metrics provides prometheus instrumentation for the voting service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service's counters and histograms. A nil *Metrics is
// safe to use everywhere; all methods no-op on it, which keeps tests free of
// registry setup.
type Metrics struct {
	FeaturesCreated prometheus.Counter
	VotesCast       prometheus.Counter
	DuplicateVotes  prometheus.Counter
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
}

// New creates a Metrics instance with all collectors registered on the
// default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers collectors on the given registerer.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FeaturesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "featurevote_features_created_total",
			Help: "Total number of features created",
		}),
		VotesCast: factory.NewCounter(prometheus.CounterOpts{
			Name: "featurevote_votes_cast_total",
			Help: "Total number of accepted votes",
		}),
		DuplicateVotes: factory.NewCounter(prometheus.CounterOpts{
			Name: "featurevote_duplicate_votes_total",
			Help: "Total number of rejected duplicate vote attempts",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "featurevote_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "featurevote_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
	}
}

// IncFeaturesCreated records a successful feature creation.
func (m *Metrics) IncFeaturesCreated() {
	if m == nil {
		return
	}
	m.FeaturesCreated.Inc()
}

// IncVotesCast records an accepted vote.
func (m *Metrics) IncVotesCast() {
	if m == nil {
		return
	}
	m.VotesCast.Inc()
}

// IncDuplicateVotes records a rejected duplicate vote attempt.
func (m *Metrics) IncDuplicateVotes() {
	if m == nil {
		return
	}
	m.DuplicateVotes.Inc()
}

// ObserveRequest records one HTTP request's duration and count.
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
}
