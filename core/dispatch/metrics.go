package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	planLatency      *prometheus.HistogramVec
	plansComputed    *prometheus.CounterVec
	correctionsTotal *prometheus.CounterVec
	publishSuccess   prometheus.Counter
	publishFailure   prometheus.Counter
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.HistogramVec, *prometheus.CounterVec, *prometheus.CounterVec, prometheus.Counter, prometheus.Counter) {
	lat := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "productionplan_compute_seconds",
			Help:    "Time spent validating, allocating and exporting a plan",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"correction"},
	)
	plans := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productionplan_requests_total",
			Help: "Number of plan requests by outcome",
		},
		[]string{"outcome"},
	)
	corr := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productionplan_corrections_total",
			Help: "Number of minimum-output corrections applied",
		},
		[]string{"correction"},
	)
	suc := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "productionplan_publish_success_total",
			Help: "Number of plans published successfully",
		},
	)
	fail := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "productionplan_publish_failure_total",
			Help: "Number of failed plan publications",
		},
	)
	return lat, plans, corr, suc, fail
}

func init() {
	planLatency, plansComputed, correctionsTotal, publishSuccess, publishFailure = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers dispatch metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(planLatency, plansComputed, correctionsTotal, publishSuccess, publishFailure)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	planLatency, plansComputed, correctionsTotal, publishSuccess, publishFailure = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
