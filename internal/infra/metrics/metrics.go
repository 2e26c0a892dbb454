// Package metrics exposes authentication counters on a private prometheus registry.
package metrics

import (
	"net/http"
	"time"

	"blindauth/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "blindauth"

// SessionCounter reports how many bearer tokens are active.
type SessionCounter interface {
	Len() int
}

// Recorder implements service.AuthMetrics.
type Recorder struct {
	operations *prometheus.CounterVec
	hashing    *prometheus.HistogramVec
}

var _ service.AuthMetrics = (*Recorder)(nil)

// Params defines the required parameters
type Params struct {
	fx.In

	Registry *prometheus.Registry
	Sessions SessionCounter `optional:"true"`
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewRecorder registers the auth collectors. Registration failures panic,
// following prometheus convention.
func NewRecorder(params Params) *Recorder {
	r := &Recorder{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_operations_total",
				Help:      "Authentication operations by outcome and error code",
			},
			[]string{"operation", "outcome", "code"},
		),
		hashing: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "secret_hash_duration_seconds",
				Help:      "Time spent hashing or verifying secrets",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"kind"},
		),
	}

	params.Registry.MustRegister(r.operations, r.hashing)

	if params.Sessions != nil {
		sessions := params.Sessions
		params.Registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_sessions",
				Help:      "Number of bearer tokens currently valid",
			},
			func() float64 { return float64(sessions.Len()) },
		))
	}

	return r
}

// RecordOperation counts one finished operation. code is empty on success.
func (r *Recorder) RecordOperation(operation, outcome, code string) {
	r.operations.WithLabelValues(operation, outcome, code).Inc()
}

// ObserveSecretHash records how long a hash or verify call took.
func (r *Recorder) ObserveSecretHash(kind string, elapsed time.Duration) {
	r.hashing.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
