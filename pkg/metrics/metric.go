package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder. receives timings and counters of the planning pipeline.
type Recorder interface {
	ObserveStage(stage string, d time.Duration)
	AddStates(criterion string, states int)
	IncPlans(criterion, status string)
}

type SolverMetrics struct {
	stageDuration *prometheus.HistogramVec
	dpStates      *prometheus.CounterVec
	plans         *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewSolverMetrics. register the collectors on reg (prometheus.DefaultRegisterer for the /metrics endpoint).
func NewSolverMetrics(reg prometheus.Registerer) *SolverMetrics {
	factory := promauto.With(reg)
	return &SolverMetrics{
		stageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tour_stage_duration_seconds",
				Help:    "Duration of each planning stage in seconds",
				Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"stage"},
		),
		dpStates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tour_dp_states_total",
				Help: "Total number of held-karp states computed",
			},
			[]string{"criterion"},
		),
		plans: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tour_plans_total",
				Help: "Total number of planned tours",
			},
			[]string{"criterion", "status"}, // ok, error
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
	}
}

func (m *SolverMetrics) ObserveStage(stage string, d time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *SolverMetrics) AddStates(criterion string, states int) {
	m.dpStates.WithLabelValues(criterion).Add(float64(states))
}

func (m *SolverMetrics) IncPlans(criterion, status string) {
	m.plans.WithLabelValues(criterion, status).Inc()
}

func (m *SolverMetrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// NopRecorder. discards everything.
type NopRecorder struct{}

func (NopRecorder) ObserveStage(string, time.Duration) {}
func (NopRecorder) AddStates(string, int)              {}
func (NopRecorder) IncPlans(string, string)            {}
