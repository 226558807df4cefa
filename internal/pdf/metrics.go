package pdf

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks PDF rendering. A nil *Metrics records nothing.
type Metrics struct {
	renders  *prometheus.CounterVec
	latency  prometheus.Histogram
	inUse    prometheus.Gauge
	launches prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "megapayer",
				Subsystem: "pdf",
				Name:      "renders_total",
				Help:      "Whitepaper PDF renders by outcome",
			},
			[]string{"outcome"},
		),
		latency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "megapayer",
				Subsystem: "pdf",
				Name:      "render_duration_seconds",
				Help:      "Time from request to finished PDF",
				Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 45},
			},
		),
		inUse: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "megapayer",
				Subsystem: "pdf",
				Name:      "browsers_in_use",
				Help:      "Browsers currently checked out of the pool",
			},
		),
		launches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "megapayer",
				Subsystem: "pdf",
				Name:      "browser_launches_total",
				Help:      "Headless browser processes started",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.renders, m.latency, m.inUse, m.launches)
	}
	return m
}

func (m *Metrics) observe(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(outcome).Inc()
	m.latency.Observe(took.Seconds())
}

func (m *Metrics) setInUse(n int) {
	if m == nil {
		return
	}
	m.inUse.Set(float64(n))
}

func (m *Metrics) launched() {
	if m == nil {
		return
	}
	m.launches.Inc()
}
