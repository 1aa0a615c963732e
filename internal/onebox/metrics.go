package onebox

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the loader's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	requests    *prometheus.CounterVec // by outcome: success, failure, rate_limited
	cacheHits   prometheus.Counter
	failures    prometheus.Counter
	rateLimited prometheus.Counter
	queueLength prometheus.Gauge
}

// NewMetrics creates the loader metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil // Metrics disabled
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prettytext",
			Subsystem: "onebox",
			Name:      "requests_total",
			Help:      "Remote preview requests by outcome",
		}, []string{"outcome"}),

		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "prettytext",
			Subsystem: "onebox",
			Name:      "cache_hits_total",
			Help:      "Loads answered from the preview cache",
		}),

		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "prettytext",
			Subsystem: "onebox",
			Name:      "failures_total",
			Help:      "URLs recorded as permanent failures",
		}),

		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "prettytext",
			Subsystem: "onebox",
			Name:      "rate_limited_total",
			Help:      "Requests re-queued after a 429 response",
		}),

		queueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "prettytext",
			Subsystem: "onebox",
			Name:      "queue_length",
			Help:      "URLs waiting for a remote preview",
		}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.cacheHits, m.failures, m.rateLimited, m.queueLength} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) recordHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) recordSuccess() {
	if m == nil {
		return
	}
	m.requests.WithLabelValues("success").Inc()
}

func (m *Metrics) recordFailure() {
	if m == nil {
		return
	}
	m.requests.WithLabelValues("failure").Inc()
	m.failures.Inc()
}

func (m *Metrics) recordRateLimited() {
	if m == nil {
		return
	}
	m.requests.WithLabelValues("rate_limited").Inc()
	m.rateLimited.Inc()
}

func (m *Metrics) setQueueLength(n int) {
	if m == nil {
		return
	}
	m.queueLength.Set(float64(n))
}
