package cycle

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "lvlcycle"

// Result label values of ChecksTotal.
const (
	resultCyclic  = "cyclic"
	resultAcyclic = "acyclic"
	resultError   = "error"
)

// Metrics holds the Prometheus collectors updated by a Runner.
type Metrics struct {
	// ChecksTotal counts finished checks. Labels: result (cyclic, acyclic, error).
	ChecksTotal *prometheus.CounterVec
	// CacheHitsTotal counts jobs answered from the fingerprint cache.
	CacheHitsTotal prometheus.Counter
	// CheckDuration observes the wall time of checks that were actually run.
	CheckDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "checks_total",
			Help:      "Total cycle checks by result",
		}, []string{"result"}),
		CacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hits_total",
			Help:      "Total checks answered from the fingerprint cache",
		}),
		CheckDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "check_duration_seconds",
			Help:      "Cycle check latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
}

// record counts one finished check; nil-safe.
func (m *Metrics) record(rep *Report, err error, cached bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.ChecksTotal.WithLabelValues(resultError).Inc()
	case rep.HasCycle:
		m.ChecksTotal.WithLabelValues(resultCyclic).Inc()
	default:
		m.ChecksTotal.WithLabelValues(resultAcyclic).Inc()
	}
	if cached {
		m.CacheHitsTotal.Inc()
		return
	}
	m.CheckDuration.Observe(elapsed.Seconds())
}
