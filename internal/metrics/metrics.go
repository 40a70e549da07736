// Package metrics exposes prometheus instruments for question loading.
package metrics

import (
	"devops-reference/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devops_reference"

type Metrics struct {
	loads     *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	questions prometheus.Gauge
	cacheHits *prometheus.CounterVec
}

// New registers the instruments with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Completed question loads by the source that produced them.",
		}, []string{"source"}),
		fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_fallbacks_total",
			Help:      "Question sources that failed during a load and were skipped.",
		}, []string{"source"}),
		questions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "questions_loaded",
			Help:      "Number of questions in the current snapshot.",
		}),
		cacheHits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rendered_answer_cache_total",
			Help:      "Rendered answer cache lookups by result.",
		}, []string{"result"}),
	}
}

// ObserveLoad records a published snapshot. Safe on a nil receiver.
func (m *Metrics) ObserveLoad(s *domain.Snapshot) {
	if m == nil || s == nil {
		return
	}
	m.loads.WithLabelValues(string(s.Source)).Inc()
	m.questions.Set(float64(s.Size()))
}

// ObserveFallback records a source that was skipped. Safe on a nil receiver.
func (m *Metrics) ObserveFallback(source domain.SourceKind) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(string(source)).Inc()
}

// ObserveCache records a rendered answer cache lookup. Safe on a nil receiver.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheHits.WithLabelValues(result).Inc()
}
