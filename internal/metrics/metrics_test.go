package metrics

import (
	"testing"

	"devops-reference/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveFallback(domain.SourceStructured)
	m.ObserveLoad(&domain.Snapshot{Source: domain.SourceMarkdown, Questions: domain.QuestionSet{"a": {}, "b": {}}})
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks.WithLabelValues("structured")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("markdown")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.questions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("miss")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLoad(&domain.Snapshot{})
		m.ObserveFallback(domain.SourceMarkdown)
		m.ObserveCache(true)
	})
}
