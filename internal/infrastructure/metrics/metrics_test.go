package metrics

import (
	"testing"
	"time"

	"github.com/greenlens/backend/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAnalysis(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.ObserveAnalysis(domain.SectionCarbon, "success", 2*time.Second)
	m.ObserveAnalysis(domain.SectionCarbon, "success", 2*time.Second)
	m.ObserveAnalysis(domain.SectionCarbon, "busy", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("carbon", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("carbon", "busy")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AnalysisDuration))
}

func TestObserveHTTP(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.ObserveHTTP("GET", "/health", "200", 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

func TestObserveRateLimited(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.ObserveRateLimited()
	m.ObserveRateLimited()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RateLimitedTotal))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("dup", reg)
	assert.Panics(t, func() { New("dup", reg) })
}
