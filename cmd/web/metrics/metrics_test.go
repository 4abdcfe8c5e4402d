package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsHistogram(t *testing.T, page string) *dto.Histogram {
	t.Helper()
	var m dto.Metric
	require.NoError(t, PageItemsLoaded.WithLabelValues(page).(prometheus.Metric).Write(&m))
	return m.GetHistogram()
}

func TestObservePageLoad(t *testing.T) {
	before := testutil.ToFloat64(PageLoadsTotal.WithLabelValues("metrics-test", "false"))

	ObservePageLoad("metrics-test", false, 0, 5*time.Millisecond)

	after := testutil.ToFloat64(PageLoadsTotal.WithLabelValues("metrics-test", "false"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, uint64(1), itemsHistogram(t, "metrics-test").GetSampleCount())
}

func TestPageItemsSurviveConcurrentLoads(t *testing.T) {
	var wg sync.WaitGroup
	for _, items := range []int{40, 0, 40, 10} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ObservePageLoad("metrics-concurrent", items > 0, items, time.Millisecond)
		}()
	}
	wg.Wait()

	// 끝난 순서와 무관하게 모든 로드가 남는다.
	h := itemsHistogram(t, "metrics-concurrent")
	assert.Equal(t, uint64(4), h.GetSampleCount())
	assert.Equal(t, float64(90), h.GetSampleSum())
}

func TestObserveUpstreamLabelsTransportFailure(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("GET", "/metrics-test", "error"))

	ObserveUpstream("GET", "/metrics-test", 0, time.Millisecond)
	ObserveUpstream("GET", "/metrics-test", 200, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("GET", "/metrics-test", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("GET", "/metrics-test", "200")))
}
