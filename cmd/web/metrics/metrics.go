package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of outbound requests to the placeholder API",
		},
		[]string{"method", "path", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of outbound requests to the placeholder API in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PageLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_loads_total",
			Help: "Total number of page data loads by outcome",
		},
		[]string{"page", "success"},
	)

	PageLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "page_load_duration_seconds",
			Help:    "Duration of page data loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"page"},
	)

	// 동시 요청이 서로 덮어쓰지 않도록 로드마다 한 번씩 관측한다. 실패한 로드는 0 이다.
	PageItemsLoaded = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "page_items_loaded",
			Help:    "Number of records handed to a page per load",
			Buckets: []float64{0, 1, 5, 10, 20, 40, 80},
		},
		[]string{"page"},
	)
)

// ObserveUpstream 는 아웃바운드 호출 하나를 기록한다. status 가 0 이면 전송 실패로 본다.
func ObserveUpstream(method, path string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(method, path, label).Inc()
	UpstreamRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObservePageLoad 는 로더 한 번의 결과를 기록한다.
func ObservePageLoad(page string, success bool, items int, duration time.Duration) {
	PageLoadsTotal.WithLabelValues(page, strconv.FormatBool(success)).Inc()
	PageLoadDuration.WithLabelValues(page).Observe(duration.Seconds())
	PageItemsLoaded.WithLabelValues(page).Observe(float64(items))
}
