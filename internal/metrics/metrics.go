package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "music_portfolio",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "music_portfolio",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// UploadedBytes объём принятых файлов
	UploadedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "music_portfolio",
			Name:      "uploaded_bytes_total",
			Help:      "Total size of accepted uploads in bytes.",
		},
	)

	SeededRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "music_portfolio",
			Name:      "seeded_records_total",
			Help:      "Demo records written by the seeder.",
		},
		[]string{"resource"},
	)
)
