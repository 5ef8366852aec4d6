package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds. Face detection dominates frame latency.
	latencyBuckets = []float64{
		10, 25, 50,
		100, 250, 500,
		1000, 2500, 5000,
		10000,
	}

	FramesAnalyzedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "proctor_frames_analyzed_total",
			Help: "Total number of proctoring frames analyzed",
		},
		[]string{"result"},
	)

	ViolationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "proctor_violations_total",
			Help: "Total number of proctoring violations recorded",
		},
		[]string{"type"},
	)

	AnalysisLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "proctor_analysis_latency_ms",
			Help:    "Frame analysis latency in milliseconds",
			Buckets: latencyBuckets,
		},
	)

	HTTPRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "proctor_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "status"},
	)

	SubmissionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "proctor_submissions_total",
			Help: "Total number of exam submissions by proctoring recommendation",
		},
		[]string{"recommendation"},
	)

	ActiveStreams = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "proctor_active_streams",
			Help: "Number of open proctoring websocket streams",
		},
	)
)

type MetricsConfig struct {
	EnableLatency bool
	EnableStreams bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
		EnableStreams: true,
	}
}

var Config = DefaultMetricsConfig()

var initOnce sync.Once

// Initialize may be called more than once; collectors are registered only the first time.
func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Gatherer() prometheus.Gatherer {
	return registry
}
