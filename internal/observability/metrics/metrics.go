package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                    sync.Once
	metricsRouter           *chi.Mux
	evmClientLatency        *prometheus.HistogramVec
	dbLatency               *prometheus.HistogramVec
	pollerDurationHistogram *prometheus.HistogramVec
	chainFetchFailures      *prometheus.CounterVec
	buildFailureCounter     prometheus.Counter
	scoredAgentsGauge       prometheus.Gauge
	averageScoreGauge       prometheus.Gauge
	snapshotBuildDuration   prometheus.Histogram
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	evmClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "evm_client_latency_seconds",
			Help:    "Histogram of EVM RPC call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "chain", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	chainFetchFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chain_fetch_failure_count",
			Help: "Number of per-chain signal fetches that failed and degraded to zero",
		},
		[]string{"chain"},
	)

	buildFailureCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "agent_build_failure_count",
			Help: "Number of agent score builds dropped from a snapshot",
		},
	)

	scoredAgentsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scored_agents_count",
			Help: "Number of agents in the last built snapshot",
		},
	)

	averageScoreGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "average_overall_score",
			Help: "Mean overall reputation score across the last snapshot",
		},
	)

	snapshotBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_build_duration_seconds",
			Help:    "Full scored-snapshot rebuild duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
	)

	prometheus.MustRegister(
		evmClientLatency,
		dbLatency,
		pollerDurationHistogram,
		chainFetchFailures,
		buildFailureCounter,
		scoredAgentsGauge,
		averageScoreGauge,
		snapshotBuildDuration,
	)
}

func RecordEvmClientLatency(d time.Duration, method, chain string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	evmClientLatency.WithLabelValues(method, chain, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordChainFetchFailure(chain string) {
	chainFetchFailures.WithLabelValues(chain).Inc()
}

func RecordBuildFailure() {
	buildFailureCounter.Inc()
}

func RecordSnapshot(agentCount int, averageScore float64, buildDuration time.Duration) {
	scoredAgentsGauge.Set(float64(agentCount))
	averageScoreGauge.Set(averageScore)
	snapshotBuildDuration.Observe(buildDuration.Seconds())
}
