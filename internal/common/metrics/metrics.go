// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	InquiryDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_decisions_total",
			Help: "Total number of scored inquiries by decision",
		},
		[]string{"decision"},
	)

	InquiryScorePercentage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inquiry_score_percentage",
			Help:    "Distribution of inquiry score percentages",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)

	ScoreCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_score_cache_lookups_total",
			Help: "Score cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

// ObserveDecision records one scored inquiry.
func ObserveDecision(decision string, percentage int) {
	InquiryDecisions.WithLabelValues(decision).Inc()
	InquiryScorePercentage.Observe(float64(percentage))
}
