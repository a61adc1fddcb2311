// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, import jobs, the work queue,
// and database operations.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "schoolos_imports"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	HTTPRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-tenant rate limit",
		},
		[]string{"path"},
	)

	// Submission metrics - intake outcomes before a job exists
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submissions",
			Name:      "total",
			Help:      "Total number of import submissions by kind and result code",
		},
		[]string{"kind", "result"},
	)

	// Job metrics - track import job processing
	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "total",
			Help:      "Total number of finished jobs by kind and terminal status",
		},
		[]string{"kind", "status"},
	)

	JobsInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "in_progress",
			Help:      "Number of jobs currently being processed by this process",
		},
		[]string{"kind"},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "duration_seconds",
			Help:      "Job processing duration in seconds",
			Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"kind"},
	)

	// Record processing metrics - track records within jobs
	RecordsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "processed_total",
			Help:      "Total number of records processed by kind and result",
		},
		[]string{"kind", "result"},
	)

	BatchProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "batch_duration_seconds",
			Help:      "Batch processing duration in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"kind"},
	)

	// Queue metrics - deliveries and backlog
	QueueDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "deliveries_total",
			Help:      "Total number of task deliveries by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	QueueWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "wait_seconds",
			Help:      "Time between enqueue and the start of processing",
			Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"kind"},
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "depth",
			Help:      "Number of tasks waiting to be consumed",
		},
	)

	// Archive metrics - source file copies
	ArchiveUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "archive",
			Name:      "uploads_total",
			Help:      "Total number of source archive uploads by result",
		},
		[]string{"result"},
	)

	// Progress metrics - websocket watchers
	ProgressSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "progress",
			Name:      "subscribers",
			Help:      "Number of open progress streams",
		},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// DepthFunc reports the number of queued tasks.
type DepthFunc func(ctx context.Context) (int64, error)

// WatchQueueDepth samples the queue depth every interval until ctx ends.
func WatchQueueDepth(ctx context.Context, depth DepthFunc, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if n, err := depth(ctx); err == nil {
			QueueDepth.Set(float64(n))
		} else if ctx.Err() == nil {
			slog.Debug("Queue depth unavailable", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ObserveSubmission counts an intake attempt. result is "accepted" or the
// rejection code.
func ObserveSubmission(kind, result string) {
	SubmissionsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveJobCompletion records metrics when a job reaches a terminal status
func ObserveJobCompletion(kind, status string, durationSeconds float64) {
	JobsTotal.WithLabelValues(kind, status).Inc()
	JobDuration.WithLabelValues(kind).Observe(durationSeconds)
}

// ObserveBatch records the outcome of one applied batch
func ObserveBatch(kind string, durationSeconds float64, successCount, failureCount int) {
	BatchProcessingDuration.WithLabelValues(kind).Observe(durationSeconds)
	if successCount > 0 {
		RecordsProcessed.WithLabelValues(kind, "success").Add(float64(successCount))
	}
	if failureCount > 0 {
		RecordsProcessed.WithLabelValues(kind, "failure").Add(float64(failureCount))
	}
}

// StartJob increments the in-progress counter for a job
func StartJob(kind string) {
	JobsInProgress.WithLabelValues(kind).Inc()
}

// EndJob decrements the in-progress counter for a job
func EndJob(kind string) {
	JobsInProgress.WithLabelValues(kind).Dec()
}

// ObserveDelivery records one queue delivery and, for first attempts, how long
// the task waited.
func ObserveDelivery(kind, outcome string, attempt int, enqueuedAt time.Time) {
	QueueDeliveries.WithLabelValues(kind, outcome).Inc()
	if attempt == 1 && !enqueuedAt.IsZero() {
		QueueWait.WithLabelValues(kind).Observe(time.Since(enqueuedAt).Seconds())
	}
}

// ObserveArchive counts one archive upload attempt.
func ObserveArchive(err error) {
	if err != nil {
		ArchiveUploads.WithLabelValues("error").Inc()
		return
	}
	ArchiveUploads.WithLabelValues("success").Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// Seconds returns the elapsed time in seconds
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}
