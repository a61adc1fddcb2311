package metrics

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveJobCompletion(t *testing.T) {
	initialTotal := testutil.ToFloat64(JobsTotal.WithLabelValues("students", "completed"))

	ObserveJobCompletion("students", "completed", 5.5)

	newTotal := testutil.ToFloat64(JobsTotal.WithLabelValues("students", "completed"))
	assert.Equal(t, initialTotal+1, newTotal, "JobsTotal should increment by 1")
}

func TestObserveBatch(t *testing.T) {
	initialSuccess := testutil.ToFloat64(RecordsProcessed.WithLabelValues("scores", "success"))
	initialFailure := testutil.ToFloat64(RecordsProcessed.WithLabelValues("scores", "failure"))

	ObserveBatch("scores", 0.2, 48, 2)

	assert.Equal(t, initialSuccess+48, testutil.ToFloat64(RecordsProcessed.WithLabelValues("scores", "success")))
	assert.Equal(t, initialFailure+2, testutil.ToFloat64(RecordsProcessed.WithLabelValues("scores", "failure")))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(BatchProcessingDuration), 1)
}

func TestObserveBatchZeroCounts(t *testing.T) {
	initialSuccess := testutil.ToFloat64(RecordsProcessed.WithLabelValues("students", "success"))
	initialFailure := testutil.ToFloat64(RecordsProcessed.WithLabelValues("students", "failure"))

	ObserveBatch("students", 0.01, 0, 0)

	assert.Equal(t, initialSuccess, testutil.ToFloat64(RecordsProcessed.WithLabelValues("students", "success")))
	assert.Equal(t, initialFailure, testutil.ToFloat64(RecordsProcessed.WithLabelValues("students", "failure")))
}

func TestStartEndJob(t *testing.T) {
	initialInProgress := testutil.ToFloat64(JobsInProgress.WithLabelValues("scores"))

	StartJob("scores")
	afterStart := testutil.ToFloat64(JobsInProgress.WithLabelValues("scores"))
	assert.Equal(t, initialInProgress+1, afterStart, "In-progress should increment on StartJob")

	EndJob("scores")
	afterEnd := testutil.ToFloat64(JobsInProgress.WithLabelValues("scores"))
	assert.Equal(t, initialInProgress, afterEnd, "In-progress should decrement on EndJob")
}

func TestObserveSubmission(t *testing.T) {
	initial := testutil.ToFloat64(SubmissionsTotal.WithLabelValues("students", "parse_errors"))
	ObserveSubmission("students", "parse_errors")
	assert.Equal(t, initial+1, testutil.ToFloat64(SubmissionsTotal.WithLabelValues("students", "parse_errors")))
}

func TestObserveDelivery(t *testing.T) {
	initial := testutil.ToFloat64(QueueDeliveries.WithLabelValues("students", "retried"))

	ObserveDelivery("students", "retried", 1, time.Now().Add(-time.Second))
	ObserveDelivery("students", "retried", 2, time.Time{})

	assert.Equal(t, initial+2, testutil.ToFloat64(QueueDeliveries.WithLabelValues("students", "retried")))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(QueueWait), 1)
}

func TestObserveArchive(t *testing.T) {
	initialOK := testutil.ToFloat64(ArchiveUploads.WithLabelValues("success"))
	initialErr := testutil.ToFloat64(ArchiveUploads.WithLabelValues("error"))

	ObserveArchive(nil)
	ObserveArchive(errors.New("bucket missing"))

	assert.Equal(t, initialOK+1, testutil.ToFloat64(ArchiveUploads.WithLabelValues("success")))
	assert.Equal(t, initialErr+1, testutil.ToFloat64(ArchiveUploads.WithLabelValues("error")))
}

func TestWatchQueueDepth(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		WatchQueueDepth(ctx, func(context.Context) (int64, error) { return 7, nil }, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return testutil.ToFloat64(QueueDepth) == 7 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	time.Sleep(50 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")
	assert.GreaterOrEqual(t, timer.Seconds(), 0.05)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(10 * time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	total := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total"))
	idle := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle"))
	inUse := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use"))

	assert.Equal(t, float64(10), total, "Total connections should be 10")
	assert.Equal(t, float64(5), idle, "Idle connections should be 5")
	assert.Equal(t, float64(5), inUse, "In-use connections should be 5")

	collector.Stop()
}

func TestPoolStatsCollectorMultipleCollections(t *testing.T) {
	mockProvider := &dynamicMockPoolStatsProvider{}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(5 * time.Millisecond)

	time.Sleep(25 * time.Millisecond)

	collector.Stop()

	assert.GreaterOrEqual(t, mockProvider.calls.Load(), int32(2), "Should collect multiple times")
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}

type dynamicMockPoolStatsProvider struct {
	calls atomic.Int32
}

func (m *dynamicMockPoolStatsProvider) Stat() PoolStats {
	n := m.calls.Add(1)
	return &mockPoolStats{
		total:    10 + n,
		idle:     5,
		acquired: 5 + n,
	}
}
