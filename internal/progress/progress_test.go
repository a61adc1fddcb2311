package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/progress"
)

func event(jobID string, processed int) domain.ProgressEvent {
	return domain.ProgressEvent{
		JobID:      jobID,
		TenantID:   "tenant-1",
		Status:     domain.JobStatusProcessing,
		Processed:  processed,
		Total:      100,
		Successful: processed,
		Percentage: float64(processed),
		At:         time.Now().UTC(),
	}
}

func receive(t *testing.T, ch <-chan domain.ProgressEvent) domain.ProgressEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("no progress event received")
	}
	return domain.ProgressEvent{}
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "imports:progress:job-1", progress.Channel("job-1"))
}

func TestMemoryBroker(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers only the subscribed job", func(t *testing.T) {
		b := progress.NewMemoryBroker()
		events, cancel, err := b.Subscribe(ctx, "job-1")
		require.NoError(t, err)
		defer cancel()

		require.NoError(t, b.Publish(ctx, event("job-2", 10)))
		require.NoError(t, b.Publish(ctx, event("job-1", 50)))

		ev := receive(t, events)
		assert.Equal(t, "job-1", ev.JobID)
		assert.Equal(t, 50, ev.Processed)
	})

	t.Run("cancel closes the channel and unregisters", func(t *testing.T) {
		b := progress.NewMemoryBroker()
		events, cancel, err := b.Subscribe(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, 1, b.Subscribers("job-1"))

		cancel()
		cancel()
		_, ok := <-events
		assert.False(t, ok)
		assert.Equal(t, 0, b.Subscribers("job-1"))
		assert.NoError(t, b.Publish(ctx, event("job-1", 1)))
	})

	t.Run("context end unsubscribes", func(t *testing.T) {
		b := progress.NewMemoryBroker()
		subCtx, stop := context.WithCancel(ctx)
		events, _, err := b.Subscribe(subCtx, "job-1")
		require.NoError(t, err)

		stop()
		assert.Eventually(t, func() bool { return b.Subscribers("job-1") == 0 }, time.Second, 10*time.Millisecond)
		_, ok := <-events
		assert.False(t, ok)
	})

	t.Run("slow subscriber does not block publishing", func(t *testing.T) {
		b := progress.NewMemoryBroker()
		_, cancel, err := b.Subscribe(ctx, "job-1")
		require.NoError(t, err)
		defer cancel()

		done := make(chan struct{})
		go func() {
			for i := 0; i < 100; i++ {
				_ = b.Publish(ctx, event("job-1", i))
			}
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("publish blocked on a full subscriber")
		}
	})
}

func TestRedisBroker(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}
	defer func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}()

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	b := progress.NewRedisBroker(client)

	events, cancel, err := b.Subscribe(ctx, "job-1")
	require.NoError(t, err)

	require.NoError(t, b.Publish(ctx, event("job-2", 5)))
	require.NoError(t, b.Publish(ctx, event("job-1", 40)))

	ev := receive(t, events)
	assert.Equal(t, "job-1", ev.JobID)
	assert.Equal(t, 40, ev.Processed)
	assert.Equal(t, domain.JobStatusProcessing, ev.Status)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)
}
