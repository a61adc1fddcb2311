package queue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/queue"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisQueue(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := setupRedis(t)
	ctx := context.Background()

	t.Run("delivers and acknowledges", func(t *testing.T) {
		q := queue.NewRedisQueue(client, "test:deliver", "worker-1", queue.Options{})
		require.NoError(t, q.Enqueue(ctx, studentTask("job-1", 3)))

		got := make(chan *queue.Task, 1)
		stop := consume(t, q, 1, func(ctx context.Context, task *queue.Task) error {
			got <- task
			return nil
		})

		select {
		case task := <-got:
			assert.Equal(t, "job-1", task.JobID)
			assert.Len(t, task.Students, 3)
			assert.Equal(t, 1, task.Attempt)
		case <-time.After(10 * time.Second):
			t.Fatal("task not delivered")
		}
		stop()

		assert.Eventually(t, func() bool {
			n, err := client.LLen(ctx, "test:deliver:processing:worker-1").Result()
			return err == nil && n == 0
		}, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("retries then dead-letters", func(t *testing.T) {
		exhausted := make(chan *queue.Task, 1)
		q := queue.NewRedisQueue(client, "test:retry", "worker-1", queue.Options{
			MaxAttempts: 2,
			RetryDelay:  10 * time.Millisecond,
			OnExhausted: func(ctx context.Context, task *queue.Task, err error) { exhausted <- task },
		})
		require.NoError(t, q.Enqueue(ctx, studentTask("job-2", 1)))

		stop := consume(t, q, 1, func(ctx context.Context, task *queue.Task) error {
			return errors.New("store unavailable")
		})
		defer stop()

		select {
		case task := <-exhausted:
			assert.Equal(t, 2, task.Attempt)
		case <-time.After(15 * time.Second):
			t.Fatal("task never exhausted")
		}

		assert.Eventually(t, func() bool {
			n, err := q.DeadLetters(ctx)
			return err == nil && n == 1
		}, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("recovers unfinished tasks on start", func(t *testing.T) {
		q := queue.NewRedisQueue(client, "test:recover", "worker-1", queue.Options{})
		require.NoError(t, q.Enqueue(ctx, studentTask("job-3", 1)))

		// simulate a worker that crashed after taking the task
		require.NoError(t, client.RPopLPush(ctx, "test:recover:pending", "test:recover:processing:worker-1").Err())
		depth, err := q.Depth(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), depth)

		got := make(chan string, 1)
		stop := consume(t, q, 1, func(ctx context.Context, task *queue.Task) error {
			got <- task.JobID
			return nil
		})
		defer stop()

		select {
		case id := <-got:
			assert.Equal(t, "job-3", id)
		case <-time.After(10 * time.Second):
			t.Fatal("recovered task not delivered")
		}
	})
}
