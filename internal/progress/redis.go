package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
)

// RedisBroker publishes progress on a Redis channel per job so API nodes see
// events emitted by worker processes.
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker creates a broker on an existing client.
func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

// Publish sends the event to the job's channel.
func (b *RedisBroker) Publish(ctx context.Context, event domain.ProgressEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode progress event: %w", err)
	}
	if err := b.client.Publish(ctx, Channel(event.JobID), payload).Err(); err != nil {
		return fmt.Errorf("publish progress for job %s: %w", event.JobID, err)
	}
	return nil
}

// Subscribe listens on the job's channel until cancel is called or ctx ends.
func (b *RedisBroker) Subscribe(ctx context.Context, jobID string) (<-chan domain.ProgressEvent, func(), error) {
	sub := b.client.Subscribe(ctx, Channel(jobID))
	// wait for the subscription to be confirmed so no event published after
	// Subscribe returns is missed
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("subscribe to job %s: %w", jobID, err)
	}

	out := make(chan domain.ProgressEvent, subscriberBuffer)
	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = sub.Close()
		})
	}

	go func() {
		defer close(out)
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case <-done:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event domain.ProgressEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logger.WithJobID(jobID).Warn("Dropping undecodable progress event",
						slog.String("error", err.Error()))
					continue
				}
				select {
				case out <- event:
				default:
				}
			}
		}
	}()
	return out, cancel, nil
}
