// Package progress carries per-batch progress events from the workers to
// whoever is watching a job.
package progress

import (
	"context"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// subscriberBuffer is the number of events a slow subscriber may lag behind
// before events are dropped for it.
const subscriberBuffer = 16

// Publisher emits progress events. Publishing never blocks on subscribers.
type Publisher interface {
	Publish(ctx context.Context, event domain.ProgressEvent) error
}

// Subscriber streams the progress events of one job. The returned channel is
// closed once cancel is called or ctx ends.
type Subscriber interface {
	Subscribe(ctx context.Context, jobID string) (events <-chan domain.ProgressEvent, cancel func(), err error)
}

// Broker is both ends of the progress signal.
type Broker interface {
	Publisher
	Subscriber
}

// Channel returns the pub/sub channel name for a job.
func Channel(jobID string) string {
	return "imports:progress:" + jobID
}
