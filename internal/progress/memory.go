package progress

import (
	"context"
	"sync"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// MemoryBroker fans events out to in-process subscribers.
type MemoryBroker struct {
	mu   sync.Mutex
	subs map[string]map[chan domain.ProgressEvent]struct{}
}

// NewMemoryBroker creates an empty broker.
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[string]map[chan domain.ProgressEvent]struct{})}
}

// Publish delivers the event to every current subscriber of the job.
// Subscribers whose buffer is full miss the event.
func (b *MemoryBroker) Publish(_ context.Context, event domain.ProgressEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs[event.JobID] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe registers a subscriber for one job.
func (b *MemoryBroker) Subscribe(ctx context.Context, jobID string) (<-chan domain.ProgressEvent, func(), error) {
	ch := make(chan domain.ProgressEvent, subscriberBuffer)

	b.mu.Lock()
	if b.subs[jobID] == nil {
		b.subs[jobID] = make(map[chan domain.ProgressEvent]struct{})
	}
	b.subs[jobID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[jobID], ch)
			if len(b.subs[jobID]) == 0 {
				delete(b.subs, jobID)
			}
			b.mu.Unlock()
			close(ch)
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ch, cancel, nil
}

// Subscribers returns the number of subscribers watching a job.
func (b *MemoryBroker) Subscribers(jobID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[jobID])
}
