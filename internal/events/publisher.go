package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/constants"
)

// StatusChanged is emitted on every terminal-or-advancing status
// transition. Analytics rollups consume these asynchronously; the pipeline
// never waits on them.
type StatusChanged struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
	VendorID  uuid.UUID
	OldStatus constants.InvoiceStatus
	NewStatus constants.InvoiceStatus
	Amount    float64
	Timestamp time.Time
}

// Publisher is the outbound analytics boundary.
type Publisher interface {
	Publish(ctx context.Context, ev StatusChanged)
}

// ChannelPublisher fans events into a buffered channel for an in-process
// consumer. Publishing never blocks the pipeline: when the buffer is full
// the event is dropped with a warning, since rollups can always be
// recomputed from invoice rows.
type ChannelPublisher struct {
	ch     chan StatusChanged
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

func NewChannelPublisher(size int, logger *slog.Logger) *ChannelPublisher {
	if size <= 0 {
		size = 256
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChannelPublisher{ch: make(chan StatusChanged, size), logger: logger}
}

func (p *ChannelPublisher) Publish(_ context.Context, ev StatusChanged) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.ch <- ev:
	default:
		p.logger.Warn("events.publish.dropped",
			"invoice_id", ev.InvoiceID, "new_status", ev.NewStatus)
	}
}

// Events returns the consumer side of the stream.
func (p *ChannelPublisher) Events() <-chan StatusChanged {
	return p.ch
}

func (p *ChannelPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
}

// NopPublisher discards events; used where analytics is not wired.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, StatusChanged) {}
