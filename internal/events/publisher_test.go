package events

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpilot/invoicer/constants"
)

func testEvent() StatusChanged {
	return StatusChanged{
		InvoiceID: uuid.New(),
		UserID:    uuid.New(),
		OldStatus: constants.StatusProcessing,
		NewStatus: constants.StatusProcessed,
		Amount:    120.0,
	}
}

func newPublisher(size int) *ChannelPublisher {
	return NewChannelPublisher(size, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestChannelPublisher_Delivers(t *testing.T) {
	p := newPublisher(4)
	defer p.Close()

	ev := testEvent()
	p.Publish(context.Background(), ev)

	got := <-p.Events()
	assert.Equal(t, ev.InvoiceID, got.InvoiceID)
	assert.Equal(t, constants.StatusProcessed, got.NewStatus)
}

func TestChannelPublisher_DropsWhenFull(t *testing.T) {
	p := newPublisher(1)
	defer p.Close()

	p.Publish(context.Background(), testEvent())
	p.Publish(context.Background(), testEvent()) // buffer full, must not block

	first := <-p.Events()
	assert.NotEqual(t, uuid.Nil, first.InvoiceID)
	select {
	case _, ok := <-p.Events():
		assert.False(t, ok, "second event should have been dropped")
	default:
	}
}

func TestChannelPublisher_CloseIsIdempotent(t *testing.T) {
	p := newPublisher(1)
	p.Close()
	p.Close()

	// publishing after close is a no-op, not a panic
	p.Publish(context.Background(), testEvent())

	_, ok := <-p.Events()
	require.False(t, ok)
}
