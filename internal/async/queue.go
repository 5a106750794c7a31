package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one pipeline run request.
type Job struct {
	InvoiceID   uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
