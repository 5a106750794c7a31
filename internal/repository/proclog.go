package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/gen/ent"
	"github.com/paperpilot/invoicer/gen/ent/processinglog"
	"github.com/paperpilot/invoicer/internal/entity"
	"github.com/paperpilot/invoicer/internal/utils"
)

// ProcessingLogRepository is append-only: entries are written once and
// listed in insertion order.
type ProcessingLogRepository interface {
	Append(ctx context.Context, e *entity.LogEntry) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.LogEntry, error)
}

type processingLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProcessingLogRepository(client *ent.Client, logger *slog.Logger) ProcessingLogRepository {
	return &processingLogRepository{client: client, logger: logger}
}

func (r *processingLogRepository) Append(ctx context.Context, e *entity.LogEntry) error {
	c := r.client.ProcessingLog.Create().
		SetInvoiceID(e.InvoiceID).
		SetStage(string(e.Stage)).
		SetStatus(string(e.Status)).
		SetMessage(e.Message).
		SetAttempt(e.Attempt).
		SetDurationMs(e.DurationMS)
	if e.Details != nil {
		c = c.SetDetails(e.Details)
	}
	if _, err := c.Save(ctx); err != nil {
		r.logger.Error("proclog.append.failed", "invoice_id", e.InvoiceID, "stage", e.Stage, "error", err)
		return err
	}
	return nil
}

func (r *processingLogRepository) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.LogEntry, error) {
	rows, err := r.client.ProcessingLog.Query().
		Where(processinglog.InvoiceIDEQ(invoiceID)).
		Order(processinglog.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.LogEntry, len(rows))
	for i, row := range rows {
		out[i] = utils.ToLogEntry(row)
	}
	return out, nil
}
