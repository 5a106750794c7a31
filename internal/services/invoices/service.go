package invoices

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/internal/async"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/entity"
	"github.com/paperpilot/invoicer/internal/events"
	"github.com/paperpilot/invoicer/internal/repository"
	"github.com/paperpilot/invoicer/internal/workflow"
)

// MaxUploadBytes bounds a single document upload.
const MaxUploadBytes = 25 << 20

// Service handles invoice business logic outside the pipeline itself:
// uploads, user-driven transitions, and reads.
type Service struct {
	invoices  repository.InvoiceRepository
	documents repository.DocumentRepository
	logs      repository.ProcessingLogRepository
	queue     async.Queue
	events    events.Publisher
	logger    *slog.Logger
}

func NewService(
	invoices repository.InvoiceRepository,
	documents repository.DocumentRepository,
	logs repository.ProcessingLogRepository,
	queue async.Queue,
	publisher events.Publisher,
	logger *slog.Logger,
) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		invoices:  invoices,
		documents: documents,
		logs:      logs,
		queue:     queue,
		events:    publisher,
		logger:    logger,
	}
}

// UploadRequest carries one document to ingest.
type UploadRequest struct {
	UserID   uuid.UUID
	Filename string
	MIMEType string
	Content  []byte
	Notes    *string
	Tags     []string
	// Enqueue the pipeline immediately after upload.
	AutoProcess bool
}

// Upload stores the document, creates the pending invoice, and optionally
// queues processing.
func (s *Service) Upload(ctx context.Context, req *UploadRequest) (*entity.Invoice, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("user_id is required: %w", common.ErrInvalidInput)
	}
	if len(req.Content) == 0 {
		return nil, fmt.Errorf("document content is empty: %w", common.ErrInvalidInput)
	}
	if len(req.Content) > MaxUploadBytes {
		return nil, fmt.Errorf("document exceeds %d bytes: %w", MaxUploadBytes, common.ErrInvalidInput)
	}
	if !constants.IsSupportedMIME(req.MIMEType) {
		return nil, fmt.Errorf("unsupported content type %q: %w", req.MIMEType, common.ErrInvalidInput)
	}

	doc, err := s.documents.Create(ctx, &repository.CreateDocumentRequest{
		UserID:   req.UserID,
		Filename: req.Filename,
		MIMEType: req.MIMEType,
		Content:  req.Content,
	})
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.Create(ctx, &repository.CreateInvoiceRequest{
		UserID:     req.UserID,
		DocumentID: doc.ID,
		Notes:      req.Notes,
		Tags:       req.Tags,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("invoice.upload.ok", "invoice_id", inv.ID, "user_id", req.UserID, "filename", req.Filename)

	if req.AutoProcess {
		if err := s.enqueue(ctx, inv.ID); err != nil {
			s.logger.Warn("invoice.upload.enqueue_failed", "invoice_id", inv.ID, "error", err)
		}
	}
	return inv, nil
}

// Process queues a pipeline run for a pending invoice.
func (s *Service) Process(ctx context.Context, id uuid.UUID) error {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return err
	}
	if !workflow.CanFire(inv.Status, workflow.EventExtractionStarted) {
		return fmt.Errorf("invoice %s is %s, not pending: %w", id, inv.Status, common.ErrIllegalTransition)
	}
	return s.enqueue(ctx, id)
}

// Retry resets a finished invoice back to pending and queues a fresh run.
// Extracted fields are cleared; the processing log is preserved. A
// processing invoice whose lease has lapsed is re-queued as is.
func (s *Service) Retry(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status == constants.StatusPending {
		return inv, s.enqueue(ctx, id)
	}
	if inv.Status == constants.StatusProcessing {
		// a crashed worker leaves the invoice here; once the lease lapses
		// the claim's expired-lease branch takes over, no reset edge needed
		if !inv.LeaseExpired(time.Now().UTC()) {
			return nil, fmt.Errorf("invoice %s: %w", id, common.ErrAlreadyProcessing)
		}
		s.logger.Info("invoice.retry.reclaim", "invoice_id", id)
		return inv, s.enqueue(ctx, id)
	}
	cur, err := s.transition(ctx, inv, workflow.EventReset, "reset for re-processing", nil)
	if err != nil {
		return nil, err
	}
	return cur, s.enqueue(ctx, id)
}

// Approve moves a processed invoice to approved.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, inv, workflow.EventApprove, "approved by user", nil)
}

// Reject moves a processed invoice to rejected with the user's reason.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (*entity.Invoice, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = "rejected by user"
	}
	return s.transition(ctx, inv, workflow.EventReject, reason, nil)
}

// RecordPayment moves an approved invoice to paid.
func (s *Service) RecordPayment(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, inv, workflow.EventPaymentRecorded, "payment recorded", nil)
}

// ConfirmDuplicate resolves a probable-duplicate flag by marking the
// invoice a duplicate of the given original. The stored link always points
// at a non-duplicate root: confirming against an invoice that is itself a
// duplicate follows its duplicate_of chain first, so links never chain or
// cycle.
func (s *Service) ConfirmDuplicate(ctx context.Context, id, originalID uuid.UUID) (*entity.Invoice, error) {
	if originalID == id {
		return nil, fmt.Errorf("invoice cannot be a duplicate of itself: %w", common.ErrInvalidInput)
	}
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rootID, err := s.resolveOriginal(ctx, originalID)
	if err != nil {
		return nil, fmt.Errorf("original: %w", err)
	}
	if rootID == id {
		return nil, fmt.Errorf("original resolves back to invoice %s: %w", id, common.ErrInvalidInput)
	}
	return s.transition(ctx, inv, workflow.EventExactDuplicate,
		fmt.Sprintf("confirmed duplicate of %s", rootID), &rootID)
}

// resolveOriginal walks duplicate_of links until it reaches a non-duplicate
// invoice.
func (s *Service) resolveOriginal(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	seen := map[uuid.UUID]struct{}{}
	for {
		orig, err := s.invoices.Get(ctx, id)
		if err != nil {
			return uuid.Nil, err
		}
		if orig.Status != constants.StatusDuplicate || orig.DuplicateOf == nil {
			return orig.ID, nil
		}
		if _, cycle := seen[orig.ID]; cycle {
			return orig.ID, nil
		}
		seen[orig.ID] = struct{}{}
		id = *orig.DuplicateOf
	}
}

// DismissDuplicate clears the probable-duplicate review flag, keeping the
// invoice processed.
func (s *Service) DismissDuplicate(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != constants.StatusProcessed {
		return nil, fmt.Errorf("invoice %s is %s, not processed: %w", id, inv.Status, common.ErrIllegalTransition)
	}
	if err := s.invoices.SetNeedsReview(ctx, id, false); err != nil {
		return nil, err
	}
	s.logger.Info("invoice.review.dismissed", "invoice_id", id)
	return s.invoices.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return s.invoices.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *repository.ListInvoicesFilter) ([]*entity.Invoice, error) {
	return s.invoices.List(ctx, filter)
}

func (s *Service) ListLogs(ctx context.Context, invoiceID uuid.UUID) ([]*entity.LogEntry, error) {
	if _, err := s.invoices.Get(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.logs.ListByInvoice(ctx, invoiceID)
}

func (s *Service) enqueue(ctx context.Context, id uuid.UUID) error {
	return s.queue.Enqueue(ctx, async.Job{
		InvoiceID:   id,
		SubmittedAt: time.Now().UTC(),
		TraceID:     common.RequestIDFromContext(ctx),
	})
}

// transition validates the event against the state machine, applies it
// with a compare-and-swap, logs it, and publishes the change.
func (s *Service) transition(ctx context.Context, inv *entity.Invoice, event workflow.Event, message string, duplicateOf *uuid.UUID) (*entity.Invoice, error) {
	to, err := workflow.Next(inv.Status, event)
	if err != nil {
		s.logger.Warn("invoice.transition.illegal",
			"invoice_id", inv.ID, "from", inv.Status, "event", event, "error", err)
		return nil, err
	}
	var reason *string
	if event == workflow.EventReject {
		reason = &message
	}
	cur, err := s.invoices.Transition(ctx, &repository.TransitionRequest{
		ID:            inv.ID,
		From:          inv.Status,
		To:            to,
		FailureReason: reason,
		DuplicateOf:   duplicateOf,
		Log: &entity.LogEntry{
			InvoiceID: inv.ID,
			Stage:     constants.StageTransition,
			Status:    constants.LogSuccess,
			Message:   message,
			Attempt:   1,
		},
	})
	if err != nil {
		return nil, err
	}
	if workflow.Advancing(event) {
		ev := events.StatusChanged{
			InvoiceID: cur.ID,
			UserID:    cur.UserID,
			OldStatus: inv.Status,
			NewStatus: to,
			Amount:    cur.TotalAmount,
			Timestamp: time.Now().UTC(),
		}
		if cur.VendorID != nil {
			ev.VendorID = *cur.VendorID
		}
		s.events.Publish(ctx, ev)
	}
	return cur, nil
}
