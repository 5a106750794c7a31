package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/gen/ent"
	"github.com/paperpilot/invoicer/gen/ent/invoice"
	"github.com/paperpilot/invoicer/gen/ent/invoiceitem"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/entity"
	"github.com/paperpilot/invoicer/internal/utils"
	"github.com/paperpilot/invoicer/internal/workflow"
)

// CreateInvoiceRequest creates a pending invoice bound to an uploaded document.
type CreateInvoiceRequest struct {
	UserID     uuid.UUID
	DocumentID uuid.UUID
	Notes      *string
	Tags       []string
}

// ExtractionUpdate persists everything the pipeline learned about an invoice.
// Items are replaced wholesale.
type ExtractionUpdate struct {
	VendorID        *uuid.UUID
	InvoiceNumber   *string
	InvoiceDate     *time.Time
	DueDate         *time.Time
	Subtotal        *float64
	TaxAmount       *float64
	TotalAmount     float64
	Currency        string
	Fingerprint     string
	ConfidenceScore float32
	NeedsReview     bool
	ExtractedData   map[string]interface{}
	Items           []entity.InvoiceItem
}

// TransitionRequest is a compare-and-swap status move. From must match the
// stored status or the call fails. The log entry, when present, is written in
// the same transaction.
type TransitionRequest struct {
	ID            uuid.UUID
	From          constants.InvoiceStatus
	To            constants.InvoiceStatus
	FailureReason *string
	DuplicateOf   *uuid.UUID
	Log           *entity.LogEntry
}

// ListInvoicesFilter narrows List. Zero values mean "no constraint".
type ListInvoicesFilter struct {
	UserID   uuid.UUID
	Status   constants.InvoiceStatus
	VendorID *uuid.UUID
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
	Offset   int
}

type InvoiceRepository interface {
	Create(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, filter *ListInvoicesFilter) ([]*entity.Invoice, error)
	// ClaimForProcessing atomically moves a pending invoice (or one whose
	// processing lease has lapsed) to processing and takes a fresh lease.
	ClaimForProcessing(ctx context.Context, id uuid.UUID, leaseTTL time.Duration) (*entity.Invoice, error)
	SaveExtraction(ctx context.Context, id uuid.UUID, upd *ExtractionUpdate) (*entity.Invoice, error)
	Transition(ctx context.Context, req *TransitionRequest) (*entity.Invoice, error)
	// ListRecent returns the user's newest invoices for duplicate comparison.
	ListRecent(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*entity.Invoice, error)
	FindByFingerprint(ctx context.Context, userID uuid.UUID, fingerprint string) ([]*entity.Invoice, error)
	SetNeedsReview(ctx context.Context, id uuid.UUID, needsReview bool) error
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{client: client, logger: logger}
}

func (r *invoiceRepository) Create(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Create().
		SetUserID(req.UserID).
		SetDocumentID(req.DocumentID).
		SetStatus(string(workflow.Initial())).
		SetNillableNotes(req.Notes).
		SetTags(req.Tags).
		Save(ctx)
	if err != nil {
		r.logger.Error("invoice.create.failed", "user_id", req.UserID, "error", err)
		return nil, err
	}
	r.logger.Info("invoice.create.ok", "invoice_id", row.ID, "user_id", req.UserID)
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().
		Where(invoice.IDEQ(id)).
		WithItems(func(q *ent.InvoiceItemQuery) {
			q.Order(invoiceitem.ByPosition())
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *ListInvoicesFilter) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().Where(invoice.UserIDEQ(filter.UserID))
	if filter.Status != "" {
		q = q.Where(invoice.StatusEQ(string(filter.Status)))
	}
	if filter.VendorID != nil {
		q = q.Where(invoice.VendorIDEQ(*filter.VendorID))
	}
	if filter.FromDate != nil {
		q = q.Where(invoice.InvoiceDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(invoice.InvoiceDateLTE(*filter.ToDate))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	rows, err := q.Order(invoice.ByCreatedAt(entDesc())).All(ctx)
	if err != nil {
		r.logger.Error("invoice.list.failed", "user_id", filter.UserID, "error", err)
		return nil, err
	}
	out := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		out[i] = utils.ToInvoice(row)
	}
	return out, nil
}

func (r *invoiceRepository) ClaimForProcessing(ctx context.Context, id uuid.UUID, leaseTTL time.Duration) (*entity.Invoice, error) {
	now := time.Now().UTC()
	n, err := r.client.Invoice.Update().
		Where(
			invoice.IDEQ(id),
			invoice.Or(
				invoice.StatusEQ(string(constants.StatusPending)),
				invoice.And(
					invoice.StatusEQ(string(constants.StatusProcessing)),
					invoice.LeaseExpiresAtLT(now),
				),
			),
		).
		SetStatus(string(constants.StatusProcessing)).
		SetProcessingStartedAt(now).
		SetLeaseExpiresAt(now.Add(leaseTTL)).
		Save(ctx)
	if err != nil {
		r.logger.Error("invoice.claim.failed", "invoice_id", id, "error", err)
		return nil, err
	}
	if n == 0 {
		// Either the row is gone or someone else holds it.
		exists, err := r.client.Invoice.Query().Where(invoice.IDEQ(id)).Exist(ctx)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("invoice %s: %w", id, common.ErrAlreadyProcessing)
	}
	r.logger.Info("invoice.claim.ok", "invoice_id", id, "lease_expires_at", now.Add(leaseTTL))
	return r.Get(ctx, id)
}

func (r *invoiceRepository) SaveExtraction(ctx context.Context, id uuid.UUID, upd *ExtractionUpdate) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	u := tx.Invoice.UpdateOneID(id).
		SetNillableVendorID(upd.VendorID).
		SetNillableInvoiceNumber(upd.InvoiceNumber).
		SetNillableInvoiceDate(upd.InvoiceDate).
		SetNillableDueDate(upd.DueDate).
		SetNillableSubtotal(upd.Subtotal).
		SetNillableTaxAmount(upd.TaxAmount).
		SetTotalAmount(upd.TotalAmount).
		SetFingerprint(upd.Fingerprint).
		SetConfidenceScore(upd.ConfidenceScore).
		SetNeedsReview(upd.NeedsReview)
	if upd.Currency != "" {
		u = u.SetCurrency(upd.Currency)
	}
	if upd.ExtractedData != nil {
		u = u.SetExtractedData(upd.ExtractedData)
	}
	if _, err := u.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("invoice.save_extraction.failed", "invoice_id", id, "error", err)
		return nil, err
	}

	if _, err := tx.InvoiceItem.Delete().Where(invoiceitem.InvoiceIDEQ(id)).Exec(ctx); err != nil {
		return nil, err
	}
	for i, item := range upd.Items {
		_, err := tx.InvoiceItem.Create().
			SetInvoiceID(id).
			SetDescription(item.Description).
			SetQuantity(item.Quantity).
			SetUnitPrice(item.UnitPrice).
			SetTotal(item.Total).
			SetNillableProductCode(item.ProductCode).
			SetNillableUnitOfMeasure(item.UnitOfMeasure).
			SetPosition(i).
			Save(ctx)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("invoice.save_extraction.ok", "invoice_id", id, "items", len(upd.Items))
	return r.Get(ctx, id)
}

func (r *invoiceRepository) Transition(ctx context.Context, req *TransitionRequest) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	u := tx.Invoice.Update().
		Where(invoice.IDEQ(req.ID), invoice.StatusEQ(string(req.From))).
		SetStatus(string(req.To)).
		SetNillableFailureReason(req.FailureReason).
		SetNillableDuplicateOf(req.DuplicateOf)
	if req.From == constants.StatusProcessing {
		u = u.ClearProcessingStartedAt().ClearLeaseExpiresAt()
	}
	if req.To == constants.StatusPaid {
		u = u.SetPaidAt(time.Now().UTC())
	}
	if req.To == constants.StatusPending {
		// reset: prior extracted fields are wiped, the log is preserved
		u = u.ClearFailureReason().
			ClearDuplicateOf().
			ClearVendorID().
			ClearInvoiceNumber().
			ClearInvoiceDate().
			ClearDueDate().
			ClearSubtotal().
			ClearTaxAmount().
			SetTotalAmount(0).
			SetFingerprint("").
			SetConfidenceScore(0).
			SetNeedsReview(false).
			ClearExtractedData()
	}
	n, err := u.Save(ctx)
	if err != nil {
		r.logger.Error("invoice.transition.failed", "invoice_id", req.ID, "to", req.To, "error", err)
		return nil, err
	}
	if n == 0 {
		exists, err := tx.Invoice.Query().Where(invoice.IDEQ(req.ID)).Exist(ctx)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("invoice %s: %w", req.ID, common.ErrNotFound)
		}
		return nil, fmt.Errorf("invoice %s: status is no longer %s: %w",
			req.ID, req.From, common.ErrIllegalTransition)
	}

	if req.To == constants.StatusPending {
		if _, err := tx.InvoiceItem.Delete().Where(invoiceitem.InvoiceIDEQ(req.ID)).Exec(ctx); err != nil {
			return nil, err
		}
	}

	if req.Log != nil {
		c := tx.ProcessingLog.Create().
			SetInvoiceID(req.ID).
			SetStage(string(req.Log.Stage)).
			SetStatus(string(req.Log.Status)).
			SetMessage(req.Log.Message).
			SetAttempt(req.Log.Attempt).
			SetDurationMs(req.Log.DurationMS)
		if req.Log.Details != nil {
			c = c.SetDetails(req.Log.Details)
		}
		if _, err := c.Save(ctx); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("invoice.transition.ok", "invoice_id", req.ID, "from", req.From, "to", req.To)
	return r.Get(ctx, req.ID)
}

func (r *invoiceRepository) ListRecent(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().
		Where(invoice.UserIDEQ(userID), invoice.CreatedAtGTE(since)).
		Order(invoice.ByCreatedAt(entDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		out[i] = utils.ToInvoice(row)
	}
	return out, nil
}

func (r *invoiceRepository) FindByFingerprint(ctx context.Context, userID uuid.UUID, fingerprint string) ([]*entity.Invoice, error) {
	if fingerprint == "" {
		return nil, nil
	}
	rows, err := r.client.Invoice.Query().
		Where(invoice.UserIDEQ(userID), invoice.FingerprintEQ(fingerprint)).
		Order(invoice.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		out[i] = utils.ToInvoice(row)
	}
	return out, nil
}

func (r *invoiceRepository) SetNeedsReview(ctx context.Context, id uuid.UUID, needsReview bool) error {
	err := r.client.Invoice.UpdateOneID(id).SetNeedsReview(needsReview).Exec(ctx)
	if err != nil && ent.IsNotFound(err) {
		return fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	return err
}
