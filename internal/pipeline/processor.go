package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/dupdetect"
	"github.com/paperpilot/invoicer/internal/entity"
	"github.com/paperpilot/invoicer/internal/events"
	"github.com/paperpilot/invoicer/internal/llm"
	"github.com/paperpilot/invoicer/internal/repository"
	"github.com/paperpilot/invoicer/internal/textextract"
	"github.com/paperpilot/invoicer/internal/validation"
	"github.com/paperpilot/invoicer/internal/vendors"
	"github.com/paperpilot/invoicer/internal/workflow"
)

// Config holds pipeline policy. All knobs come from configuration.
type Config struct {
	LeaseTTL         time.Duration
	ProcessTimeout   time.Duration
	DupWindow        time.Duration // how far back to fetch priors
	DupLimit         int           // cap on priors fetched
	KnownVendorLimit int           // vendor names offered as model context
	DefaultCurrency  string
}

// Processor runs one invoice through the full pipeline: text extraction,
// model extraction, vendor resolution, duplicate detection, validation,
// and the resulting status transition. Each run is an independent unit of
// work; the only cross-run state is the per-user vendor lock inside the
// resolver and the lease on the invoice row.
type Processor struct {
	cfg       Config
	invoices  repository.InvoiceRepository
	documents repository.DocumentRepository
	logs      repository.ProcessingLogRepository
	registry  repository.VendorRepository
	resolver  *vendors.Resolver
	texts     textextract.TextExtractor
	fields    llm.FieldExtractor
	detector  *dupdetect.Detector
	validator *validation.Validator
	events    events.Publisher
	logger    *slog.Logger
}

func NewProcessor(
	cfg Config,
	invoices repository.InvoiceRepository,
	documents repository.DocumentRepository,
	logs repository.ProcessingLogRepository,
	registry repository.VendorRepository,
	resolver *vendors.Resolver,
	texts textextract.TextExtractor,
	fields llm.FieldExtractor,
	detector *dupdetect.Detector,
	validator *validation.Validator,
	publisher events.Publisher,
	logger *slog.Logger,
) *Processor {
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = 5 * time.Minute
	}
	if cfg.DupWindow <= 0 {
		cfg.DupWindow = 30 * 24 * time.Hour
	}
	if cfg.DupLimit <= 0 {
		cfg.DupLimit = 200
	}
	if cfg.KnownVendorLimit <= 0 {
		cfg.KnownVendorLimit = 20
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:       cfg,
		invoices:  invoices,
		documents: documents,
		logs:      logs,
		registry:  registry,
		resolver:  resolver,
		texts:     texts,
		fields:    fields,
		detector:  detector,
		validator: validator,
		events:    publisher,
		logger:    logger,
	}
}

// runResult carries everything the stages produced, applied in one
// persistence step at the end.
type runResult struct {
	extract     llm.ExtractResult
	resolution  vendors.Resolution
	resolved    bool
	verdict     dupdetect.Result
	fingerprint string
	norm        validation.NormalizedInvoice
}

// Process takes the invoice from pending to its post-pipeline status. A
// second concurrent call for the same invoice fails with
// ErrAlreadyProcessing instead of running in parallel; cancellation moves
// the invoice to rejected with a cancelled reason rather than leaving it
// stuck in processing.
func (p *Processor) Process(ctx context.Context, invoiceID uuid.UUID) error {
	inv, err := p.invoices.ClaimForProcessing(ctx, invoiceID, p.cfg.LeaseTTL)
	if err != nil {
		p.logger.Warn("pipeline.claim.failed", "invoice_id", invoiceID, "error", err)
		return err
	}
	p.logger.Info("pipeline.start", "invoice_id", invoiceID, "user_id", inv.UserID)
	claim := &entity.LogEntry{
		InvoiceID: invoiceID,
		Stage:     constants.StageTransition,
		Status:    constants.LogSuccess,
		Message:   "claimed for processing",
		Attempt:   1,
	}
	if err := p.logs.Append(ctx, claim); err != nil {
		p.logger.Error("pipeline.log.failed", "invoice_id", invoiceID,
			"stage", constants.StageTransition, "error", err)
	}
	p.publish(ctx, inv, constants.StatusPending, constants.StatusProcessing)

	if p.cfg.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.ProcessTimeout)
		defer cancel()
	}

	res, err := p.run(ctx, inv)
	if err != nil {
		return p.fail(ctx, inv, err)
	}
	return p.finish(ctx, inv, res)
}

func (p *Processor) run(ctx context.Context, inv *entity.Invoice) (*runResult, error) {
	res := &runResult{}

	// text extraction
	var text textextract.Result
	err := p.stage(ctx, inv.ID, constants.StageTextExtraction, func(details map[string]interface{}) error {
		if inv.DocumentID == nil {
			return fmt.Errorf("invoice has no document: %w", common.ErrInvalidInput)
		}
		doc, err := p.documents.Get(ctx, *inv.DocumentID)
		if err != nil {
			return err
		}
		content, err := p.documents.Content(ctx, doc.ID)
		if err != nil {
			return err
		}
		text, err = p.texts.ExtractText(ctx, content, doc.MIMEType)
		if err != nil {
			if errors.Is(err, textextract.ErrUnsupportedFormat) {
				return fmt.Errorf("%v: %w", err, common.ErrExtraction)
			}
			return err
		}
		details["method"] = text.Method
		details["pages"] = text.Pages
		details["chars"] = len(text.Text)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// model extraction
	err = p.stage(ctx, inv.ID, constants.StageAIExtraction, func(details map[string]interface{}) error {
		known, err := p.knownVendors(ctx, inv.UserID)
		if err != nil {
			// prompt context only; extraction still works without it
			p.logger.Warn("pipeline.known_vendors.failed", "invoice_id", inv.ID, "error", err)
			known = nil
		}
		res.extract, err = p.fields.ExtractInvoice(ctx, llm.ExtractRequest{
			DocumentText:    text.Text,
			KnownVendors:    known,
			DefaultCurrency: p.cfg.DefaultCurrency,
		})
		p.logRetries(ctx, inv.ID, res.extract.Retries)
		if err != nil {
			return err
		}
		details["confidence"] = res.extract.Confidence
		details["truncated"] = res.extract.Truncated
		details["prompt_tokens"] = res.extract.PromptTokens
		details["completion_tokens"] = res.extract.CompletionTokens
		return nil
	})
	if err != nil {
		return nil, err
	}

	// vendor resolution: ambiguity degrades to review, never aborts
	err = p.stage(ctx, inv.ID, constants.StageVendorResolution, func(details map[string]interface{}) error {
		f := res.extract.Fields
		if f.VendorName == "" {
			details["outcome"] = "skipped"
			return nil
		}
		r, err := p.resolver.Resolve(ctx, inv.UserID, vendors.Candidate{
			Name:       f.VendorName,
			Address:    f.VendorAddress,
			Email:      f.VendorEmail,
			Phone:      f.VendorPhone,
			Confidence: res.extract.Confidence,
		})
		if err != nil {
			return err
		}
		res.resolution = r
		res.resolved = true
		details["outcome"] = string(r.Outcome)
		details["vendor_id"] = r.Vendor.ID.String()
		details["confidence"] = r.Confidence
		return nil
	})
	if err != nil {
		return nil, err
	}

	// duplicate detection
	err = p.stage(ctx, inv.ID, constants.StageDuplicateCheck, func(details map[string]interface{}) error {
		key := p.dupKey(inv, res)
		res.fingerprint, _ = dupdetect.Fingerprint(key)
		since := time.Now().Add(-p.cfg.DupWindow)
		recent, err := p.invoices.ListRecent(ctx, inv.UserID, since, p.cfg.DupLimit)
		if err != nil {
			return err
		}
		// exact matches by fingerprint are not bounded by the window;
		// a duplicate of an old invoice is still a duplicate
		if res.fingerprint != "" {
			matched, err := p.invoices.FindByFingerprint(ctx, inv.UserID, res.fingerprint)
			if err != nil {
				return err
			}
			recent = mergeRows(recent, matched)
		}
		res.verdict = p.detector.Detect(key, priorsFrom(recent, inv.ID))
		details["verdict"] = string(res.verdict.Verdict)
		if res.verdict.Verdict != dupdetect.VerdictUnique {
			details["original_id"] = res.verdict.OriginalID.String()
			details["score"] = res.verdict.Score
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// validation: enumerate every violation, fatal only on missing total
	err = p.stage(ctx, inv.ID, constants.StageValidation, func(details map[string]interface{}) error {
		norm, verr := p.validator.Validate(res.extract.Fields, res.extract.Confidence)
		if verr != nil {
			details["violations"] = verr.Violations
			if verr.Fatal() {
				return verr
			}
		}
		res.norm = norm
		details["confidence"] = norm.Confidence
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Processor) finish(ctx context.Context, inv *entity.Invoice, res *runResult) error {
	upd := p.extractionUpdate(res)
	if _, err := p.invoices.SaveExtraction(ctx, inv.ID, upd); err != nil {
		return p.fail(ctx, inv, err)
	}

	to, err := workflow.Next(constants.StatusProcessing, workflow.EventProcessingOK)
	if err != nil {
		return p.fail(ctx, inv, err)
	}
	cur, err := p.invoices.Transition(ctx, &repository.TransitionRequest{
		ID:   inv.ID,
		From: constants.StatusProcessing,
		To:   to,
		Log: &entity.LogEntry{
			InvoiceID: inv.ID,
			Stage:     constants.StageTransition,
			Status:    constants.LogSuccess,
			Message:   fmt.Sprintf("processing -> %s", to),
			Attempt:   1,
		},
	})
	if err != nil {
		return err
	}
	p.publish(ctx, cur, constants.StatusProcessing, to)

	// exact duplicates are terminal without user confirmation; probable
	// duplicates stay processed with the review flag until resolved
	if res.verdict.Verdict == dupdetect.VerdictExact {
		dupTo, err := workflow.Next(to, workflow.EventExactDuplicate)
		if err != nil {
			return err
		}
		original := res.verdict.OriginalID
		cur, err = p.invoices.Transition(ctx, &repository.TransitionRequest{
			ID:          inv.ID,
			From:        to,
			To:          dupTo,
			DuplicateOf: &original,
			Log: &entity.LogEntry{
				InvoiceID: inv.ID,
				Stage:     constants.StageTransition,
				Status:    constants.LogSuccess,
				Message:   fmt.Sprintf("exact duplicate of %s", original),
				Attempt:   1,
			},
		})
		if err != nil {
			return err
		}
		p.publish(ctx, cur, to, dupTo)
		p.logger.Info("pipeline.done", "invoice_id", inv.ID, "status", dupTo, "duplicate_of", original)
		return nil
	}

	p.logger.Info("pipeline.done",
		"invoice_id", inv.ID,
		"status", to,
		"confidence", res.norm.Confidence,
		"needs_review", upd.NeedsReview,
	)
	return nil
}

// fail routes any stage error to rejected. Cancellation is recorded with a
// cancelled reason; everything else keeps the classified error summary.
func (p *Processor) fail(ctx context.Context, inv *entity.Invoice, cause error) error {
	reason := cause.Error()
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		reason = "cancelled: " + reason
	}

	to, werr := workflow.Next(constants.StatusProcessing, workflow.EventProcessingFailed)
	if werr != nil {
		return errors.Join(cause, werr)
	}
	// transitions must land even when the run context is already dead
	tctx := context.WithoutCancel(ctx)
	cur, err := p.invoices.Transition(tctx, &repository.TransitionRequest{
		ID:            inv.ID,
		From:          constants.StatusProcessing,
		To:            to,
		FailureReason: &reason,
		Log: &entity.LogEntry{
			InvoiceID: inv.ID,
			Stage:     constants.StageTransition,
			Status:    constants.LogFailure,
			Message:   reason,
			Attempt:   1,
		},
	})
	if err != nil {
		p.logger.Error("pipeline.fail.transition", "invoice_id", inv.ID, "error", err)
		return errors.Join(cause, err)
	}
	p.publish(tctx, cur, constants.StatusProcessing, to)
	p.logger.Warn("pipeline.failed", "invoice_id", inv.ID, "reason", reason,
		"transient", common.IsTransient(cause))
	return cause
}

// logRetries records the model client's transient-failure retries as their
// own log entries, one per attempt, whatever the call's final outcome.
func (p *Processor) logRetries(ctx context.Context, invoiceID uuid.UUID, retries []llm.RetryRecord) {
	lctx := context.WithoutCancel(ctx)
	for _, rt := range retries {
		e := &entity.LogEntry{
			InvoiceID: invoiceID,
			Stage:     constants.StageAIExtraction,
			Status:    constants.LogRetry,
			Message:   rt.Reason,
			Attempt:   rt.Attempt,
			Details:   map[string]interface{}{"backoff_ms": rt.Backoff.Milliseconds()},
		}
		if err := p.logs.Append(lctx, e); err != nil {
			p.logger.Error("pipeline.log.failed", "invoice_id", invoiceID,
				"stage", constants.StageAIExtraction, "error", err)
		}
	}
}

// stage runs fn, timing it and appending exactly one log entry whatever the
// outcome.
func (p *Processor) stage(ctx context.Context, invoiceID uuid.UUID, name constants.Stage, fn func(details map[string]interface{}) error) error {
	start := time.Now()
	details := map[string]interface{}{}
	err := fn(details)
	durMS := time.Since(start).Milliseconds()

	e := &entity.LogEntry{
		InvoiceID:  invoiceID,
		Stage:      name,
		Status:     constants.LogSuccess,
		Attempt:    1,
		DurationMS: durMS,
		Details:    details,
	}
	if err != nil {
		e.Status = constants.LogFailure
		e.Message = err.Error()
	}
	lctx := context.WithoutCancel(ctx)
	if lerr := p.logs.Append(lctx, e); lerr != nil {
		p.logger.Error("pipeline.log.failed", "invoice_id", invoiceID, "stage", name, "error", lerr)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (p *Processor) knownVendors(ctx context.Context, userID uuid.UUID) ([]string, error) {
	recs, err := p.registry.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(recs))
	for _, r := range recs {
		names = append(names, r.Name)
		if len(names) >= p.cfg.KnownVendorLimit {
			break
		}
	}
	return names, nil
}

// dupKey builds the fingerprint key from raw candidate fields. Validation
// has not run yet at this point, so amounts and dates are read leniently;
// unreadable values fall back to zero and only weaken the comparison.
func (p *Processor) dupKey(inv *entity.Invoice, res *runResult) dupdetect.Key {
	f := res.extract.Fields
	key := dupdetect.Key{
		UserID:        inv.UserID,
		InvoiceNumber: f.InvoiceNumber,
	}
	if res.resolved {
		key.VendorID = res.resolution.Vendor.ID
	}
	if v, ok := validation.ParseAmount(f.TotalAmount); ok {
		key.Total = v
	}
	if t, ok := validation.ParseDate(f.InvoiceDate); ok {
		key.IssueDate = t
	}
	return key
}

func (p *Processor) extractionUpdate(res *runResult) *repository.ExtractionUpdate {
	upd := &repository.ExtractionUpdate{
		Subtotal:        res.norm.Subtotal,
		TaxAmount:       res.norm.TaxAmount,
		TotalAmount:     res.norm.TotalAmount,
		Currency:        res.norm.Currency,
		InvoiceDate:     res.norm.IssueDate,
		DueDate:         res.norm.DueDate,
		Fingerprint:     res.fingerprint,
		ConfidenceScore: res.norm.Confidence,
		ExtractedData:   rawAsMap(res.extract.Raw),
	}
	if res.norm.InvoiceNumber != "" {
		n := res.norm.InvoiceNumber
		upd.InvoiceNumber = &n
	}
	// only an auto-match or a fresh create links the vendor; the review
	// band holds the invoice for manual confirmation instead
	if res.resolved && res.resolution.Outcome != vendors.OutcomeReview {
		id := res.resolution.Vendor.ID
		upd.VendorID = &id
	}
	upd.NeedsReview = (res.resolved && res.resolution.Outcome == vendors.OutcomeReview) ||
		res.verdict.Verdict == dupdetect.VerdictProbable
	upd.Items = make([]entity.InvoiceItem, len(res.norm.Items))
	for i, it := range res.norm.Items {
		item := entity.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.LineTotal,
			Position:    i,
		}
		if it.ProductCode != "" {
			c := it.ProductCode
			item.ProductCode = &c
		}
		if it.UnitOfMeasure != "" {
			u := it.UnitOfMeasure
			item.UnitOfMeasure = &u
		}
		upd.Items[i] = item
	}
	return upd
}

func (p *Processor) publish(ctx context.Context, inv *entity.Invoice, from, to constants.InvoiceStatus) {
	ev := events.StatusChanged{
		InvoiceID: inv.ID,
		UserID:    inv.UserID,
		OldStatus: from,
		NewStatus: to,
		Amount:    inv.TotalAmount,
		Timestamp: time.Now().UTC(),
	}
	if inv.VendorID != nil {
		ev.VendorID = *inv.VendorID
	}
	p.events.Publish(ctx, ev)
}

// mergeRows appends extras onto rows, skipping IDs already present.
func mergeRows(rows, extras []*entity.Invoice) []*entity.Invoice {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		seen[row.ID] = struct{}{}
	}
	for _, row := range extras {
		if _, ok := seen[row.ID]; ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func priorsFrom(rows []*entity.Invoice, self uuid.UUID) []dupdetect.Prior {
	priors := make([]dupdetect.Prior, 0, len(rows))
	for _, row := range rows {
		if row.ID == self {
			continue
		}
		pr := dupdetect.Prior{
			ID:     row.ID,
			Total:  row.TotalAmount,
			Status: row.Status,
		}
		if row.VendorID != nil {
			pr.VendorID = *row.VendorID
		}
		if row.InvoiceNumber != nil {
			pr.InvoiceNumber = *row.InvoiceNumber
		}
		if row.InvoiceDate != nil {
			pr.IssueDate = *row.InvoiceDate
		}
		if row.DuplicateOf != nil {
			pr.DuplicateOf = *row.DuplicateOf
		}
		priors = append(priors, pr)
	}
	return priors
}

func rawAsMap(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]interface{}{"raw": string(raw)}
	}
	return m
}
