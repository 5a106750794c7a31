package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
)

// -------- test fakes --------

type fakeInvoiceRepo struct {
	mu            sync.Mutex
	invoices      map[uuid.UUID]*entity.Invoice
	recent        []*entity.Invoice
	fingerprinted []*entity.Invoice
	saved         *repository.ExtractionUpdate
}

func newFakeInvoiceRepo(seed ...*entity.Invoice) *fakeInvoiceRepo {
	f := &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
	for _, inv := range seed {
		f.invoices[inv.ID] = inv
	}
	return f
}

func (f *fakeInvoiceRepo) Create(context.Context, *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	panic("not used")
}

func (f *fakeInvoiceRepo) Get(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) List(context.Context, *repository.ListInvoicesFilter) ([]*entity.Invoice, error) {
	panic("not used")
}

func (f *fakeInvoiceRepo) ClaimForProcessing(_ context.Context, id uuid.UUID, leaseTTL time.Duration) (*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	now := time.Now().UTC()
	claimable := inv.Status == constants.StatusPending ||
		(inv.Status == constants.StatusProcessing && inv.LeaseExpired(now))
	if !claimable {
		return nil, fmt.Errorf("invoice %s: %w", id, common.ErrAlreadyProcessing)
	}
	inv.Status = constants.StatusProcessing
	inv.ProcessingStartedAt = &now
	lease := now.Add(leaseTTL)
	inv.LeaseExpiresAt = &lease
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) SaveExtraction(_ context.Context, id uuid.UUID, upd *repository.ExtractionUpdate) (*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	f.saved = upd
	inv.VendorID = upd.VendorID
	inv.InvoiceNumber = upd.InvoiceNumber
	inv.InvoiceDate = upd.InvoiceDate
	inv.DueDate = upd.DueDate
	inv.Subtotal = upd.Subtotal
	inv.TaxAmount = upd.TaxAmount
	inv.TotalAmount = upd.TotalAmount
	if upd.Currency != "" {
		inv.Currency = upd.Currency
	}
	inv.Fingerprint = upd.Fingerprint
	inv.ConfidenceScore = upd.ConfidenceScore
	inv.NeedsReview = upd.NeedsReview
	inv.ExtractedData = upd.ExtractedData
	inv.Items = upd.Items
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) Transition(_ context.Context, req *repository.TransitionRequest) (*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[req.ID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", req.ID, common.ErrNotFound)
	}
	if inv.Status != req.From {
		return nil, fmt.Errorf("invoice %s: status is no longer %s: %w",
			req.ID, req.From, common.ErrIllegalTransition)
	}
	inv.Status = req.To
	inv.FailureReason = req.FailureReason
	if req.DuplicateOf != nil {
		inv.DuplicateOf = req.DuplicateOf
	}
	if req.From == constants.StatusProcessing {
		inv.ProcessingStartedAt = nil
		inv.LeaseExpiresAt = nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) ListRecent(context.Context, uuid.UUID, time.Time, int) ([]*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recent, nil
}

func (f *fakeInvoiceRepo) FindByFingerprint(_ context.Context, _ uuid.UUID, fingerprint string) ([]*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fingerprint == "" {
		return nil, nil
	}
	return f.fingerprinted, nil
}

func (f *fakeInvoiceRepo) SetNeedsReview(context.Context, uuid.UUID, bool) error { return nil }

type fakeDocumentRepo struct {
	doc     entity.Document
	content []byte
}

func (f *fakeDocumentRepo) Create(context.Context, *repository.CreateDocumentRequest) (*entity.Document, error) {
	panic("not used")
}

func (f *fakeDocumentRepo) Get(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if id != f.doc.ID {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	cp := f.doc
	return &cp, nil
}

func (f *fakeDocumentRepo) Content(context.Context, uuid.UUID) ([]byte, error) {
	return f.content, nil
}

type fakeLogRepo struct {
	mu      sync.Mutex
	entries []entity.LogEntry
}

func (f *fakeLogRepo) Append(_ context.Context, e *entity.LogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeLogRepo) ListByInvoice(context.Context, uuid.UUID) ([]*entity.LogEntry, error) {
	return nil, nil
}

func (f *fakeLogRepo) stages() []constants.Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]constants.Stage, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Stage
	}
	return out
}

type fakeVendorRepo struct {
	mu      sync.Mutex
	records []vendors.Record
}

func (f *fakeVendorRepo) ListByUser(context.Context, uuid.UUID) ([]vendors.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]vendors.Record, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeVendorRepo) Create(_ context.Context, _ uuid.UUID, v vendors.NewVendor) (vendors.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := vendors.Record{
		ID:             uuid.New(),
		Name:           v.Name,
		NormalizedName: vendors.NormalizeName(v.Name),
	}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeVendorRepo) AppendAlias(_ context.Context, vendorID uuid.UUID, alias string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ID == vendorID {
			f.records[i].Aliases = append(f.records[i].Aliases, alias)
		}
	}
	return nil
}

func (f *fakeVendorRepo) Get(context.Context, uuid.UUID) (*entity.Vendor, error) { panic("not used") }

func (f *fakeVendorRepo) ListForUser(context.Context, uuid.UUID) ([]*entity.Vendor, error) {
	return nil, nil
}

type fakeTextExtractor struct {
	result textextract.Result
	err    error
	fn     func(ctx context.Context) error
}

func (f *fakeTextExtractor) ExtractText(ctx context.Context, _ []byte, _ string) (textextract.Result, error) {
	if f.fn != nil {
		if err := f.fn(ctx); err != nil {
			return textextract.Result{}, err
		}
	}
	return f.result, f.err
}

type fakeFieldExtractor struct {
	result llm.ExtractResult
	err    error
}

func (f *fakeFieldExtractor) ExtractInvoice(context.Context, llm.ExtractRequest) (llm.ExtractResult, error) {
	return f.result, f.err
}

type collectPublisher struct {
	mu     sync.Mutex
	events []events.StatusChanged
}

func (c *collectPublisher) Publish(_ context.Context, ev events.StatusChanged) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

// -------- fixtures --------

type fixture struct {
	proc      *Processor
	invoices  *fakeInvoiceRepo
	logs      *fakeLogRepo
	registry  *fakeVendorRepo
	published *collectPublisher
	invoice   *entity.Invoice
}

func goodFields() llm.ExtractResult {
	fields := llm.InvoiceFields{
		InvoiceNumber: "INV-42",
		InvoiceDate:   "2024-03-01",
		DueDate:       "2024-03-31",
		VendorName:    "Acme Corp",
		Subtotal:      "100.00",
		TaxAmount:     "20.00",
		TotalAmount:   "120.00",
		Currency:      "USD",
		Items: []llm.LineItem{
			{Description: "Widget", Quantity: 2, UnitPrice: "50.00", Total: "100.00"},
		},
	}
	raw, _ := json.Marshal(fields)
	return llm.ExtractResult{Fields: fields, Raw: raw, Confidence: 0.9}
}

func newFixture(t *testing.T, texts textextract.TextExtractor, fields llm.FieldExtractor) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	docID := uuid.New()
	inv := &entity.Invoice{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		DocumentID: &docID,
		Status:     constants.StatusPending,
		Currency:   "USD",
	}

	invoices := newFakeInvoiceRepo(inv)
	documents := &fakeDocumentRepo{
		doc:     entity.Document{ID: docID, UserID: inv.UserID, Filename: "invoice.pdf", MIMEType: "application/pdf"},
		content: []byte("%PDF-1.4"),
	}
	logs := &fakeLogRepo{}
	registry := &fakeVendorRepo{}
	resolver := vendors.NewResolver(registry, nil,
		vendors.Config{MatchThreshold: 0.85, ReviewThreshold: 0.60}, logger)
	detector := dupdetect.NewDetector(dupdetect.Config{}, logger)
	validator := validation.NewValidator(validation.Config{})
	published := &collectPublisher{}

	proc := NewProcessor(Config{DefaultCurrency: "USD"},
		invoices, documents, logs, registry,
		resolver, texts, fields, detector, validator, published, logger)

	return &fixture{
		proc:      proc,
		invoices:  invoices,
		logs:      logs,
		registry:  registry,
		published: published,
		invoice:   inv,
	}
}

func defaultText() *fakeTextExtractor {
	return &fakeTextExtractor{result: textextract.Result{Text: "Invoice INV-42 from Acme Corp", Pages: 1, Method: "pdftotext"}}
}

// -------- tests --------

func TestProcess_HappyPath(t *testing.T) {
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: goodFields()})

	require.NoError(t, fx.proc.Process(context.Background(), fx.invoice.ID))

	inv, err := fx.invoices.Get(context.Background(), fx.invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessed, inv.Status)
	require.NotNil(t, inv.VendorID, "a fresh vendor should be created and linked")
	require.NotNil(t, inv.InvoiceNumber)
	assert.Equal(t, "INV-42", *inv.InvoiceNumber)
	assert.Equal(t, 120.0, inv.TotalAmount)
	assert.NotEmpty(t, inv.Fingerprint)
	assert.False(t, inv.NeedsReview)
	assert.Nil(t, inv.LeaseExpiresAt, "the lease must be released on completion")
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Widget", inv.Items[0].Description)

	assert.Equal(t, []constants.Stage{
		constants.StageTransition, // the claim itself
		constants.StageTextExtraction,
		constants.StageAIExtraction,
		constants.StageVendorResolution,
		constants.StageDuplicateCheck,
		constants.StageValidation,
	}, fx.logs.stages())
	assert.Equal(t, "claimed for processing", fx.logs.entries[0].Message)
	for _, e := range fx.logs.entries {
		assert.Equal(t, constants.LogSuccess, e.Status)
	}

	require.Len(t, fx.published.events, 2)
	assert.Equal(t, constants.StatusProcessing, fx.published.events[0].NewStatus)
	assert.Equal(t, constants.StatusProcessed, fx.published.events[1].NewStatus)
}

func TestProcess_ExactDuplicate(t *testing.T) {
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: goodFields()})

	// same user, vendor, number, total and date as the candidate
	rec, err := fx.registry.Create(context.Background(), fx.invoice.UserID, vendors.NewVendor{Name: "Acme Corp"})
	require.NoError(t, err)
	origID := uuid.New()
	num := "INV-42"
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fx.invoices.recent = []*entity.Invoice{{
		ID:            origID,
		UserID:        fx.invoice.UserID,
		VendorID:      &rec.ID,
		InvoiceNumber: &num,
		InvoiceDate:   &date,
		TotalAmount:   120.0,
		Status:        constants.StatusProcessed,
	}}

	require.NoError(t, fx.proc.Process(context.Background(), fx.invoice.ID))

	inv, err := fx.invoices.Get(context.Background(), fx.invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDuplicate, inv.Status)
	require.NotNil(t, inv.DuplicateOf)
	assert.Equal(t, origID, *inv.DuplicateOf)

	// processed first, then duplicate
	require.Len(t, fx.published.events, 3)
	assert.Equal(t, constants.StatusProcessed, fx.published.events[1].NewStatus)
	assert.Equal(t, constants.StatusDuplicate, fx.published.events[2].NewStatus)
}

func TestProcess_ExactDuplicateOutsideRecentWindow(t *testing.T) {
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: goodFields()})

	// the original is too old for the recent list but still matches by
	// stored fingerprint
	rec, err := fx.registry.Create(context.Background(), fx.invoice.UserID, vendors.NewVendor{Name: "Acme Corp"})
	require.NoError(t, err)
	origID := uuid.New()
	num := "INV-42"
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fx.invoices.fingerprinted = []*entity.Invoice{{
		ID:            origID,
		UserID:        fx.invoice.UserID,
		VendorID:      &rec.ID,
		InvoiceNumber: &num,
		InvoiceDate:   &date,
		TotalAmount:   120.0,
		Status:        constants.StatusProcessed,
	}}

	require.NoError(t, fx.proc.Process(context.Background(), fx.invoice.ID))

	inv, err := fx.invoices.Get(context.Background(), fx.invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDuplicate, inv.Status)
	require.NotNil(t, inv.DuplicateOf)
	assert.Equal(t, origID, *inv.DuplicateOf)
}

func TestProcess_ModelRetriesAreLogged(t *testing.T) {
	res := goodFields()
	res.Retries = []llm.RetryRecord{
		{Attempt: 1, Backoff: 100 * time.Millisecond, Reason: "model service status 500"},
		{Attempt: 2, Backoff: 200 * time.Millisecond, Reason: "model service status 503"},
	}
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: res})

	require.NoError(t, fx.proc.Process(context.Background(), fx.invoice.ID))

	var retries []entity.LogEntry
	aiSuccessAt := -1
	for i, e := range fx.logs.entries {
		if e.Stage != constants.StageAIExtraction {
			continue
		}
		if e.Status == constants.LogRetry {
			retries = append(retries, e)
			continue
		}
		aiSuccessAt = i
	}
	require.Len(t, retries, 2)
	assert.Equal(t, 1, retries[0].Attempt)
	assert.Equal(t, "model service status 500", retries[0].Message)
	assert.Equal(t, int64(100), retries[0].Details["backoff_ms"])
	assert.Equal(t, 2, retries[1].Attempt)
	assert.Equal(t, int64(200), retries[1].Details["backoff_ms"])

	// retry entries land before the stage's own success entry
	require.GreaterOrEqual(t, aiSuccessAt, 2)
	assert.Equal(t, constants.LogSuccess, fx.logs.entries[aiSuccessAt].Status)
}

func TestProcess_ProbableDuplicateNeedsReview(t *testing.T) {
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: goodFields()})

	rec, err := fx.registry.Create(context.Background(), fx.invoice.UserID, vendors.NewVendor{Name: "Acme Corp"})
	require.NoError(t, err)
	num := "INV-41" // different number blocks the exact path
	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	origID := uuid.New()
	fx.invoices.recent = []*entity.Invoice{{
		ID:            origID,
		UserID:        fx.invoice.UserID,
		VendorID:      &rec.ID,
		InvoiceNumber: &num,
		InvoiceDate:   &date,
		TotalAmount:   120.0,
		Status:        constants.StatusProcessed,
	}}

	require.NoError(t, fx.proc.Process(context.Background(), fx.invoice.ID))

	inv, err := fx.invoices.Get(context.Background(), fx.invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessed, inv.Status, "probable duplicates stay processed")
	assert.True(t, inv.NeedsReview)
	assert.Nil(t, inv.DuplicateOf)
}

func TestProcess_FatalValidationRejects(t *testing.T) {
	res := goodFields()
	res.Fields.TotalAmount = ""
	raw, _ := json.Marshal(res.Fields)
	res.Raw = raw
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: res})

	err := fx.proc.Process(context.Background(), fx.invoice.ID)
	require.Error(t, err)

	inv, gerr := fx.invoices.Get(context.Background(), fx.invoice.ID)
	require.NoError(t, gerr)
	assert.Equal(t, constants.StatusRejected, inv.Status)
	require.NotNil(t, inv.FailureReason)
	assert.Contains(t, *inv.FailureReason, "total")

	stages := fx.logs.stages()
	assert.Equal(t, constants.StageValidation, stages[len(stages)-1])
	assert.Equal(t, constants.LogFailure, fx.logs.entries[len(fx.logs.entries)-1].Status)
}

func TestProcess_ExtractionFailureRejects(t *testing.T) {
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{
		err: fmt.Errorf("%w: response violates schema after correction", common.ErrExtraction),
	})

	err := fx.proc.Process(context.Background(), fx.invoice.ID)
	assert.ErrorIs(t, err, common.ErrExtraction)

	inv, gerr := fx.invoices.Get(context.Background(), fx.invoice.ID)
	require.NoError(t, gerr)
	assert.Equal(t, constants.StatusRejected, inv.Status)
	require.NotNil(t, inv.FailureReason)
	assert.False(t, strings.HasPrefix(*inv.FailureReason, "cancelled:"))
}

func TestProcess_SecondClaimFails(t *testing.T) {
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: goodFields()})

	lease := time.Now().Add(time.Minute)
	fx.invoice.Status = constants.StatusProcessing
	fx.invoice.LeaseExpiresAt = &lease

	err := fx.proc.Process(context.Background(), fx.invoice.ID)
	assert.ErrorIs(t, err, common.ErrAlreadyProcessing)
	assert.Empty(t, fx.logs.entries, "a refused claim must not run any stage")
}

func TestProcess_ReclaimsExpiredLease(t *testing.T) {
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: goodFields()})

	stale := time.Now().Add(-time.Minute)
	fx.invoice.Status = constants.StatusProcessing
	fx.invoice.LeaseExpiresAt = &stale

	require.NoError(t, fx.proc.Process(context.Background(), fx.invoice.ID))

	inv, err := fx.invoices.Get(context.Background(), fx.invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessed, inv.Status)
}

func TestProcess_CancellationRejectsWithReason(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	texts := &fakeTextExtractor{fn: func(context.Context) error {
		cancel()
		return context.Canceled
	}}
	fx := newFixture(t, texts, &fakeFieldExtractor{result: goodFields()})

	err := fx.proc.Process(ctx, fx.invoice.ID)
	require.Error(t, err)

	inv, gerr := fx.invoices.Get(context.Background(), fx.invoice.ID)
	require.NoError(t, gerr)
	assert.Equal(t, constants.StatusRejected, inv.Status)
	require.NotNil(t, inv.FailureReason)
	assert.True(t, strings.HasPrefix(*inv.FailureReason, "cancelled:"), *inv.FailureReason)

	// the failed stage still got its log entry despite the dead context
	stages := fx.logs.stages()
	require.Len(t, stages, 2)
	assert.Equal(t, constants.StageTransition, stages[0])
	assert.Equal(t, constants.StageTextExtraction, stages[1])
}

func TestProcess_MissingInvoice(t *testing.T) {
	fx := newFixture(t, defaultText(), &fakeFieldExtractor{result: goodFields()})

	err := fx.proc.Process(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}
