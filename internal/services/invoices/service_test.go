package invoices

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/internal/async"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/entity"
	"github.com/paperpilot/invoicer/internal/events"
	"github.com/paperpilot/invoicer/internal/repository"
)

// -------- test fakes --------

type fakeInvoices struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*entity.Invoice
	moves []repository.TransitionRequest
}

func newFakeInvoices(seed ...*entity.Invoice) *fakeInvoices {
	f := &fakeInvoices{byID: make(map[uuid.UUID]*entity.Invoice)}
	for _, inv := range seed {
		f.byID[inv.ID] = inv
	}
	return f
}

func (f *fakeInvoices) Create(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	docID := req.DocumentID
	inv := &entity.Invoice{
		ID:         uuid.New(),
		UserID:     req.UserID,
		DocumentID: &docID,
		Status:     constants.StatusPending,
		Notes:      req.Notes,
		Tags:       req.Tags,
		CreatedAt:  time.Now().UTC(),
	}
	f.byID[inv.ID] = inv
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoices) Get(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoices) List(context.Context, *repository.ListInvoicesFilter) ([]*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoices) ClaimForProcessing(context.Context, uuid.UUID, time.Duration) (*entity.Invoice, error) {
	panic("not used")
}

func (f *fakeInvoices) SaveExtraction(context.Context, uuid.UUID, *repository.ExtractionUpdate) (*entity.Invoice, error) {
	panic("not used")
}

func (f *fakeInvoices) Transition(_ context.Context, req *repository.TransitionRequest) (*entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.byID[req.ID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", req.ID, common.ErrNotFound)
	}
	if inv.Status != req.From {
		return nil, fmt.Errorf("invoice %s: status is no longer %s: %w",
			req.ID, req.From, common.ErrIllegalTransition)
	}
	f.moves = append(f.moves, *req)
	inv.Status = req.To
	inv.FailureReason = req.FailureReason
	if req.DuplicateOf != nil {
		inv.DuplicateOf = req.DuplicateOf
	}
	if req.To == constants.StatusPaid {
		now := time.Now().UTC()
		inv.PaidAt = &now
	}
	if req.To == constants.StatusPending {
		inv.VendorID = nil
		inv.InvoiceNumber = nil
		inv.Fingerprint = ""
		inv.NeedsReview = false
		inv.DuplicateOf = nil
		inv.Items = nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoices) ListRecent(context.Context, uuid.UUID, time.Time, int) ([]*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoices) FindByFingerprint(context.Context, uuid.UUID, string) ([]*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoices) SetNeedsReview(_ context.Context, id uuid.UUID, needsReview bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	inv.NeedsReview = needsReview
	return nil
}

type fakeDocuments struct {
	created []repository.CreateDocumentRequest
}

func (f *fakeDocuments) Create(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	f.created = append(f.created, *req)
	return &entity.Document{
		ID:       uuid.New(),
		UserID:   req.UserID,
		Filename: req.Filename,
		MIMEType: req.MIMEType,
		ByteSize: len(req.Content),
	}, nil
}

func (f *fakeDocuments) Get(context.Context, uuid.UUID) (*entity.Document, error) {
	panic("not used")
}

func (f *fakeDocuments) Content(context.Context, uuid.UUID) ([]byte, error) { panic("not used") }

type fakeLogs struct{}

func (fakeLogs) Append(context.Context, *entity.LogEntry) error { return nil }
func (fakeLogs) ListByInvoice(context.Context, uuid.UUID) ([]*entity.LogEntry, error) {
	return nil, nil
}

type fakeQueue struct {
	mu   sync.Mutex
	jobs []async.Job
	err  error
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

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
	svc       *Service
	invoices  *fakeInvoices
	documents *fakeDocuments
	queue     *fakeQueue
	published *collectPublisher
}

func newFixture(seed ...*entity.Invoice) *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	invoices := newFakeInvoices(seed...)
	documents := &fakeDocuments{}
	queue := &fakeQueue{}
	published := &collectPublisher{}
	return &fixture{
		svc:       NewService(invoices, documents, &fakeLogs{}, queue, published, logger),
		invoices:  invoices,
		documents: documents,
		queue:     queue,
		published: published,
	}
}

func seedInvoice(status constants.InvoiceStatus) *entity.Invoice {
	return &entity.Invoice{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Status:      status,
		TotalAmount: 120.0,
		Currency:    "USD",
	}
}

// -------- tests --------

func TestUpload(t *testing.T) {
	fx := newFixture()

	inv, err := fx.svc.Upload(context.Background(), &UploadRequest{
		UserID:   uuid.New(),
		Filename: "invoice.pdf",
		MIMEType: "application/pdf",
		Content:  []byte("%PDF-1.4"),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, inv.Status)
	require.NotNil(t, inv.DocumentID)
	require.Len(t, fx.documents.created, 1)
	assert.Equal(t, "invoice.pdf", fx.documents.created[0].Filename)
	assert.Empty(t, fx.queue.jobs, "no auto-process requested")
}

func TestUpload_AutoProcessEnqueues(t *testing.T) {
	fx := newFixture()

	inv, err := fx.svc.Upload(context.Background(), &UploadRequest{
		UserID:      uuid.New(),
		Filename:    "invoice.pdf",
		MIMEType:    "application/pdf",
		Content:     []byte("%PDF-1.4"),
		AutoProcess: true,
	})
	require.NoError(t, err)
	require.Len(t, fx.queue.jobs, 1)
	assert.Equal(t, inv.ID, fx.queue.jobs[0].InvoiceID)
}

func TestUpload_Rejections(t *testing.T) {
	fx := newFixture()

	cases := map[string]*UploadRequest{
		"missing user": {Filename: "a.pdf", MIMEType: "application/pdf", Content: []byte("x")},
		"empty content": {UserID: uuid.New(), Filename: "a.pdf", MIMEType: "application/pdf"},
		"oversized": {UserID: uuid.New(), Filename: "a.pdf", MIMEType: "application/pdf",
			Content: make([]byte, MaxUploadBytes+1)},
		"unsupported type": {UserID: uuid.New(), Filename: "a.zip", MIMEType: "application/zip",
			Content: []byte("x")},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fx.svc.Upload(context.Background(), req)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
	assert.Empty(t, fx.documents.created)
}

func TestProcess(t *testing.T) {
	inv := seedInvoice(constants.StatusPending)
	fx := newFixture(inv)

	require.NoError(t, fx.svc.Process(context.Background(), inv.ID))
	require.Len(t, fx.queue.jobs, 1)
	assert.Equal(t, inv.ID, fx.queue.jobs[0].InvoiceID)
}

func TestProcess_NotPending(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessed)
	fx := newFixture(inv)

	err := fx.svc.Process(context.Background(), inv.ID)
	assert.ErrorIs(t, err, common.ErrIllegalTransition)
	assert.Empty(t, fx.queue.jobs)
}

func TestApprove(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessed)
	fx := newFixture(inv)

	cur, err := fx.svc.Approve(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, cur.Status)

	require.Len(t, fx.published.events, 1)
	assert.Equal(t, constants.StatusProcessed, fx.published.events[0].OldStatus)
	assert.Equal(t, constants.StatusApproved, fx.published.events[0].NewStatus)
}

func TestApprove_FromPendingIsIllegal(t *testing.T) {
	inv := seedInvoice(constants.StatusPending)
	fx := newFixture(inv)

	_, err := fx.svc.Approve(context.Background(), inv.ID)
	assert.ErrorIs(t, err, common.ErrIllegalTransition)
	assert.Empty(t, fx.published.events)
}

func TestReject_KeepsReason(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessed)
	fx := newFixture(inv)

	cur, err := fx.svc.Reject(context.Background(), inv.ID, "wrong vendor")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRejected, cur.Status)
	require.NotNil(t, cur.FailureReason)
	assert.Equal(t, "wrong vendor", *cur.FailureReason)
}

func TestRecordPayment(t *testing.T) {
	inv := seedInvoice(constants.StatusApproved)
	fx := newFixture(inv)

	cur, err := fx.svc.RecordPayment(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPaid, cur.Status)
	assert.NotNil(t, cur.PaidAt)
}

func TestConfirmDuplicate(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessed)
	inv.NeedsReview = true
	original := seedInvoice(constants.StatusProcessed)
	fx := newFixture(inv, original)

	cur, err := fx.svc.ConfirmDuplicate(context.Background(), inv.ID, original.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDuplicate, cur.Status)
	require.NotNil(t, cur.DuplicateOf)
	assert.Equal(t, original.ID, *cur.DuplicateOf)
}

func TestConfirmDuplicate_SelfIsInvalid(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessed)
	fx := newFixture(inv)

	_, err := fx.svc.ConfirmDuplicate(context.Background(), inv.ID, inv.ID)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Empty(t, fx.invoices.moves)
}

func TestConfirmDuplicate_LinksToRootNotChain(t *testing.T) {
	root := seedInvoice(constants.StatusProcessed)
	mid := seedInvoice(constants.StatusDuplicate)
	mid.DuplicateOf = &root.ID
	inv := seedInvoice(constants.StatusProcessed)
	fx := newFixture(root, mid, inv)

	cur, err := fx.svc.ConfirmDuplicate(context.Background(), inv.ID, mid.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDuplicate, cur.Status)
	require.NotNil(t, cur.DuplicateOf)
	assert.Equal(t, root.ID, *cur.DuplicateOf, "link must point at the non-duplicate root")
}

func TestConfirmDuplicate_ChainBackToSelfIsInvalid(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessed)
	mid := seedInvoice(constants.StatusDuplicate)
	mid.DuplicateOf = &inv.ID
	fx := newFixture(inv, mid)

	_, err := fx.svc.ConfirmDuplicate(context.Background(), inv.ID, mid.ID)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Empty(t, fx.invoices.moves)
}

func TestConfirmDuplicate_MissingOriginal(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessed)
	fx := newFixture(inv)

	_, err := fx.svc.ConfirmDuplicate(context.Background(), inv.ID, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDismissDuplicate(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessed)
	inv.NeedsReview = true
	fx := newFixture(inv)

	cur, err := fx.svc.DismissDuplicate(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessed, cur.Status)
	assert.False(t, cur.NeedsReview)
}

func TestDismissDuplicate_NotProcessed(t *testing.T) {
	inv := seedInvoice(constants.StatusPending)
	fx := newFixture(inv)

	_, err := fx.svc.DismissDuplicate(context.Background(), inv.ID)
	assert.ErrorIs(t, err, common.ErrIllegalTransition)
}

func TestRetry_ResetsAndEnqueues(t *testing.T) {
	inv := seedInvoice(constants.StatusRejected)
	num := "INV-42"
	inv.InvoiceNumber = &num
	inv.Fingerprint = "abc"
	fx := newFixture(inv)

	cur, err := fx.svc.Retry(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, cur.Status)
	assert.Nil(t, cur.InvoiceNumber, "extracted fields are cleared on reset")
	assert.Empty(t, cur.Fingerprint)
	require.Len(t, fx.queue.jobs, 1)
	assert.Empty(t, fx.published.events, "a reset is not an advancing change")
}

func TestRetry_StaleLeaseReenqueues(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessing)
	past := time.Now().UTC().Add(-time.Minute)
	inv.LeaseExpiresAt = &past
	fx := newFixture(inv)

	cur, err := fx.svc.Retry(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessing, cur.Status)
	require.Len(t, fx.queue.jobs, 1)
	assert.Empty(t, fx.invoices.moves, "the expired-lease claim handles the takeover")
}

func TestRetry_LiveLeaseIsRefused(t *testing.T) {
	inv := seedInvoice(constants.StatusProcessing)
	future := time.Now().UTC().Add(time.Minute)
	inv.LeaseExpiresAt = &future
	fx := newFixture(inv)

	_, err := fx.svc.Retry(context.Background(), inv.ID)
	assert.ErrorIs(t, err, common.ErrAlreadyProcessing)
	assert.Empty(t, fx.queue.jobs)
}

func TestRetry_PendingJustEnqueues(t *testing.T) {
	inv := seedInvoice(constants.StatusPending)
	fx := newFixture(inv)

	cur, err := fx.svc.Retry(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, cur.Status)
	require.Len(t, fx.queue.jobs, 1)
	assert.Empty(t, fx.invoices.moves, "no transition for an already-pending invoice")
}
