package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/repository"
	invsvc "github.com/paperpilot/invoicer/internal/services/invoices"
	"github.com/paperpilot/invoicer/internal/utils"

	invoicespb "github.com/paperpilot/invoicer/gen/proto/invoices/v1"
)

type InvoicesServer struct {
	invoicespb.UnimplementedInvoicesServiceServer
	svc    *invsvc.Service
	logger *slog.Logger
}

func NewInvoicesServer(svc *invsvc.Service, logger *slog.Logger) *InvoicesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesServer{svc: svc, logger: logger}
}

func (s *InvoicesServer) UploadInvoice(ctx context.Context, req *invoicespb.UploadInvoiceRequest) (*invoicespb.UploadInvoiceResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	upload := &invsvc.UploadRequest{
		UserID:      userID,
		Filename:    strings.TrimSpace(req.GetFilename()),
		MIMEType:    strings.TrimSpace(req.GetContentType()),
		Content:     req.GetContent(),
		Tags:        req.GetTags(),
		AutoProcess: req.GetAutoProcess(),
	}
	if n := strings.TrimSpace(req.GetNotes()); n != "" {
		upload.Notes = &n
	}
	inv, err := s.svc.Upload(ctx, upload)
	if err != nil {
		s.logger.Warn("rpc.upload.failed", "user_id", userID, "error", err)
		return nil, rpcError(err)
	}
	return &invoicespb.UploadInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesServer) ProcessInvoice(ctx context.Context, req *invoicespb.ProcessInvoiceRequest) (*invoicespb.ProcessInvoiceResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	if err := s.svc.Process(ctx, id); err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.ProcessInvoiceResponse{}, nil
}

func (s *InvoicesServer) RetryInvoice(ctx context.Context, req *invoicespb.RetryInvoiceRequest) (*invoicespb.RetryInvoiceResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.svc.Retry(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.RetryInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesServer) ApproveInvoice(ctx context.Context, req *invoicespb.ApproveInvoiceRequest) (*invoicespb.ApproveInvoiceResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.svc.Approve(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.ApproveInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesServer) RejectInvoice(ctx context.Context, req *invoicespb.RejectInvoiceRequest) (*invoicespb.RejectInvoiceResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.svc.Reject(ctx, id, strings.TrimSpace(req.GetReason()))
	if err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.RejectInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesServer) RecordPayment(ctx context.Context, req *invoicespb.RecordPaymentRequest) (*invoicespb.RecordPaymentResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.svc.RecordPayment(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.RecordPaymentResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesServer) ConfirmDuplicate(ctx context.Context, req *invoicespb.ConfirmDuplicateRequest) (*invoicespb.ConfirmDuplicateResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	originalID, err := parseID("original_id", req.GetOriginalId())
	if err != nil {
		return nil, err
	}
	inv, err := s.svc.ConfirmDuplicate(ctx, id, originalID)
	if err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.ConfirmDuplicateResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesServer) DismissDuplicate(ctx context.Context, req *invoicespb.DismissDuplicateRequest) (*invoicespb.DismissDuplicateResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.svc.DismissDuplicate(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.DismissDuplicateResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesServer) GetInvoice(ctx context.Context, req *invoicespb.GetInvoiceRequest) (*invoicespb.GetInvoiceResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.GetInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesServer) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	filter := &repository.ListInvoicesFilter{
		UserID: userID,
		Limit:  int(req.GetLimit()),
		Offset: int(req.GetOffset()),
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		s2 := constants.InvoiceStatus(st)
		if !s2.Valid() {
			return nil, common.InvalidArgumentError("status is not a known value")
		}
		filter.Status = s2
	}
	if v := strings.TrimSpace(req.GetVendorId()); v != "" {
		vendorID, err := parseID("vendor_id", v)
		if err != nil {
			return nil, err
		}
		filter.VendorID = &vendorID
	}
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		filter.FromDate = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	invs, err := s.svc.List(ctx, filter)
	if err != nil {
		return nil, rpcError(err)
	}
	out := make([]*invoicespb.Invoice, len(invs))
	for i, inv := range invs {
		out[i] = utils.ToPBInvoice(inv)
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *InvoicesServer) ListProcessingLog(ctx context.Context, req *invoicespb.ListProcessingLogRequest) (*invoicespb.ListProcessingLogResponse, error) {
	id, err := parseID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	entries, err := s.svc.ListLogs(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	out := make([]*invoicespb.ProcessingLogEntry, len(entries))
	for i, e := range entries {
		out[i] = utils.ToPBLogEntry(e)
	}
	return &invoicespb.ListProcessingLogResponse{Entries: out}, nil
}
