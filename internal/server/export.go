package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/export"

	invoicespb "github.com/paperpilot/invoicer/gen/proto/invoices/v1"
)

type ExportServer struct {
	invoicespb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *invoicespb.ExportInvoicesRequest) (*invoicespb.ExportInvoicesResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, userID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("rpc.export.failed", "user_id", userID, "error", err)
		return nil, rpcError(err)
	}
	return &invoicespb.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
