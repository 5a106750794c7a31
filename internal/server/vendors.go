package server

import (
	"context"
	"log/slog"

	"github.com/paperpilot/invoicer/internal/repository"
	"github.com/paperpilot/invoicer/internal/utils"

	invoicespb "github.com/paperpilot/invoicer/gen/proto/invoices/v1"
)

type VendorsServer struct {
	invoicespb.UnimplementedVendorsServiceServer
	vendors repository.VendorRepository
	logger  *slog.Logger
}

func NewVendorsServer(vendors repository.VendorRepository, logger *slog.Logger) *VendorsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &VendorsServer{vendors: vendors, logger: logger}
}

func (s *VendorsServer) ListVendors(ctx context.Context, req *invoicespb.ListVendorsRequest) (*invoicespb.ListVendorsResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	rows, err := s.vendors.ListForUser(ctx, userID)
	if err != nil {
		s.logger.Warn("rpc.vendors.list.failed", "user_id", userID, "error", err)
		return nil, rpcError(err)
	}
	out := make([]*invoicespb.Vendor, len(rows))
	for i, v := range rows {
		out[i] = utils.ToPBVendor(v)
	}
	return &invoicespb.ListVendorsResponse{Vendors: out}, nil
}

func (s *VendorsServer) GetVendor(ctx context.Context, req *invoicespb.GetVendorRequest) (*invoicespb.GetVendorResponse, error) {
	id, err := parseID("vendor_id", req.GetVendorId())
	if err != nil {
		return nil, err
	}
	v, err := s.vendors.Get(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &invoicespb.GetVendorResponse{Vendor: utils.ToPBVendor(v)}, nil
}
