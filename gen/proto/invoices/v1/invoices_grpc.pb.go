// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InvoicesService_UploadInvoice_FullMethodName     = "/invoices.v1.InvoicesService/UploadInvoice"
	InvoicesService_ProcessInvoice_FullMethodName    = "/invoices.v1.InvoicesService/ProcessInvoice"
	InvoicesService_RetryInvoice_FullMethodName      = "/invoices.v1.InvoicesService/RetryInvoice"
	InvoicesService_ApproveInvoice_FullMethodName    = "/invoices.v1.InvoicesService/ApproveInvoice"
	InvoicesService_RejectInvoice_FullMethodName     = "/invoices.v1.InvoicesService/RejectInvoice"
	InvoicesService_RecordPayment_FullMethodName     = "/invoices.v1.InvoicesService/RecordPayment"
	InvoicesService_ConfirmDuplicate_FullMethodName  = "/invoices.v1.InvoicesService/ConfirmDuplicate"
	InvoicesService_DismissDuplicate_FullMethodName  = "/invoices.v1.InvoicesService/DismissDuplicate"
	InvoicesService_GetInvoice_FullMethodName        = "/invoices.v1.InvoicesService/GetInvoice"
	InvoicesService_ListInvoices_FullMethodName      = "/invoices.v1.InvoicesService/ListInvoices"
	InvoicesService_ListProcessingLog_FullMethodName = "/invoices.v1.InvoicesService/ListProcessingLog"
)

// InvoicesServiceClient is the client API for InvoicesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type InvoicesServiceClient interface {
	// UploadInvoice stores the document, creates a pending invoice, and
	// optionally queues processing.
	UploadInvoice(ctx context.Context, in *UploadInvoiceRequest, opts ...grpc.CallOption) (*UploadInvoiceResponse, error)
	// ProcessInvoice queues a pipeline run for a pending invoice.
	ProcessInvoice(ctx context.Context, in *ProcessInvoiceRequest, opts ...grpc.CallOption) (*ProcessInvoiceResponse, error)
	// RetryInvoice resets a finished invoice to pending and re-queues it.
	RetryInvoice(ctx context.Context, in *RetryInvoiceRequest, opts ...grpc.CallOption) (*RetryInvoiceResponse, error)
	ApproveInvoice(ctx context.Context, in *ApproveInvoiceRequest, opts ...grpc.CallOption) (*ApproveInvoiceResponse, error)
	RejectInvoice(ctx context.Context, in *RejectInvoiceRequest, opts ...grpc.CallOption) (*RejectInvoiceResponse, error)
	RecordPayment(ctx context.Context, in *RecordPaymentRequest, opts ...grpc.CallOption) (*RecordPaymentResponse, error)
	// ConfirmDuplicate resolves a probable-duplicate flag by marking the
	// invoice a duplicate of the given original.
	ConfirmDuplicate(ctx context.Context, in *ConfirmDuplicateRequest, opts ...grpc.CallOption) (*ConfirmDuplicateResponse, error)
	DismissDuplicate(ctx context.Context, in *DismissDuplicateRequest, opts ...grpc.CallOption) (*DismissDuplicateResponse, error)
	GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*GetInvoiceResponse, error)
	ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error)
	ListProcessingLog(ctx context.Context, in *ListProcessingLogRequest, opts ...grpc.CallOption) (*ListProcessingLogResponse, error)
}

type invoicesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInvoicesServiceClient(cc grpc.ClientConnInterface) InvoicesServiceClient {
	return &invoicesServiceClient{cc}
}

func (c *invoicesServiceClient) UploadInvoice(ctx context.Context, in *UploadInvoiceRequest, opts ...grpc.CallOption) (*UploadInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_UploadInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) ProcessInvoice(ctx context.Context, in *ProcessInvoiceRequest, opts ...grpc.CallOption) (*ProcessInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_ProcessInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) RetryInvoice(ctx context.Context, in *RetryInvoiceRequest, opts ...grpc.CallOption) (*RetryInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetryInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_RetryInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) ApproveInvoice(ctx context.Context, in *ApproveInvoiceRequest, opts ...grpc.CallOption) (*ApproveInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_ApproveInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) RejectInvoice(ctx context.Context, in *RejectInvoiceRequest, opts ...grpc.CallOption) (*RejectInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RejectInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_RejectInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) RecordPayment(ctx context.Context, in *RecordPaymentRequest, opts ...grpc.CallOption) (*RecordPaymentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordPaymentResponse)
	err := c.cc.Invoke(ctx, InvoicesService_RecordPayment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) ConfirmDuplicate(ctx context.Context, in *ConfirmDuplicateRequest, opts ...grpc.CallOption) (*ConfirmDuplicateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmDuplicateResponse)
	err := c.cc.Invoke(ctx, InvoicesService_ConfirmDuplicate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) DismissDuplicate(ctx context.Context, in *DismissDuplicateRequest, opts ...grpc.CallOption) (*DismissDuplicateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DismissDuplicateResponse)
	err := c.cc.Invoke(ctx, InvoicesService_DismissDuplicate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*GetInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_GetInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInvoicesResponse)
	err := c.cc.Invoke(ctx, InvoicesService_ListInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) ListProcessingLog(ctx context.Context, in *ListProcessingLogRequest, opts ...grpc.CallOption) (*ListProcessingLogResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProcessingLogResponse)
	err := c.cc.Invoke(ctx, InvoicesService_ListProcessingLog_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvoicesServiceServer is the server API for InvoicesService service.
// All implementations must embed UnimplementedInvoicesServiceServer
// for forward compatibility.
type InvoicesServiceServer interface {
	// UploadInvoice stores the document, creates a pending invoice, and
	// optionally queues processing.
	UploadInvoice(context.Context, *UploadInvoiceRequest) (*UploadInvoiceResponse, error)
	// ProcessInvoice queues a pipeline run for a pending invoice.
	ProcessInvoice(context.Context, *ProcessInvoiceRequest) (*ProcessInvoiceResponse, error)
	// RetryInvoice resets a finished invoice to pending and re-queues it.
	RetryInvoice(context.Context, *RetryInvoiceRequest) (*RetryInvoiceResponse, error)
	ApproveInvoice(context.Context, *ApproveInvoiceRequest) (*ApproveInvoiceResponse, error)
	RejectInvoice(context.Context, *RejectInvoiceRequest) (*RejectInvoiceResponse, error)
	RecordPayment(context.Context, *RecordPaymentRequest) (*RecordPaymentResponse, error)
	// ConfirmDuplicate resolves a probable-duplicate flag by marking the
	// invoice a duplicate of the given original.
	ConfirmDuplicate(context.Context, *ConfirmDuplicateRequest) (*ConfirmDuplicateResponse, error)
	DismissDuplicate(context.Context, *DismissDuplicateRequest) (*DismissDuplicateResponse, error)
	GetInvoice(context.Context, *GetInvoiceRequest) (*GetInvoiceResponse, error)
	ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error)
	ListProcessingLog(context.Context, *ListProcessingLogRequest) (*ListProcessingLogResponse, error)
	mustEmbedUnimplementedInvoicesServiceServer()
}

// UnimplementedInvoicesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInvoicesServiceServer struct{}

func (UnimplementedInvoicesServiceServer) UploadInvoice(context.Context, *UploadInvoiceRequest) (*UploadInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) ProcessInvoice(context.Context, *ProcessInvoiceRequest) (*ProcessInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) RetryInvoice(context.Context, *RetryInvoiceRequest) (*RetryInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RetryInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) ApproveInvoice(context.Context, *ApproveInvoiceRequest) (*ApproveInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) RejectInvoice(context.Context, *RejectInvoiceRequest) (*RejectInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) RecordPayment(context.Context, *RecordPaymentRequest) (*RecordPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordPayment not implemented")
}
func (UnimplementedInvoicesServiceServer) ConfirmDuplicate(context.Context, *ConfirmDuplicateRequest) (*ConfirmDuplicateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmDuplicate not implemented")
}
func (UnimplementedInvoicesServiceServer) DismissDuplicate(context.Context, *DismissDuplicateRequest) (*DismissDuplicateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DismissDuplicate not implemented")
}
func (UnimplementedInvoicesServiceServer) GetInvoice(context.Context, *GetInvoiceRequest) (*GetInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInvoices not implemented")
}
func (UnimplementedInvoicesServiceServer) ListProcessingLog(context.Context, *ListProcessingLogRequest) (*ListProcessingLogResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProcessingLog not implemented")
}
func (UnimplementedInvoicesServiceServer) mustEmbedUnimplementedInvoicesServiceServer() {}
func (UnimplementedInvoicesServiceServer) testEmbeddedByValue()                         {}

// UnsafeInvoicesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InvoicesServiceServer will
// result in compilation errors.
type UnsafeInvoicesServiceServer interface {
	mustEmbedUnimplementedInvoicesServiceServer()
}

func RegisterInvoicesServiceServer(s grpc.ServiceRegistrar, srv InvoicesServiceServer) {
	// If the following call pancis, it indicates UnimplementedInvoicesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InvoicesService_ServiceDesc, srv)
}

func _InvoicesService_UploadInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).UploadInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_UploadInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).UploadInvoice(ctx, req.(*UploadInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_ProcessInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).ProcessInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_ProcessInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).ProcessInvoice(ctx, req.(*ProcessInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_RetryInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).RetryInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_RetryInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).RetryInvoice(ctx, req.(*RetryInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_ApproveInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).ApproveInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_ApproveInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).ApproveInvoice(ctx, req.(*ApproveInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_RejectInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).RejectInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_RejectInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).RejectInvoice(ctx, req.(*RejectInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_RecordPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).RecordPayment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_RecordPayment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).RecordPayment(ctx, req.(*RecordPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_ConfirmDuplicate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmDuplicateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).ConfirmDuplicate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_ConfirmDuplicate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).ConfirmDuplicate(ctx, req.(*ConfirmDuplicateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_DismissDuplicate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DismissDuplicateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).DismissDuplicate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_DismissDuplicate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).DismissDuplicate(ctx, req.(*DismissDuplicateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_GetInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).GetInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_GetInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).GetInvoice(ctx, req.(*GetInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_ListInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).ListInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_ListInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).ListInvoices(ctx, req.(*ListInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_ListProcessingLog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProcessingLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).ListProcessingLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_ListProcessingLog_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).ListProcessingLog(ctx, req.(*ListProcessingLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InvoicesService_ServiceDesc is the grpc.ServiceDesc for InvoicesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InvoicesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.InvoicesService",
	HandlerType: (*InvoicesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadInvoice",
			Handler:    _InvoicesService_UploadInvoice_Handler,
		},
		{
			MethodName: "ProcessInvoice",
			Handler:    _InvoicesService_ProcessInvoice_Handler,
		},
		{
			MethodName: "RetryInvoice",
			Handler:    _InvoicesService_RetryInvoice_Handler,
		},
		{
			MethodName: "ApproveInvoice",
			Handler:    _InvoicesService_ApproveInvoice_Handler,
		},
		{
			MethodName: "RejectInvoice",
			Handler:    _InvoicesService_RejectInvoice_Handler,
		},
		{
			MethodName: "RecordPayment",
			Handler:    _InvoicesService_RecordPayment_Handler,
		},
		{
			MethodName: "ConfirmDuplicate",
			Handler:    _InvoicesService_ConfirmDuplicate_Handler,
		},
		{
			MethodName: "DismissDuplicate",
			Handler:    _InvoicesService_DismissDuplicate_Handler,
		},
		{
			MethodName: "GetInvoice",
			Handler:    _InvoicesService_GetInvoice_Handler,
		},
		{
			MethodName: "ListInvoices",
			Handler:    _InvoicesService_ListInvoices_Handler,
		},
		{
			MethodName: "ListProcessingLog",
			Handler:    _InvoicesService_ListProcessingLog_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}

const (
	VendorsService_ListVendors_FullMethodName = "/invoices.v1.VendorsService/ListVendors"
	VendorsService_GetVendor_FullMethodName   = "/invoices.v1.VendorsService/GetVendor"
)

// VendorsServiceClient is the client API for VendorsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type VendorsServiceClient interface {
	ListVendors(ctx context.Context, in *ListVendorsRequest, opts ...grpc.CallOption) (*ListVendorsResponse, error)
	GetVendor(ctx context.Context, in *GetVendorRequest, opts ...grpc.CallOption) (*GetVendorResponse, error)
}

type vendorsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVendorsServiceClient(cc grpc.ClientConnInterface) VendorsServiceClient {
	return &vendorsServiceClient{cc}
}

func (c *vendorsServiceClient) ListVendors(ctx context.Context, in *ListVendorsRequest, opts ...grpc.CallOption) (*ListVendorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVendorsResponse)
	err := c.cc.Invoke(ctx, VendorsService_ListVendors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vendorsServiceClient) GetVendor(ctx context.Context, in *GetVendorRequest, opts ...grpc.CallOption) (*GetVendorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVendorResponse)
	err := c.cc.Invoke(ctx, VendorsService_GetVendor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VendorsServiceServer is the server API for VendorsService service.
// All implementations must embed UnimplementedVendorsServiceServer
// for forward compatibility.
type VendorsServiceServer interface {
	ListVendors(context.Context, *ListVendorsRequest) (*ListVendorsResponse, error)
	GetVendor(context.Context, *GetVendorRequest) (*GetVendorResponse, error)
	mustEmbedUnimplementedVendorsServiceServer()
}

// UnimplementedVendorsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedVendorsServiceServer struct{}

func (UnimplementedVendorsServiceServer) ListVendors(context.Context, *ListVendorsRequest) (*ListVendorsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListVendors not implemented")
}
func (UnimplementedVendorsServiceServer) GetVendor(context.Context, *GetVendorRequest) (*GetVendorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVendor not implemented")
}
func (UnimplementedVendorsServiceServer) mustEmbedUnimplementedVendorsServiceServer() {}
func (UnimplementedVendorsServiceServer) testEmbeddedByValue()                        {}

// UnsafeVendorsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VendorsServiceServer will
// result in compilation errors.
type UnsafeVendorsServiceServer interface {
	mustEmbedUnimplementedVendorsServiceServer()
}

func RegisterVendorsServiceServer(s grpc.ServiceRegistrar, srv VendorsServiceServer) {
	// If the following call pancis, it indicates UnimplementedVendorsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&VendorsService_ServiceDesc, srv)
}

func _VendorsService_ListVendors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVendorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VendorsServiceServer).ListVendors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VendorsService_ListVendors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VendorsServiceServer).ListVendors(ctx, req.(*ListVendorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VendorsService_GetVendor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVendorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VendorsServiceServer).GetVendor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VendorsService_GetVendor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VendorsServiceServer).GetVendor(ctx, req.(*GetVendorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VendorsService_ServiceDesc is the grpc.ServiceDesc for VendorsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VendorsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.VendorsService",
	HandlerType: (*VendorsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListVendors",
			Handler:    _VendorsService_ListVendors_Handler,
		},
		{
			MethodName: "GetVendor",
			Handler:    _VendorsService_GetVendor_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}

const (
	ExportService_ExportInvoices_FullMethodName = "/invoices.v1.ExportService/ExportInvoices"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	// ExportInvoices returns an XLSX workbook of the user's invoices.
	ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportInvoicesResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	// ExportInvoices returns an XLSX workbook of the user's invoices.
	ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportInvoices not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportInvoices(ctx, req.(*ExportInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportInvoices",
			Handler:    _ExportService_ExportInvoices_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}
