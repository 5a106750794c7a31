// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Invoice struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId          string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	VendorId        string                 `protobuf:"bytes,3,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,4,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Status          string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	InvoiceNumber   string                 `protobuf:"bytes,6,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate     string                 `protobuf:"bytes,7,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD
	DueDate         string                 `protobuf:"bytes,8,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`             // YYYY-MM-DD
	Subtotal        string                 `protobuf:"bytes,9,opt,name=subtotal,proto3" json:"subtotal,omitempty"`                          // decimal
	TaxAmount       string                 `protobuf:"bytes,10,opt,name=tax_amount,json=taxAmount,proto3" json:"tax_amount,omitempty"`      // decimal
	TotalAmount     string                 `protobuf:"bytes,11,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	Currency        string                 `protobuf:"bytes,12,opt,name=currency,proto3" json:"currency,omitempty"`
	Notes           string                 `protobuf:"bytes,13,opt,name=notes,proto3" json:"notes,omitempty"`
	Tags            []string               `protobuf:"bytes,14,rep,name=tags,proto3" json:"tags,omitempty"`
	DuplicateOf     string                 `protobuf:"bytes,15,opt,name=duplicate_of,json=duplicateOf,proto3" json:"duplicate_of,omitempty"`
	ConfidenceScore float32                `protobuf:"fixed32,16,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	NeedsReview     bool                   `protobuf:"varint,17,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	FailureReason   string                 `protobuf:"bytes,18,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	IsOverdue       bool                   `protobuf:"varint,19,opt,name=is_overdue,json=isOverdue,proto3" json:"is_overdue,omitempty"`
	PaidAt          string                 `protobuf:"bytes,20,opt,name=paid_at,json=paidAt,proto3" json:"paid_at,omitempty"`          // RFC 3339
	CreatedAt       string                 `protobuf:"bytes,21,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt       string                 `protobuf:"bytes,22,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	Items           []*InvoiceItem         `protobuf:"bytes,23,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Invoice) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *Invoice) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Invoice) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Invoice) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *Invoice) GetTaxAmount() string {
	if x != nil {
		return x.TaxAmount
	}
	return ""
}

func (x *Invoice) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *Invoice) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Invoice) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Invoice) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Invoice) GetDuplicateOf() string {
	if x != nil {
		return x.DuplicateOf
	}
	return ""
}

func (x *Invoice) GetConfidenceScore() float32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *Invoice) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Invoice) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

func (x *Invoice) GetIsOverdue() bool {
	if x != nil {
		return x.IsOverdue
	}
	return false
}

func (x *Invoice) GetPaidAt() string {
	if x != nil {
		return x.PaidAt
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Invoice) GetItems() []*InvoiceItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type InvoiceItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      float64                `protobuf:"fixed64,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"` // decimal
	Total         string                 `protobuf:"bytes,5,opt,name=total,proto3" json:"total,omitempty"`                          // decimal
	ProductCode   string                 `protobuf:"bytes,6,opt,name=product_code,json=productCode,proto3" json:"product_code,omitempty"`
	UnitOfMeasure string                 `protobuf:"bytes,7,opt,name=unit_of_measure,json=unitOfMeasure,proto3" json:"unit_of_measure,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvoiceItem) Reset() {
	*x = InvoiceItem{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceItem) ProtoMessage() {}

func (x *InvoiceItem) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceItem.ProtoReflect.Descriptor instead.
func (*InvoiceItem) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *InvoiceItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InvoiceItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *InvoiceItem) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *InvoiceItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *InvoiceItem) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *InvoiceItem) GetProductCode() string {
	if x != nil {
		return x.ProductCode
	}
	return ""
}

func (x *InvoiceItem) GetUnitOfMeasure() string {
	if x != nil {
		return x.UnitOfMeasure
	}
	return ""
}

type Vendor struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId         string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name           string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	NormalizedName string                 `protobuf:"bytes,4,opt,name=normalized_name,json=normalizedName,proto3" json:"normalized_name,omitempty"`
	Aliases        []string               `protobuf:"bytes,5,rep,name=aliases,proto3" json:"aliases,omitempty"`
	Address        string                 `protobuf:"bytes,6,opt,name=address,proto3" json:"address,omitempty"`
	Email          string                 `protobuf:"bytes,7,opt,name=email,proto3" json:"email,omitempty"`
	Phone          string                 `protobuf:"bytes,8,opt,name=phone,proto3" json:"phone,omitempty"`
	AiCreated      bool                   `protobuf:"varint,9,opt,name=ai_created,json=aiCreated,proto3" json:"ai_created,omitempty"`
	InvoiceCount   int32                  `protobuf:"varint,10,opt,name=invoice_count,json=invoiceCount,proto3" json:"invoice_count,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Vendor) Reset() {
	*x = Vendor{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vendor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vendor) ProtoMessage() {}

func (x *Vendor) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vendor.ProtoReflect.Descriptor instead.
func (*Vendor) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *Vendor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vendor) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Vendor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vendor) GetNormalizedName() string {
	if x != nil {
		return x.NormalizedName
	}
	return ""
}

func (x *Vendor) GetAliases() []string {
	if x != nil {
		return x.Aliases
	}
	return nil
}

func (x *Vendor) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Vendor) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Vendor) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Vendor) GetAiCreated() bool {
	if x != nil {
		return x.AiCreated
	}
	return false
}

func (x *Vendor) GetInvoiceCount() int32 {
	if x != nil {
		return x.InvoiceCount
	}
	return 0
}

func (x *Vendor) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Vendor) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ProcessingLogEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	InvoiceId     string                 `protobuf:"bytes,2,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	Stage         string                 `protobuf:"bytes,3,opt,name=stage,proto3" json:"stage,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Message       string                 `protobuf:"bytes,5,opt,name=message,proto3" json:"message,omitempty"`
	Attempt       int32                  `protobuf:"varint,6,opt,name=attempt,proto3" json:"attempt,omitempty"`
	DurationMs    int64                  `protobuf:"varint,7,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessingLogEntry) Reset() {
	*x = ProcessingLogEntry{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingLogEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingLogEntry) ProtoMessage() {}

func (x *ProcessingLogEntry) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingLogEntry.ProtoReflect.Descriptor instead.
func (*ProcessingLogEntry) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessingLogEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProcessingLogEntry) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *ProcessingLogEntry) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *ProcessingLogEntry) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessingLogEntry) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ProcessingLogEntry) GetAttempt() int32 {
	if x != nil {
		return x.Attempt
	}
	return 0
}

func (x *ProcessingLogEntry) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

func (x *ProcessingLogEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type UploadInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	Notes         string                 `protobuf:"bytes,5,opt,name=notes,proto3" json:"notes,omitempty"`
	Tags          []string               `protobuf:"bytes,6,rep,name=tags,proto3" json:"tags,omitempty"`
	AutoProcess   bool                   `protobuf:"varint,7,opt,name=auto_process,json=autoProcess,proto3" json:"auto_process,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadInvoiceRequest) Reset() {
	*x = UploadInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadInvoiceRequest) ProtoMessage() {}

func (x *UploadInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadInvoiceRequest.ProtoReflect.Descriptor instead.
func (*UploadInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *UploadInvoiceRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadInvoiceRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadInvoiceRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadInvoiceRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadInvoiceRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *UploadInvoiceRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *UploadInvoiceRequest) GetAutoProcess() bool {
	if x != nil {
		return x.AutoProcess
	}
	return false
}

type UploadInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadInvoiceResponse) Reset() {
	*x = UploadInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadInvoiceResponse) ProtoMessage() {}

func (x *UploadInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadInvoiceResponse.ProtoReflect.Descriptor instead.
func (*UploadInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *UploadInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ProcessInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInvoiceRequest) Reset() {
	*x = ProcessInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInvoiceRequest) ProtoMessage() {}

func (x *ProcessInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ProcessInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *ProcessInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type ProcessInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInvoiceResponse) Reset() {
	*x = ProcessInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInvoiceResponse) ProtoMessage() {}

func (x *ProcessInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ProcessInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

type RetryInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryInvoiceRequest) Reset() {
	*x = RetryInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryInvoiceRequest) ProtoMessage() {}

func (x *RetryInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryInvoiceRequest.ProtoReflect.Descriptor instead.
func (*RetryInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *RetryInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type RetryInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryInvoiceResponse) Reset() {
	*x = RetryInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryInvoiceResponse) ProtoMessage() {}

func (x *RetryInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryInvoiceResponse.ProtoReflect.Descriptor instead.
func (*RetryInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *RetryInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ApproveInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveInvoiceRequest) Reset() {
	*x = ApproveInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveInvoiceRequest) ProtoMessage() {}

func (x *ApproveInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ApproveInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{10}
}

func (x *ApproveInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type ApproveInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveInvoiceResponse) Reset() {
	*x = ApproveInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveInvoiceResponse) ProtoMessage() {}

func (x *ApproveInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ApproveInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{11}
}

func (x *ApproveInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type RejectInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectInvoiceRequest) Reset() {
	*x = RejectInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectInvoiceRequest) ProtoMessage() {}

func (x *RejectInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectInvoiceRequest.ProtoReflect.Descriptor instead.
func (*RejectInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{12}
}

func (x *RejectInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *RejectInvoiceRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type RejectInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectInvoiceResponse) Reset() {
	*x = RejectInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectInvoiceResponse) ProtoMessage() {}

func (x *RejectInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectInvoiceResponse.ProtoReflect.Descriptor instead.
func (*RejectInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{13}
}

func (x *RejectInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type RecordPaymentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordPaymentRequest) Reset() {
	*x = RecordPaymentRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordPaymentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordPaymentRequest) ProtoMessage() {}

func (x *RecordPaymentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordPaymentRequest.ProtoReflect.Descriptor instead.
func (*RecordPaymentRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{14}
}

func (x *RecordPaymentRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type RecordPaymentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordPaymentResponse) Reset() {
	*x = RecordPaymentResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordPaymentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordPaymentResponse) ProtoMessage() {}

func (x *RecordPaymentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordPaymentResponse.ProtoReflect.Descriptor instead.
func (*RecordPaymentResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{15}
}

func (x *RecordPaymentResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ConfirmDuplicateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	OriginalId    string                 `protobuf:"bytes,2,opt,name=original_id,json=originalId,proto3" json:"original_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmDuplicateRequest) Reset() {
	*x = ConfirmDuplicateRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmDuplicateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmDuplicateRequest) ProtoMessage() {}

func (x *ConfirmDuplicateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmDuplicateRequest.ProtoReflect.Descriptor instead.
func (*ConfirmDuplicateRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{16}
}

func (x *ConfirmDuplicateRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *ConfirmDuplicateRequest) GetOriginalId() string {
	if x != nil {
		return x.OriginalId
	}
	return ""
}

type ConfirmDuplicateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmDuplicateResponse) Reset() {
	*x = ConfirmDuplicateResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmDuplicateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmDuplicateResponse) ProtoMessage() {}

func (x *ConfirmDuplicateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmDuplicateResponse.ProtoReflect.Descriptor instead.
func (*ConfirmDuplicateResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{17}
}

func (x *ConfirmDuplicateResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type DismissDuplicateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DismissDuplicateRequest) Reset() {
	*x = DismissDuplicateRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DismissDuplicateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DismissDuplicateRequest) ProtoMessage() {}

func (x *DismissDuplicateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DismissDuplicateRequest.ProtoReflect.Descriptor instead.
func (*DismissDuplicateRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{18}
}

func (x *DismissDuplicateRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type DismissDuplicateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DismissDuplicateResponse) Reset() {
	*x = DismissDuplicateResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DismissDuplicateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DismissDuplicateResponse) ProtoMessage() {}

func (x *DismissDuplicateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DismissDuplicateResponse.ProtoReflect.Descriptor instead.
func (*DismissDuplicateResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{19}
}

func (x *DismissDuplicateResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type GetInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceRequest) Reset() {
	*x = GetInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceRequest) ProtoMessage() {}

func (x *GetInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{20}
}

func (x *GetInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type GetInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceResponse) Reset() {
	*x = GetInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceResponse) ProtoMessage() {}

func (x *GetInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceResponse.ProtoReflect.Descriptor instead.
func (*GetInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{21}
}

func (x *GetInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	VendorId      string                 `protobuf:"bytes,3,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,4,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,5,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	Limit         int32                  `protobuf:"varint,6,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,7,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{22}
}

func (x *ListInvoicesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListInvoicesRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListInvoicesRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *ListInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListInvoicesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{23}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type ListProcessingLogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProcessingLogRequest) Reset() {
	*x = ListProcessingLogRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProcessingLogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProcessingLogRequest) ProtoMessage() {}

func (x *ListProcessingLogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProcessingLogRequest.ProtoReflect.Descriptor instead.
func (*ListProcessingLogRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{24}
}

func (x *ListProcessingLogRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type ListProcessingLogResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*ProcessingLogEntry  `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProcessingLogResponse) Reset() {
	*x = ListProcessingLogResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProcessingLogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProcessingLogResponse) ProtoMessage() {}

func (x *ListProcessingLogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProcessingLogResponse.ProtoReflect.Descriptor instead.
func (*ListProcessingLogResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{25}
}

func (x *ListProcessingLogResponse) GetEntries() []*ProcessingLogEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ListVendorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsRequest) Reset() {
	*x = ListVendorsRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsRequest) ProtoMessage() {}

func (x *ListVendorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsRequest.ProtoReflect.Descriptor instead.
func (*ListVendorsRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{26}
}

func (x *ListVendorsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListVendorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendors       []*Vendor              `protobuf:"bytes,1,rep,name=vendors,proto3" json:"vendors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsResponse) Reset() {
	*x = ListVendorsResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsResponse) ProtoMessage() {}

func (x *ListVendorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsResponse.ProtoReflect.Descriptor instead.
func (*ListVendorsResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{27}
}

func (x *ListVendorsResponse) GetVendors() []*Vendor {
	if x != nil {
		return x.Vendors
	}
	return nil
}

type GetVendorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VendorId      string                 `protobuf:"bytes,1,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVendorRequest) Reset() {
	*x = GetVendorRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVendorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVendorRequest) ProtoMessage() {}

func (x *GetVendorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVendorRequest.ProtoReflect.Descriptor instead.
func (*GetVendorRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{28}
}

func (x *GetVendorRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

type GetVendorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        *Vendor                `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVendorResponse) Reset() {
	*x = GetVendorResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVendorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVendorResponse) ProtoMessage() {}

func (x *GetVendorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVendorResponse.ProtoReflect.Descriptor instead.
func (*GetVendorResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{29}
}

func (x *GetVendorResponse) GetVendor() *Vendor {
	if x != nil {
		return x.Vendor
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{30}
}

func (x *ExportInvoicesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{31}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\"\xcf\x05\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1b\n" +
	"\tvendor_id\x18\x03 \x01(\tR\bvendorId\x12\x1f\n" +
	"\vdocument_id\x18\x04 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12%\n" +
	"\x0einvoice_number\x18\x06 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\a \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\b \x01(\tR\adueDate\x12\x1a\n" +
	"\bsubtotal\x18\t \x01(\tR\bsubtotal\x12\x1d\n" +
	"\n" +
	"tax_amount\x18\n" +
	" \x01(\tR\ttaxAmount\x12!\n" +
	"\ftotal_amount\x18\v \x01(\tR\vtotalAmount\x12\x1a\n" +
	"\bcurrency\x18\f \x01(\tR\bcurrency\x12\x14\n" +
	"\x05notes\x18\r \x01(\tR\x05notes\x12\x12\n" +
	"\x04tags\x18\x0e \x03(\tR\x04tags\x12!\n" +
	"\fduplicate_of\x18\x0f \x01(\tR\vduplicateOf\x12)\n" +
	"\x10confidence_score\x18\x10 \x01(\x02R\x0fconfidenceScore\x12!\n" +
	"\fneeds_review\x18\x11 \x01(\bR\vneedsReview\x12%\n" +
	"\x0efailure_reason\x18\x12 \x01(\tR\rfailureReason\x12\x1d\n" +
	"\n" +
	"is_overdue\x18\x13 \x01(\bR\tisOverdue\x12\x17\n" +
	"\apaid_at\x18\x14 \x01(\tR\x06paidAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\x15 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x16 \x01(\tR\tupdatedAt\x12.\n" +
	"\x05items\x18\x17 \x03(\v2\x18.invoices.v1.InvoiceItemR\x05items\"\xdb\x01\n" +
	"\vInvoiceItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x01R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\tR\tunitPrice\x12\x14\n" +
	"\x05total\x18\x05 \x01(\tR\x05total\x12!\n" +
	"\fproduct_code\x18\x06 \x01(\tR\vproductCode\x12&\n" +
	"\x0funit_of_measure\x18\a \x01(\tR\runitOfMeasure\"\xd0\x02\n" +
	"\x06Vendor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12'\n" +
	"\x0fnormalized_name\x18\x04 \x01(\tR\x0enormalizedName\x12\x18\n" +
	"\aaliases\x18\x05 \x03(\tR\aaliases\x12\x18\n" +
	"\aaddress\x18\x06 \x01(\tR\aaddress\x12\x14\n" +
	"\x05email\x18\a \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\b \x01(\tR\x05phone\x12\x1d\n" +
	"\n" +
	"ai_created\x18\t \x01(\bR\taiCreated\x12#\n" +
	"\rinvoice_count\x18\n" +
	" \x01(\x05R\finvoiceCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"\xe5\x01\n" +
	"\x12ProcessingLogEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x02 \x01(\tR\tinvoiceId\x12\x14\n" +
	"\x05stage\x18\x03 \x01(\tR\x05stage\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x18\n" +
	"\amessage\x18\x05 \x01(\tR\amessage\x12\x18\n" +
	"\aattempt\x18\x06 \x01(\x05R\aattempt\x12\x1f\n" +
	"\vduration_ms\x18\a \x01(\x03R\n" +
	"durationMs\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\xd5\x01\n" +
	"\x14UploadInvoiceRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\x12\x14\n" +
	"\x05notes\x18\x05 \x01(\tR\x05notes\x12\x12\n" +
	"\x04tags\x18\x06 \x03(\tR\x04tags\x12!\n" +
	"\fauto_process\x18\a \x01(\bR\vautoProcess\"G\n" +
	"\x15UploadInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"6\n" +
	"\x15ProcessInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"\x18\n" +
	"\x16ProcessInvoiceResponse\"4\n" +
	"\x13RetryInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"F\n" +
	"\x14RetryInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"6\n" +
	"\x15ApproveInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"H\n" +
	"\x16ApproveInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"M\n" +
	"\x14RejectInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"G\n" +
	"\x15RejectInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"5\n" +
	"\x14RecordPaymentRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"G\n" +
	"\x15RecordPaymentResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"Y\n" +
	"\x17ConfirmDuplicateRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x12\x1f\n" +
	"\voriginal_id\x18\x02 \x01(\tR\n" +
	"originalId\"J\n" +
	"\x18ConfirmDuplicateResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"8\n" +
	"\x17DismissDuplicateRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"J\n" +
	"\x18DismissDuplicateResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"2\n" +
	"\x11GetInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"D\n" +
	"\x12GetInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"\xc7\x01\n" +
	"\x13ListInvoicesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tvendor_id\x18\x03 \x01(\tR\bvendorId\x12\x1b\n" +
	"\tfrom_date\x18\x04 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x05 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x06 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\a \x01(\x05R\x06offset\"H\n" +
	"\x14ListInvoicesResponse\x120\n" +
	"\binvoices\x18\x01 \x03(\v2\x14.invoices.v1.InvoiceR\binvoices\"9\n" +
	"\x18ListProcessingLogRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"V\n" +
	"\x19ListProcessingLogResponse\x129\n" +
	"\aentries\x18\x01 \x03(\v2\x1f.invoices.v1.ProcessingLogEntryR\aentries\"-\n" +
	"\x12ListVendorsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"D\n" +
	"\x13ListVendorsResponse\x12-\n" +
	"\avendors\x18\x01 \x03(\v2\x13.invoices.v1.VendorR\avendors\"/\n" +
	"\x10GetVendorRequest\x12\x1b\n" +
	"\tvendor_id\x18\x01 \x01(\tR\bvendorId\"@\n" +
	"\x11GetVendorResponse\x12+\n" +
	"\x06vendor\x18\x01 \x01(\v2\x13.invoices.v1.VendorR\x06vendor\"f\n" +
	"\x15ExportInvoicesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xee\a\n" +
	"\x0fInvoicesService\x12V\n" +
	"\rUploadInvoice\x12!.invoices.v1.UploadInvoiceRequest\x1a\".invoices.v1.UploadInvoiceResponse\x12Y\n" +
	"\x0eProcessInvoice\x12\".invoices.v1.ProcessInvoiceRequest\x1a#.invoices.v1.ProcessInvoiceResponse\x12S\n" +
	"\fRetryInvoice\x12 .invoices.v1.RetryInvoiceRequest\x1a!.invoices.v1.RetryInvoiceResponse\x12Y\n" +
	"\x0eApproveInvoice\x12\".invoices.v1.ApproveInvoiceRequest\x1a#.invoices.v1.ApproveInvoiceResponse\x12V\n" +
	"\rRejectInvoice\x12!.invoices.v1.RejectInvoiceRequest\x1a\".invoices.v1.RejectInvoiceResponse\x12V\n" +
	"\rRecordPayment\x12!.invoices.v1.RecordPaymentRequest\x1a\".invoices.v1.RecordPaymentResponse\x12_\n" +
	"\x10ConfirmDuplicate\x12$.invoices.v1.ConfirmDuplicateRequest\x1a%.invoices.v1.ConfirmDuplicateResponse\x12_\n" +
	"\x10DismissDuplicate\x12$.invoices.v1.DismissDuplicateRequest\x1a%.invoices.v1.DismissDuplicateResponse\x12M\n" +
	"\n" +
	"GetInvoice\x12\x1e.invoices.v1.GetInvoiceRequest\x1a\x1f.invoices.v1.GetInvoiceResponse\x12S\n" +
	"\fListInvoices\x12 .invoices.v1.ListInvoicesRequest\x1a!.invoices.v1.ListInvoicesResponse\x12b\n" +
	"\x11ListProcessingLog\x12%.invoices.v1.ListProcessingLogRequest\x1a&.invoices.v1.ListProcessingLogResponse2\xae\x01\n" +
	"\x0eVendorsService\x12P\n" +
	"\vListVendors\x12\x1f.invoices.v1.ListVendorsRequest\x1a .invoices.v1.ListVendorsResponse\x12J\n" +
	"\tGetVendor\x12\x1d.invoices.v1.GetVendorRequest\x1a\x1e.invoices.v1.GetVendorResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportInvoices\x12\".invoices.v1.ExportInvoicesRequest\x1a#.invoices.v1.ExportInvoicesResponseBAZ?github.com/paperpilot/invoicer/gen/proto/invoices/v1;invoicesv1b\x06proto3"

var (
	file_invoices_v1_invoices_proto_rawDescOnce sync.Once
	file_invoices_v1_invoices_proto_rawDescData []byte
)

func file_invoices_v1_invoices_proto_rawDescGZIP() []byte {
	file_invoices_v1_invoices_proto_rawDescOnce.Do(func() {
		file_invoices_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)))
	})
	return file_invoices_v1_invoices_proto_rawDescData
}

var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 32)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(*Invoice)(nil),                   // 0: invoices.v1.Invoice
	(*InvoiceItem)(nil),               // 1: invoices.v1.InvoiceItem
	(*Vendor)(nil),                    // 2: invoices.v1.Vendor
	(*ProcessingLogEntry)(nil),        // 3: invoices.v1.ProcessingLogEntry
	(*UploadInvoiceRequest)(nil),      // 4: invoices.v1.UploadInvoiceRequest
	(*UploadInvoiceResponse)(nil),     // 5: invoices.v1.UploadInvoiceResponse
	(*ProcessInvoiceRequest)(nil),     // 6: invoices.v1.ProcessInvoiceRequest
	(*ProcessInvoiceResponse)(nil),    // 7: invoices.v1.ProcessInvoiceResponse
	(*RetryInvoiceRequest)(nil),       // 8: invoices.v1.RetryInvoiceRequest
	(*RetryInvoiceResponse)(nil),      // 9: invoices.v1.RetryInvoiceResponse
	(*ApproveInvoiceRequest)(nil),     // 10: invoices.v1.ApproveInvoiceRequest
	(*ApproveInvoiceResponse)(nil),    // 11: invoices.v1.ApproveInvoiceResponse
	(*RejectInvoiceRequest)(nil),      // 12: invoices.v1.RejectInvoiceRequest
	(*RejectInvoiceResponse)(nil),     // 13: invoices.v1.RejectInvoiceResponse
	(*RecordPaymentRequest)(nil),      // 14: invoices.v1.RecordPaymentRequest
	(*RecordPaymentResponse)(nil),     // 15: invoices.v1.RecordPaymentResponse
	(*ConfirmDuplicateRequest)(nil),   // 16: invoices.v1.ConfirmDuplicateRequest
	(*ConfirmDuplicateResponse)(nil),  // 17: invoices.v1.ConfirmDuplicateResponse
	(*DismissDuplicateRequest)(nil),   // 18: invoices.v1.DismissDuplicateRequest
	(*DismissDuplicateResponse)(nil),  // 19: invoices.v1.DismissDuplicateResponse
	(*GetInvoiceRequest)(nil),         // 20: invoices.v1.GetInvoiceRequest
	(*GetInvoiceResponse)(nil),        // 21: invoices.v1.GetInvoiceResponse
	(*ListInvoicesRequest)(nil),       // 22: invoices.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),      // 23: invoices.v1.ListInvoicesResponse
	(*ListProcessingLogRequest)(nil),  // 24: invoices.v1.ListProcessingLogRequest
	(*ListProcessingLogResponse)(nil), // 25: invoices.v1.ListProcessingLogResponse
	(*ListVendorsRequest)(nil),        // 26: invoices.v1.ListVendorsRequest
	(*ListVendorsResponse)(nil),       // 27: invoices.v1.ListVendorsResponse
	(*GetVendorRequest)(nil),          // 28: invoices.v1.GetVendorRequest
	(*GetVendorResponse)(nil),         // 29: invoices.v1.GetVendorResponse
	(*ExportInvoicesRequest)(nil),     // 30: invoices.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil),    // 31: invoices.v1.ExportInvoicesResponse
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	1,  // 0: invoices.v1.Invoice.items:type_name -> invoices.v1.InvoiceItem
	0,  // 1: invoices.v1.UploadInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 2: invoices.v1.RetryInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 3: invoices.v1.ApproveInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 4: invoices.v1.RejectInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 5: invoices.v1.RecordPaymentResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 6: invoices.v1.ConfirmDuplicateResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 7: invoices.v1.DismissDuplicateResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 8: invoices.v1.GetInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 9: invoices.v1.ListInvoicesResponse.invoices:type_name -> invoices.v1.Invoice
	3,  // 10: invoices.v1.ListProcessingLogResponse.entries:type_name -> invoices.v1.ProcessingLogEntry
	2,  // 11: invoices.v1.ListVendorsResponse.vendors:type_name -> invoices.v1.Vendor
	2,  // 12: invoices.v1.GetVendorResponse.vendor:type_name -> invoices.v1.Vendor
	4,  // 13: invoices.v1.InvoicesService.UploadInvoice:input_type -> invoices.v1.UploadInvoiceRequest
	6,  // 14: invoices.v1.InvoicesService.ProcessInvoice:input_type -> invoices.v1.ProcessInvoiceRequest
	8,  // 15: invoices.v1.InvoicesService.RetryInvoice:input_type -> invoices.v1.RetryInvoiceRequest
	10, // 16: invoices.v1.InvoicesService.ApproveInvoice:input_type -> invoices.v1.ApproveInvoiceRequest
	12, // 17: invoices.v1.InvoicesService.RejectInvoice:input_type -> invoices.v1.RejectInvoiceRequest
	14, // 18: invoices.v1.InvoicesService.RecordPayment:input_type -> invoices.v1.RecordPaymentRequest
	16, // 19: invoices.v1.InvoicesService.ConfirmDuplicate:input_type -> invoices.v1.ConfirmDuplicateRequest
	18, // 20: invoices.v1.InvoicesService.DismissDuplicate:input_type -> invoices.v1.DismissDuplicateRequest
	20, // 21: invoices.v1.InvoicesService.GetInvoice:input_type -> invoices.v1.GetInvoiceRequest
	22, // 22: invoices.v1.InvoicesService.ListInvoices:input_type -> invoices.v1.ListInvoicesRequest
	24, // 23: invoices.v1.InvoicesService.ListProcessingLog:input_type -> invoices.v1.ListProcessingLogRequest
	26, // 24: invoices.v1.VendorsService.ListVendors:input_type -> invoices.v1.ListVendorsRequest
	28, // 25: invoices.v1.VendorsService.GetVendor:input_type -> invoices.v1.GetVendorRequest
	30, // 26: invoices.v1.ExportService.ExportInvoices:input_type -> invoices.v1.ExportInvoicesRequest
	5,  // 27: invoices.v1.InvoicesService.UploadInvoice:output_type -> invoices.v1.UploadInvoiceResponse
	7,  // 28: invoices.v1.InvoicesService.ProcessInvoice:output_type -> invoices.v1.ProcessInvoiceResponse
	9,  // 29: invoices.v1.InvoicesService.RetryInvoice:output_type -> invoices.v1.RetryInvoiceResponse
	11, // 30: invoices.v1.InvoicesService.ApproveInvoice:output_type -> invoices.v1.ApproveInvoiceResponse
	13, // 31: invoices.v1.InvoicesService.RejectInvoice:output_type -> invoices.v1.RejectInvoiceResponse
	15, // 32: invoices.v1.InvoicesService.RecordPayment:output_type -> invoices.v1.RecordPaymentResponse
	17, // 33: invoices.v1.InvoicesService.ConfirmDuplicate:output_type -> invoices.v1.ConfirmDuplicateResponse
	19, // 34: invoices.v1.InvoicesService.DismissDuplicate:output_type -> invoices.v1.DismissDuplicateResponse
	21, // 35: invoices.v1.InvoicesService.GetInvoice:output_type -> invoices.v1.GetInvoiceResponse
	23, // 36: invoices.v1.InvoicesService.ListInvoices:output_type -> invoices.v1.ListInvoicesResponse
	25, // 37: invoices.v1.InvoicesService.ListProcessingLog:output_type -> invoices.v1.ListProcessingLogResponse
	27, // 38: invoices.v1.VendorsService.ListVendors:output_type -> invoices.v1.ListVendorsResponse
	29, // 39: invoices.v1.VendorsService.GetVendor:output_type -> invoices.v1.GetVendorResponse
	31, // 40: invoices.v1.ExportService.ExportInvoices:output_type -> invoices.v1.ExportInvoicesResponse
	27, // [27:41] is the sub-list for method output_type
	13, // [13:27] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_invoices_v1_invoices_proto_init() }
func file_invoices_v1_invoices_proto_init() {
	if File_invoices_v1_invoices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   32,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}
