package utils

import (
	"fmt"
	"time"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/gen/ent"
	invoicespb "github.com/paperpilot/invoicer/gen/proto/invoices/v1"
	"github.com/paperpilot/invoicer/internal/entity"
)

// ToInvoice maps an Ent row to the transfer struct. Loaded item edges are
// carried over; absent edges leave Items nil.
func ToInvoice(row *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:                  row.ID,
		UserID:              row.UserID,
		VendorID:            row.VendorID,
		DocumentID:          row.DocumentID,
		Status:              constants.InvoiceStatus(row.Status),
		InvoiceNumber:       row.InvoiceNumber,
		InvoiceDate:         row.InvoiceDate,
		DueDate:             row.DueDate,
		Subtotal:            row.Subtotal,
		TaxAmount:           row.TaxAmount,
		TotalAmount:         row.TotalAmount,
		Currency:            row.Currency,
		Notes:               row.Notes,
		Tags:                row.Tags,
		Fingerprint:         row.Fingerprint,
		DuplicateOf:         row.DuplicateOf,
		ConfidenceScore:     row.ConfidenceScore,
		NeedsReview:         row.NeedsReview,
		ExtractedData:       row.ExtractedData,
		FailureReason:       row.FailureReason,
		ProcessingStartedAt: row.ProcessingStartedAt,
		LeaseExpiresAt:      row.LeaseExpiresAt,
		PaidAt:              row.PaidAt,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
	if items, err := row.Edges.ItemsOrErr(); err == nil {
		inv.Items = make([]entity.InvoiceItem, len(items))
		for i, it := range items {
			inv.Items[i] = *ToInvoiceItem(it)
		}
	}
	return inv
}

func ToInvoiceItem(row *ent.InvoiceItem) *entity.InvoiceItem {
	return &entity.InvoiceItem{
		ID:            row.ID,
		InvoiceID:     row.InvoiceID,
		Description:   row.Description,
		Quantity:      row.Quantity,
		UnitPrice:     row.UnitPrice,
		Total:         row.Total,
		ProductCode:   row.ProductCode,
		UnitOfMeasure: row.UnitOfMeasure,
		Position:      row.Position,
	}
}

func ToVendor(row *ent.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:              row.ID,
		UserID:          row.UserID,
		Name:            row.Name,
		NormalizedName:  row.NormalizedName,
		Aliases:         row.Aliases,
		Address:         row.Address,
		Email:           row.Email,
		Phone:           row.Phone,
		AICreated:       row.AiCreated,
		ConfidenceScore: row.ConfidenceScore,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func ToDocument(row *ent.InvoiceDocument) *entity.Document {
	return &entity.Document{
		ID:         row.ID,
		UserID:     row.UserID,
		Filename:   row.Filename,
		MIMEType:   row.MimeType,
		ByteSize:   row.ByteSize,
		UploadedAt: row.UploadedAt,
	}
}

func ToLogEntry(row *ent.ProcessingLog) *entity.LogEntry {
	return &entity.LogEntry{
		ID:         row.ID,
		InvoiceID:  row.InvoiceID,
		Stage:      constants.Stage(row.Stage),
		Status:     constants.LogStatus(row.Status),
		Message:    row.Message,
		Attempt:    row.Attempt,
		DurationMS: row.DurationMs,
		Details:    row.Details,
		CreatedAt:  row.CreatedAt,
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBInvoice(inv *entity.Invoice) *invoicespb.Invoice {
	pb := &invoicespb.Invoice{
		Id:              inv.ID.String(),
		UserId:          inv.UserID.String(),
		Status:          string(inv.Status),
		InvoiceNumber:   strOrEmpty(inv.InvoiceNumber),
		TotalAmount:     fmt.Sprintf("%.2f", inv.TotalAmount),
		Currency:        inv.Currency,
		Notes:           strOrEmpty(inv.Notes),
		Tags:            inv.Tags,
		ConfidenceScore: inv.ConfidenceScore,
		NeedsReview:     inv.NeedsReview,
		FailureReason:   strOrEmpty(inv.FailureReason),
		IsOverdue:       inv.IsOverdue(time.Now().UTC()),
		CreatedAt:       inv.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       inv.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if inv.VendorID != nil {
		pb.VendorId = inv.VendorID.String()
	}
	if inv.DocumentID != nil {
		pb.DocumentId = inv.DocumentID.String()
	}
	if inv.InvoiceDate != nil {
		pb.InvoiceDate = inv.InvoiceDate.Format("2006-01-02")
	}
	if inv.DueDate != nil {
		pb.DueDate = inv.DueDate.Format("2006-01-02")
	}
	if inv.Subtotal != nil {
		pb.Subtotal = fmt.Sprintf("%.2f", *inv.Subtotal)
	}
	if inv.TaxAmount != nil {
		pb.TaxAmount = fmt.Sprintf("%.2f", *inv.TaxAmount)
	}
	if inv.DuplicateOf != nil {
		pb.DuplicateOf = inv.DuplicateOf.String()
	}
	if inv.PaidAt != nil {
		pb.PaidAt = inv.PaidAt.UTC().Format(time.RFC3339)
	}
	for _, item := range inv.Items {
		pb.Items = append(pb.Items, &invoicespb.InvoiceItem{
			Id:            item.ID.String(),
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     fmt.Sprintf("%.2f", item.UnitPrice),
			Total:         fmt.Sprintf("%.2f", item.Total),
			ProductCode:   strOrEmpty(item.ProductCode),
			UnitOfMeasure: strOrEmpty(item.UnitOfMeasure),
		})
	}
	return pb
}

func ToPBVendor(v *entity.Vendor) *invoicespb.Vendor {
	return &invoicespb.Vendor{
		Id:             v.ID.String(),
		UserId:         v.UserID.String(),
		Name:           v.Name,
		NormalizedName: v.NormalizedName,
		Aliases:        v.Aliases,
		Address:        strOrEmpty(v.Address),
		Email:          strOrEmpty(v.Email),
		Phone:          strOrEmpty(v.Phone),
		AiCreated:      v.AICreated,
		InvoiceCount:   int32(v.InvoiceCount),
		CreatedAt:      v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBLogEntry(e *entity.LogEntry) *invoicespb.ProcessingLogEntry {
	return &invoicespb.ProcessingLogEntry{
		Id:         e.ID.String(),
		InvoiceId:  e.InvoiceID.String(),
		Stage:      string(e.Stage),
		Status:     string(e.Status),
		Message:    e.Message,
		Attempt:    int32(e.Attempt),
		DurationMs: e.DurationMS,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
