package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/constants"
)

// Invoice is the transfer representation used between the repository,
// pipeline, and server layers.
type Invoice struct {
	ID                  uuid.UUID                `json:"id"`
	UserID              uuid.UUID                `json:"user_id"`
	VendorID            *uuid.UUID               `json:"vendor_id,omitempty"`
	DocumentID          *uuid.UUID               `json:"document_id,omitempty"`
	Status              constants.InvoiceStatus  `json:"status"`
	InvoiceNumber       *string                  `json:"invoice_number,omitempty"`
	InvoiceDate         *time.Time               `json:"invoice_date,omitempty"`
	DueDate             *time.Time               `json:"due_date,omitempty"`
	Subtotal            *float64                 `json:"subtotal,omitempty"`
	TaxAmount           *float64                 `json:"tax_amount,omitempty"`
	TotalAmount         float64                  `json:"total_amount"`
	Currency            string                   `json:"currency"`
	Notes               *string                  `json:"notes,omitempty"`
	Tags                []string                 `json:"tags,omitempty"`
	Fingerprint         string                   `json:"fingerprint,omitempty"`
	DuplicateOf         *uuid.UUID               `json:"duplicate_of,omitempty"`
	ConfidenceScore     float32                  `json:"confidence_score"`
	NeedsReview         bool                     `json:"needs_review"`
	ExtractedData       map[string]interface{}   `json:"extracted_data,omitempty"`
	FailureReason       *string                  `json:"failure_reason,omitempty"`
	ProcessingStartedAt *time.Time               `json:"processing_started_at,omitempty"`
	LeaseExpiresAt      *time.Time               `json:"lease_expires_at,omitempty"`
	PaidAt              *time.Time               `json:"paid_at,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
	Items               []InvoiceItem            `json:"items,omitempty"`
}

// IsOverdue reports whether the invoice is past its due date and still unpaid.
func (i *Invoice) IsOverdue(now time.Time) bool {
	if i.DueDate == nil {
		return false
	}
	switch i.Status {
	case constants.StatusPaid, constants.StatusRejected, constants.StatusDuplicate:
		return false
	}
	return now.After(*i.DueDate)
}

// LeaseExpired reports whether a processing lease exists and has lapsed.
func (i *Invoice) LeaseExpired(now time.Time) bool {
	return i.LeaseExpiresAt != nil && now.After(*i.LeaseExpiresAt)
}

// InvoiceItem is one extracted line.
type InvoiceItem struct {
	ID            uuid.UUID `json:"id"`
	InvoiceID     uuid.UUID `json:"invoice_id"`
	Description   string    `json:"description"`
	Quantity      float64   `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Total         float64   `json:"total"`
	ProductCode   *string   `json:"product_code,omitempty"`
	UnitOfMeasure *string   `json:"unit_of_measure,omitempty"`
	Position      int       `json:"position"`
}
