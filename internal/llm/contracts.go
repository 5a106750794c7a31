package llm

import (
	"context"
	"encoding/json"
	"time"
)

// LineItem is one extracted invoice line.
type LineItem struct {
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     string  `json:"unit_price"` // decimal
	Total         string  `json:"total"`      // decimal
	ProductCode   string  `json:"product_code,omitempty"`
	UnitOfMeasure string  `json:"unit_of_measure,omitempty"` // pcs, kg, hours
}

// InvoiceFields is the shape we ask the model for. It is untrusted until it
// passes validation; nothing here lands on the durable invoice directly.
type InvoiceFields struct {
	InvoiceNumber string `json:"invoice_number,omitempty"`
	InvoiceDate   string `json:"invoice_date,omitempty"` // YYYY-MM-DD
	DueDate       string `json:"due_date,omitempty"`     // YYYY-MM-DD
	VendorName    string `json:"vendor_name,omitempty"`
	VendorAddress string `json:"vendor_address,omitempty"`
	VendorEmail   string `json:"vendor_email,omitempty"`
	VendorPhone   string `json:"vendor_phone,omitempty"`
	Subtotal      string `json:"subtotal,omitempty"`     // decimal
	TaxAmount     string `json:"tax_amount,omitempty"`   // decimal
	TotalAmount   string `json:"total_amount,omitempty"` // decimal
	Currency      string `json:"currency,omitempty"`     // ISO 4217
	Description   string `json:"description,omitempty"`

	Items []LineItem `json:"items,omitempty"`

	ModelConfidence float32 `json:"confidence_score,omitempty"` // 0..1
}

// ExtractRequest carries the document text and matching context to the model.
type ExtractRequest struct {
	DocumentText string
	FilenameHint string
	// KnownVendors are the user's existing vendor names, passed so the model
	// prefers an exact spelling it has seen before.
	KnownVendors    []string
	DefaultCurrency string
}

// RetryRecord is one transient transport failure that was retried with
// backoff during an extraction call.
type RetryRecord struct {
	Attempt int
	Backoff time.Duration
	Reason  string
}

// ExtractResult is a candidate record plus audit material. Two identical
// requests may yield different field values; idempotence is enforced later
// by the duplicate detector, never assumed here.
type ExtractResult struct {
	Fields     InvoiceFields
	Raw        json.RawMessage // model output kept for audit
	Confidence float32         // model confidence net of penalties
	Truncated  bool            // input exceeded the configured budget
	Retries    []RetryRecord   // transient failures retried along the way

	PromptTokens     int
	CompletionTokens int
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	ExtractInvoice(ctx context.Context, req ExtractRequest) (ExtractResult, error)
}
