// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/paperpilot/invoicer/db/ent/schema"
	"github.com/paperpilot/invoicer/gen/ent/invoice"
	"github.com/paperpilot/invoicer/gen/ent/invoicedocument"
	"github.com/paperpilot/invoicer/gen/ent/invoiceitem"
	"github.com/paperpilot/invoicer/gen/ent/processinglog"
	"github.com/paperpilot/invoicer/gen/ent/vendor"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[4].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescTotalAmount is the schema descriptor for total_amount field.
	invoiceDescTotalAmount := invoiceFields[10].Descriptor()
	// invoice.DefaultTotalAmount holds the default value on creation for the total_amount field.
	invoice.DefaultTotalAmount = invoiceDescTotalAmount.Default.(float64)
	// invoiceDescCurrency is the schema descriptor for currency field.
	invoiceDescCurrency := invoiceFields[11].Descriptor()
	// invoice.DefaultCurrency holds the default value on creation for the currency field.
	invoice.DefaultCurrency = invoiceDescCurrency.Default.(string)
	// invoice.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	invoice.CurrencyValidator = invoiceDescCurrency.Validators[0].(func(string) error)
	// invoiceDescConfidenceScore is the schema descriptor for confidence_score field.
	invoiceDescConfidenceScore := invoiceFields[16].Descriptor()
	// invoice.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	invoice.DefaultConfidenceScore = invoiceDescConfidenceScore.Default.(float32)
	// invoiceDescNeedsReview is the schema descriptor for needs_review field.
	invoiceDescNeedsReview := invoiceFields[17].Descriptor()
	// invoice.DefaultNeedsReview holds the default value on creation for the needs_review field.
	invoice.DefaultNeedsReview = invoiceDescNeedsReview.Default.(bool)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[23].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[24].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicedocumentFields := schema.InvoiceDocument{}.Fields()
	_ = invoicedocumentFields
	// invoicedocumentDescFilename is the schema descriptor for filename field.
	invoicedocumentDescFilename := invoicedocumentFields[2].Descriptor()
	// invoicedocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoicedocument.FilenameValidator = invoicedocumentDescFilename.Validators[0].(func(string) error)
	// invoicedocumentDescMimeType is the schema descriptor for mime_type field.
	invoicedocumentDescMimeType := invoicedocumentFields[3].Descriptor()
	// invoicedocument.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	invoicedocument.MimeTypeValidator = invoicedocumentDescMimeType.Validators[0].(func(string) error)
	// invoicedocumentDescByteSize is the schema descriptor for byte_size field.
	invoicedocumentDescByteSize := invoicedocumentFields[4].Descriptor()
	// invoicedocument.ByteSizeValidator is a validator for the "byte_size" field. It is called by the builders before save.
	invoicedocument.ByteSizeValidator = invoicedocumentDescByteSize.Validators[0].(func(int) error)
	// invoicedocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	invoicedocumentDescUploadedAt := invoicedocumentFields[6].Descriptor()
	// invoicedocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	invoicedocument.DefaultUploadedAt = invoicedocumentDescUploadedAt.Default.(func() time.Time)
	// invoicedocumentDescID is the schema descriptor for id field.
	invoicedocumentDescID := invoicedocumentFields[0].Descriptor()
	// invoicedocument.DefaultID holds the default value on creation for the id field.
	invoicedocument.DefaultID = invoicedocumentDescID.Default.(func() uuid.UUID)
	invoiceitemFields := schema.InvoiceItem{}.Fields()
	_ = invoiceitemFields
	// invoiceitemDescDescription is the schema descriptor for description field.
	invoiceitemDescDescription := invoiceitemFields[2].Descriptor()
	// invoiceitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoiceitem.DescriptionValidator = invoiceitemDescDescription.Validators[0].(func(string) error)
	// invoiceitemDescQuantity is the schema descriptor for quantity field.
	invoiceitemDescQuantity := invoiceitemFields[3].Descriptor()
	// invoiceitem.DefaultQuantity holds the default value on creation for the quantity field.
	invoiceitem.DefaultQuantity = invoiceitemDescQuantity.Default.(float64)
	// invoiceitemDescUnitPrice is the schema descriptor for unit_price field.
	invoiceitemDescUnitPrice := invoiceitemFields[4].Descriptor()
	// invoiceitem.DefaultUnitPrice holds the default value on creation for the unit_price field.
	invoiceitem.DefaultUnitPrice = invoiceitemDescUnitPrice.Default.(float64)
	// invoiceitemDescTotal is the schema descriptor for total field.
	invoiceitemDescTotal := invoiceitemFields[5].Descriptor()
	// invoiceitem.DefaultTotal holds the default value on creation for the total field.
	invoiceitem.DefaultTotal = invoiceitemDescTotal.Default.(float64)
	// invoiceitemDescPosition is the schema descriptor for position field.
	invoiceitemDescPosition := invoiceitemFields[8].Descriptor()
	// invoiceitem.DefaultPosition holds the default value on creation for the position field.
	invoiceitem.DefaultPosition = invoiceitemDescPosition.Default.(int)
	// invoiceitemDescID is the schema descriptor for id field.
	invoiceitemDescID := invoiceitemFields[0].Descriptor()
	// invoiceitem.DefaultID holds the default value on creation for the id field.
	invoiceitem.DefaultID = invoiceitemDescID.Default.(func() uuid.UUID)
	processinglogFields := schema.ProcessingLog{}.Fields()
	_ = processinglogFields
	// processinglogDescStage is the schema descriptor for stage field.
	processinglogDescStage := processinglogFields[2].Descriptor()
	// processinglog.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	processinglog.StageValidator = processinglogDescStage.Validators[0].(func(string) error)
	// processinglogDescStatus is the schema descriptor for status field.
	processinglogDescStatus := processinglogFields[3].Descriptor()
	// processinglog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processinglog.StatusValidator = processinglogDescStatus.Validators[0].(func(string) error)
	// processinglogDescAttempt is the schema descriptor for attempt field.
	processinglogDescAttempt := processinglogFields[5].Descriptor()
	// processinglog.DefaultAttempt holds the default value on creation for the attempt field.
	processinglog.DefaultAttempt = processinglogDescAttempt.Default.(int)
	// processinglogDescDurationMs is the schema descriptor for duration_ms field.
	processinglogDescDurationMs := processinglogFields[6].Descriptor()
	// processinglog.DefaultDurationMs holds the default value on creation for the duration_ms field.
	processinglog.DefaultDurationMs = processinglogDescDurationMs.Default.(int64)
	// processinglogDescCreatedAt is the schema descriptor for created_at field.
	processinglogDescCreatedAt := processinglogFields[8].Descriptor()
	// processinglog.DefaultCreatedAt holds the default value on creation for the created_at field.
	processinglog.DefaultCreatedAt = processinglogDescCreatedAt.Default.(func() time.Time)
	// processinglogDescID is the schema descriptor for id field.
	processinglogDescID := processinglogFields[0].Descriptor()
	// processinglog.DefaultID holds the default value on creation for the id field.
	processinglog.DefaultID = processinglogDescID.Default.(func() uuid.UUID)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescName is the schema descriptor for name field.
	vendorDescName := vendorFields[2].Descriptor()
	// vendor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vendor.NameValidator = vendorDescName.Validators[0].(func(string) error)
	// vendorDescNormalizedName is the schema descriptor for normalized_name field.
	vendorDescNormalizedName := vendorFields[3].Descriptor()
	// vendor.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	vendor.NormalizedNameValidator = vendorDescNormalizedName.Validators[0].(func(string) error)
	// vendorDescAiCreated is the schema descriptor for ai_created field.
	vendorDescAiCreated := vendorFields[8].Descriptor()
	// vendor.DefaultAiCreated holds the default value on creation for the ai_created field.
	vendor.DefaultAiCreated = vendorDescAiCreated.Default.(bool)
	// vendorDescConfidenceScore is the schema descriptor for confidence_score field.
	vendorDescConfidenceScore := vendorFields[9].Descriptor()
	// vendor.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	vendor.DefaultConfidenceScore = vendorDescConfidenceScore.Default.(float32)
	// vendorDescCreatedAt is the schema descriptor for created_at field.
	vendorDescCreatedAt := vendorFields[10].Descriptor()
	// vendor.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendor.DefaultCreatedAt = vendorDescCreatedAt.Default.(func() time.Time)
	// vendorDescUpdatedAt is the schema descriptor for updated_at field.
	vendorDescUpdatedAt := vendorFields[11].Descriptor()
	// vendor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendor.DefaultUpdatedAt = vendorDescUpdatedAt.Default.(func() time.Time)
	// vendor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendor.UpdateDefaultUpdatedAt = vendorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendorDescID is the schema descriptor for id field.
	vendorDescID := vendorFields[0].Descriptor()
	// vendor.DefaultID holds the default value on creation for the id field.
	vendor.DefaultID = vendorDescID.Default.(func() uuid.UUID)
}
