// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paperpilot/invoicer/gen/ent/invoice"
	"github.com/paperpilot/invoicer/gen/ent/invoicedocument"
	"github.com/paperpilot/invoicer/gen/ent/invoiceitem"
	"github.com/paperpilot/invoicer/gen/ent/predicate"
	"github.com/paperpilot/invoicer/gen/ent/processinglog"
	"github.com/paperpilot/invoicer/gen/ent/vendor"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdate) SetVendorID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *InvoiceUpdate) ClearVendorID() *InvoiceUpdate {
	_u.mutation.ClearVendorID()
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *InvoiceUpdate) SetDocumentID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDocumentID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *InvoiceUpdate) ClearDocumentID() *InvoiceUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v string) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdate) ClearSubtotal() *InvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdate) SetTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdate) AddTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdate) ClearTaxAmount() *InvoiceUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdate) SetTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdate) AddTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdate) SetCurrency(v string) *InvoiceUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrency(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdate) SetNotes(v string) *InvoiceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNotes(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdate) ClearNotes() *InvoiceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetTags sets the "tags" field.
func (_u *InvoiceUpdate) SetTags(v []string) *InvoiceUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *InvoiceUpdate) AppendTags(v []string) *InvoiceUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *InvoiceUpdate) ClearTags() *InvoiceUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *InvoiceUpdate) SetFingerprint(v string) *InvoiceUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFingerprint(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (_u *InvoiceUpdate) ClearFingerprint() *InvoiceUpdate {
	_u.mutation.ClearFingerprint()
	return _u
}

// SetDuplicateOf sets the "duplicate_of" field.
func (_u *InvoiceUpdate) SetDuplicateOf(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetDuplicateOf(v)
	return _u
}

// SetNillableDuplicateOf sets the "duplicate_of" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDuplicateOf(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetDuplicateOf(*v)
	}
	return _u
}

// ClearDuplicateOf clears the value of the "duplicate_of" field.
func (_u *InvoiceUpdate) ClearDuplicateOf() *InvoiceUpdate {
	_u.mutation.ClearDuplicateOf()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InvoiceUpdate) SetConfidenceScore(v float32) *InvoiceUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableConfidenceScore(v *float32) *InvoiceUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InvoiceUpdate) AddConfidenceScore(v float32) *InvoiceUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *InvoiceUpdate) SetNeedsReview(v bool) *InvoiceUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNeedsReview(v *bool) *InvoiceUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *InvoiceUpdate) SetExtractedData(v map[string]interface{}) *InvoiceUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *InvoiceUpdate) ClearExtractedData() *InvoiceUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *InvoiceUpdate) SetFailureReason(v string) *InvoiceUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFailureReason(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *InvoiceUpdate) ClearFailureReason() *InvoiceUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *InvoiceUpdate) SetProcessingStartedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProcessingStartedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *InvoiceUpdate) ClearProcessingStartedAt() *InvoiceUpdate {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *InvoiceUpdate) SetLeaseExpiresAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableLeaseExpiresAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *InvoiceUpdate) ClearLeaseExpiresAt() *InvoiceUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *InvoiceUpdate) SetPaidAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaidAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *InvoiceUpdate) ClearPaidAt() *InvoiceUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdate) SetVendor(v *Vendor) *InvoiceUpdate {
	return _u.SetVendorID(v.ID)
}

// SetDocument sets the "document" edge to the InvoiceDocument entity.
func (_u *InvoiceUpdate) SetDocument(v *InvoiceDocument) *InvoiceUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdate) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) AddItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the ProcessingLog entity by IDs.
func (_u *InvoiceUpdate) AddLogIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ProcessingLog entity.
func (_u *InvoiceUpdate) AddLogs(v ...*ProcessingLog) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdate) ClearVendor() *InvoiceUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// ClearDocument clears the "document" edge to the InvoiceDocument entity.
func (_u *InvoiceUpdate) ClearDocument() *InvoiceUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdate) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdate) RemoveItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearLogs clears all "logs" edges to the ProcessingLog entity.
func (_u *InvoiceUpdate) ClearLogs() *InvoiceUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ProcessingLog entities by IDs.
func (_u *InvoiceUpdate) RemoveLogIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ProcessingLog entities.
func (_u *InvoiceUpdate) RemoveLogs(v ...*ProcessingLog) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := invoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(invoice.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(invoice.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(invoice.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.FingerprintCleared() {
		_spec.ClearField(invoice.FieldFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.DuplicateOf(); ok {
		_spec.SetField(invoice.FieldDuplicateOf, field.TypeUUID, value)
	}
	if _u.mutation.DuplicateOfCleared() {
		_spec.ClearField(invoice.FieldDuplicateOf, field.TypeUUID)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoice.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(invoice.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(invoice.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(invoice.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(invoice.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(invoice.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(invoice.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(invoice.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(invoice.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(invoice.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(invoice.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(invoice.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoice.DocumentTable,
			Columns: []string{invoice.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoice.DocumentTable,
			Columns: []string{invoice.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LogsTable,
			Columns: []string{invoice.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LogsTable,
			Columns: []string{invoice.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LogsTable,
			Columns: []string{invoice.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdateOne) SetVendorID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *InvoiceUpdateOne) ClearVendorID() *InvoiceUpdateOne {
	_u.mutation.ClearVendorID()
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *InvoiceUpdateOne) SetDocumentID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDocumentID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *InvoiceUpdateOne) ClearDocumentID() *InvoiceUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdateOne) ClearSubtotal() *InvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdateOne) SetTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdateOne) AddTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdateOne) ClearTaxAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdateOne) SetTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdateOne) AddTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdateOne) SetCurrency(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrency(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdateOne) SetNotes(v string) *InvoiceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNotes(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdateOne) ClearNotes() *InvoiceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetTags sets the "tags" field.
func (_u *InvoiceUpdateOne) SetTags(v []string) *InvoiceUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *InvoiceUpdateOne) AppendTags(v []string) *InvoiceUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *InvoiceUpdateOne) ClearTags() *InvoiceUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *InvoiceUpdateOne) SetFingerprint(v string) *InvoiceUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFingerprint(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (_u *InvoiceUpdateOne) ClearFingerprint() *InvoiceUpdateOne {
	_u.mutation.ClearFingerprint()
	return _u
}

// SetDuplicateOf sets the "duplicate_of" field.
func (_u *InvoiceUpdateOne) SetDuplicateOf(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetDuplicateOf(v)
	return _u
}

// SetNillableDuplicateOf sets the "duplicate_of" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDuplicateOf(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDuplicateOf(*v)
	}
	return _u
}

// ClearDuplicateOf clears the value of the "duplicate_of" field.
func (_u *InvoiceUpdateOne) ClearDuplicateOf() *InvoiceUpdateOne {
	_u.mutation.ClearDuplicateOf()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InvoiceUpdateOne) SetConfidenceScore(v float32) *InvoiceUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableConfidenceScore(v *float32) *InvoiceUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InvoiceUpdateOne) AddConfidenceScore(v float32) *InvoiceUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *InvoiceUpdateOne) SetNeedsReview(v bool) *InvoiceUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNeedsReview(v *bool) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *InvoiceUpdateOne) SetExtractedData(v map[string]interface{}) *InvoiceUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *InvoiceUpdateOne) ClearExtractedData() *InvoiceUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *InvoiceUpdateOne) SetFailureReason(v string) *InvoiceUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFailureReason(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *InvoiceUpdateOne) ClearFailureReason() *InvoiceUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *InvoiceUpdateOne) SetProcessingStartedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProcessingStartedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *InvoiceUpdateOne) ClearProcessingStartedAt() *InvoiceUpdateOne {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *InvoiceUpdateOne) SetLeaseExpiresAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *InvoiceUpdateOne) ClearLeaseExpiresAt() *InvoiceUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *InvoiceUpdateOne) SetPaidAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaidAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *InvoiceUpdateOne) ClearPaidAt() *InvoiceUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdateOne) SetVendor(v *Vendor) *InvoiceUpdateOne {
	return _u.SetVendorID(v.ID)
}

// SetDocument sets the "document" edge to the InvoiceDocument entity.
func (_u *InvoiceUpdateOne) SetDocument(v *InvoiceDocument) *InvoiceUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdateOne) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) AddItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the ProcessingLog entity by IDs.
func (_u *InvoiceUpdateOne) AddLogIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ProcessingLog entity.
func (_u *InvoiceUpdateOne) AddLogs(v ...*ProcessingLog) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *InvoiceUpdateOne) ClearVendor() *InvoiceUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// ClearDocument clears the "document" edge to the InvoiceDocument entity.
func (_u *InvoiceUpdateOne) ClearDocument() *InvoiceUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdateOne) RemoveItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearLogs clears all "logs" edges to the ProcessingLog entity.
func (_u *InvoiceUpdateOne) ClearLogs() *InvoiceUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ProcessingLog entities by IDs.
func (_u *InvoiceUpdateOne) RemoveLogIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ProcessingLog entities.
func (_u *InvoiceUpdateOne) RemoveLogs(v ...*ProcessingLog) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := invoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(invoice.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(invoice.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(invoice.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.FingerprintCleared() {
		_spec.ClearField(invoice.FieldFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.DuplicateOf(); ok {
		_spec.SetField(invoice.FieldDuplicateOf, field.TypeUUID, value)
	}
	if _u.mutation.DuplicateOfCleared() {
		_spec.ClearField(invoice.FieldDuplicateOf, field.TypeUUID)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoice.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(invoice.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(invoice.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(invoice.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(invoice.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(invoice.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(invoice.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(invoice.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(invoice.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(invoice.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(invoice.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(invoice.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.VendorTable,
			Columns: []string{invoice.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoice.DocumentTable,
			Columns: []string{invoice.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   invoice.DocumentTable,
			Columns: []string{invoice.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicedocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LogsTable,
			Columns: []string{invoice.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LogsTable,
			Columns: []string{invoice.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LogsTable,
			Columns: []string{invoice.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
