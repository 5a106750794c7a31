package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpilot/invoicer/internal/llm"
)

func newValidator() *Validator {
	return NewValidator(Config{
		AmountTolerance:  0.01,
		ViolationPenalty: 0.05,
		DefaultCurrency:  "USD",
	})
}

func validFields() llm.InvoiceFields {
	return llm.InvoiceFields{
		InvoiceNumber: "INV-100",
		InvoiceDate:   "2024-01-05",
		DueDate:       "2024-02-05",
		VendorName:    "Acme Corp",
		Subtotal:      "90.00",
		TaxAmount:     "10.00",
		TotalAmount:   "100.00",
		Currency:      "usd",
		Items: []llm.LineItem{
			{Description: "Widget", Quantity: 2, UnitPrice: "25.00", Total: "50.00"},
			{Description: "Gadget", Quantity: 1, UnitPrice: "40.00", Total: "40.00"},
		},
	}
}

func TestValidate_CleanCandidate(t *testing.T) {
	inv, verr := newValidator().Validate(validFields(), 0.9)
	require.Nil(t, verr)

	assert.Equal(t, "INV-100", inv.InvoiceNumber)
	assert.Equal(t, 100.00, inv.TotalAmount)
	require.NotNil(t, inv.Subtotal)
	assert.Equal(t, 90.00, *inv.Subtotal)
	require.NotNil(t, inv.TaxAmount)
	assert.Equal(t, 10.00, *inv.TaxAmount)
	assert.Equal(t, "USD", inv.Currency, "currency is upcased")
	require.NotNil(t, inv.IssueDate)
	require.NotNil(t, inv.DueDate)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, 50.00, inv.Items[0].LineTotal)
	assert.Equal(t, float32(0.9), inv.Confidence)
}

func TestValidate_MissingTotalIsFatal(t *testing.T) {
	fields := validFields()
	fields.TotalAmount = ""

	_, verr := newValidator().Validate(fields, 0.9)
	require.NotNil(t, verr)
	assert.True(t, verr.Fatal())

	found := false
	for _, v := range verr.Violations {
		if v.Field == "total_amount" && v.Rule == "required" {
			found = true
			assert.True(t, v.Fatal)
		}
	}
	assert.True(t, found, "missing total must be reported as the violated rule")
}

func TestValidate_EnumeratesEveryViolation(t *testing.T) {
	fields := llm.InvoiceFields{
		TotalAmount: "",           // fatal: required
		Subtotal:    "-5",         // non_negative
		TaxAmount:   "abc",        // numeric
		InvoiceDate: "05/01/2024", // date_format
		DueDate:     "2024-13-99", // date_format
		Currency:    "DOLLARS",    // iso4217
	}

	_, verr := newValidator().Validate(fields, 0.9)
	require.NotNil(t, verr)
	assert.True(t, verr.Fatal())

	rules := map[string]bool{}
	for _, v := range verr.Violations {
		rules[v.Field+"/"+v.Rule] = true
	}
	for _, want := range []string{
		"total_amount/required",
		"subtotal/non_negative",
		"tax_amount/numeric",
		"invoice_date/date_format",
		"due_date/date_format",
		"currency/iso4217",
	} {
		assert.True(t, rules[want], "expected violation %s, got %v", want, rules)
	}
}

func TestValidate_SoftViolationsReduceConfidenceNotFatal(t *testing.T) {
	fields := validFields()
	fields.Subtotal = "80.00" // items sum to 90, subtotal+tax != total either

	inv, verr := newValidator().Validate(fields, 0.9)
	require.NotNil(t, verr)
	assert.False(t, verr.Fatal(), "arithmetic drift is a degraded outcome, not a hard failure")
	assert.Len(t, verr.Violations, 2)
	assert.InDelta(t, 0.80, float64(inv.Confidence), 1e-6, "two soft violations cost two penalties")
	assert.Equal(t, 100.00, inv.TotalAmount, "normalized fields still come back for persistence")
}

func TestValidate_IssueAfterDueDate(t *testing.T) {
	fields := validFields()
	fields.InvoiceDate = "2024-03-01"
	fields.DueDate = "2024-02-01"

	_, verr := newValidator().Validate(fields, 0.9)
	require.NotNil(t, verr)
	assert.False(t, verr.Fatal())
	assert.Equal(t, "ordering", verr.Violations[0].Rule)
}

func TestValidate_MissingInvoiceNumberIsAllowed(t *testing.T) {
	fields := validFields()
	fields.InvoiceNumber = ""

	inv, verr := newValidator().Validate(fields, 0.9)
	assert.Nil(t, verr, "invoice number may be absent; duplicate detection handles it")
	assert.Empty(t, inv.InvoiceNumber)
}

func TestValidate_LineArithmeticRecomputed(t *testing.T) {
	fields := validFields()
	fields.Subtotal = ""
	fields.TaxAmount = ""
	fields.Items = []llm.LineItem{
		{Description: "Widget", Quantity: 3, UnitPrice: "10.00", Total: "35.00"},
	}

	inv, verr := newValidator().Validate(fields, 0.9)
	require.NotNil(t, verr)
	assert.False(t, verr.Fatal())
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 30.00, inv.Items[0].LineTotal, "line total recomputed from quantity times price")
}

func TestValidate_ItemWithoutDescriptionDropped(t *testing.T) {
	fields := validFields()
	fields.Subtotal = ""
	fields.TaxAmount = ""
	fields.Items = []llm.LineItem{
		{Description: "  ", Quantity: 1, UnitPrice: "5.00", Total: "5.00"},
		{Description: "Kept", Quantity: 1, UnitPrice: "5.00", Total: "5.00"},
	}

	inv, verr := newValidator().Validate(fields, 0.9)
	require.NotNil(t, verr)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Kept", inv.Items[0].Description)
}

func TestValidate_ConfidenceNeverNegative(t *testing.T) {
	fields := llm.InvoiceFields{TotalAmount: "10.00", InvoiceDate: "bad", DueDate: "bad", Currency: "X"}
	inv, verr := newValidator().Validate(fields, 0.05)
	require.NotNil(t, verr)
	assert.GreaterOrEqual(t, inv.Confidence, float32(0))
}
