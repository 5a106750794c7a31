package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONAgainstSchema_Accepts(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	payload := []byte(`{
		"invoice_number": "INV-2024-001",
		"invoice_date": "2024-03-01",
		"due_date": "2024-03-31",
		"vendor_name": "Acme Corp",
		"subtotal": "100.00",
		"tax_amount": "20.00",
		"total_amount": "120.00",
		"currency": "USD",
		"items": [
			{"description": "Widget", "quantity": 2, "unit_price": "50.00", "total": "100.00"}
		],
		"confidence_score": 0.92
	}`)
	require.NoError(t, ValidateJSONAgainstSchema(schema, payload))
}

func TestValidateJSONAgainstSchema_RejectsBadShapes(t *testing.T) {
	schema := BuildInvoiceJSONSchema()

	cases := map[string]string{
		"numeric money":     `{"total_amount": 120.0}`,
		"bad date":          `{"invoice_date": "03/01/2024"}`,
		"bad currency":      `{"currency": "dollars"}`,
		"unknown property":  `{"surprise": true}`,
		"confidence range":  `{"confidence_score": 1.5}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(payload)))
		})
	}
}
