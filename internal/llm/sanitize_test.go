package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairExtractionJSON_StripsFencesAndProse(t *testing.T) {
	raw := "Here is the extracted data:\n```json\n{\"vendor_name\": \"Acme Corp\", \"total_amount\": \"120.00\"}\n```\nLet me know if you need more."
	out, _, err := RepairExtractionJSON([]byte(raw))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "Acme Corp", m["vendor_name"])
	assert.Equal(t, "120.00", m["total_amount"])
}

func TestRepairExtractionJSON_CoercesNumericMoney(t *testing.T) {
	raw := `{"total_amount": 1234.5, "subtotal": "1,100.00", "tax_amount": 134.5}`
	out, adjusted, err := RepairExtractionJSON([]byte(raw))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "1234.50", m["total_amount"])
	assert.Equal(t, "1100.00", m["subtotal"])
	assert.Equal(t, "134.50", m["tax_amount"])
	assert.Contains(t, adjusted, "total_amount(number)")
}

func TestRepairExtractionJSON_DropsNullsAndUnknownKeys(t *testing.T) {
	raw := `{"vendor_name": null, "invoice_number": "  ", "total_amount": "50.00", "made_up_field": 1}`
	out, _, err := RepairExtractionJSON([]byte(raw))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "vendor_name")
	assert.NotContains(t, m, "invoice_number")
	assert.NotContains(t, m, "made_up_field")
	assert.Equal(t, "50.00", m["total_amount"])
}

func TestRepairExtractionJSON_UppercasesCurrency(t *testing.T) {
	out, _, err := RepairExtractionJSON([]byte(`{"currency": "usd", "total_amount": "9.99"}`))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "USD", m["currency"])
}

func TestRepairExtractionJSON_RepairsItems(t *testing.T) {
	raw := `{"total_amount": "30.00", "items": [
		{"description": " Widget ", "quantity": "3", "unit_price": 10, "total": "30"},
		{"quantity": 1, "unit_price": "5.00", "total": "5.00"},
		"not an item"
	]}`
	out, adjusted, err := RepairExtractionJSON([]byte(raw))
	require.NoError(t, err)

	var m struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(out, &m))
	require.Len(t, m.Items, 1)
	assert.Equal(t, "Widget", m.Items[0]["description"])
	assert.Equal(t, float64(3), m.Items[0]["quantity"])
	assert.Equal(t, "10.00", m.Items[0]["unit_price"])
	assert.Equal(t, "30.00", m.Items[0]["total"])
	assert.Contains(t, adjusted, "items[1](no description)")
	assert.Contains(t, adjusted, "items[2](type)")
}

func TestRepairExtractionJSON_NoObjectFails(t *testing.T) {
	_, _, err := RepairExtractionJSON([]byte("I could not read the invoice, sorry."))
	require.Error(t, err)
}
