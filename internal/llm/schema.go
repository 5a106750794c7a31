package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It constrains shape only; required-field policy belongs to
// the validation stage, which enumerates violations instead of rejecting
// the whole payload.
func BuildInvoiceJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description":     map[string]any{"type": "string", "minLength": 1},
			"quantity":        map[string]any{"type": "number", "minimum": 0},
			"unit_price":      decimalProp(),
			"total":           decimalProp(),
			"product_code":    map[string]any{"type": "string"},
			"unit_of_measure": map[string]any{"type": "string"},
		},
		"required": []string{"description"},
	}

	props := map[string]any{
		"invoice_number": map[string]any{"type": "string"},
		"invoice_date":   dateProp(),
		"due_date":       dateProp(),
		"vendor_name":    map[string]any{"type": "string"},
		"vendor_address": map[string]any{"type": "string"},
		"vendor_email":   map[string]any{"type": "string"},
		"vendor_phone":   map[string]any{"type": "string"},
		"subtotal":       decimalProp(),
		"tax_amount":     decimalProp(),
		"total_amount":   decimalProp(),
		"currency":       map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"description":    map[string]any{"type": "string"},
		"items":          map[string]any{"type": "array", "items": item},
		"confidence_score": map[string]any{
			"type": "number", "minimum": 0.0, "maximum": 1.0,
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}
