package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RepairExtractionJSON makes a best effort to turn a raw model reply into
// schema-shaped JSON without inventing data:
//   - strips markdown code fences and any prose around the outermost object
//   - coerces numeric money values to decimal strings
//   - drops null or empty optionals
//   - removes unknown keys (additionalProperties is false in the schema)
//
// It returns the cleaned bytes and the list of adjustments made.
func RepairExtractionJSON(raw []byte) ([]byte, []string, error) {
	payload := extractJSONObject(string(raw))
	if payload == "" {
		return nil, nil, fmt.Errorf("no JSON object found in model output")
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return nil, nil, fmt.Errorf("decode model output: %w", err)
	}

	var adjusted []string
	drop := func(k, why string) {
		delete(m, k)
		adjusted = append(adjusted, k+"("+why+")")
	}

	moneyFields := []string{"subtotal", "tax_amount", "total_amount"}
	for _, k := range moneyFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			drop(k, "null")
		case float64:
			m[k] = strconv.FormatFloat(t, 'f', 2, 64)
			adjusted = append(adjusted, k+"(number)")
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				drop(k, "empty")
			} else if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
				m[k] = strconv.FormatFloat(f, 'f', 2, 64)
			} else {
				drop(k, "unparseable")
			}
		default:
			drop(k, "type")
		}
	}

	stringFields := []string{
		"invoice_number", "invoice_date", "due_date", "vendor_name",
		"vendor_address", "vendor_email", "vendor_phone", "currency", "description",
	}
	for _, k := range stringFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			drop(k, "null")
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				drop(k, "empty")
			} else {
				m[k] = s
			}
		default:
			drop(k, "type")
		}
	}

	if v, ok := m["currency"].(string); ok {
		m["currency"] = strings.ToUpper(v)
	}

	if items, ok := m["items"].([]any); ok {
		m["items"] = repairItems(items, &adjusted)
	} else if _, present := m["items"]; present {
		drop("items", "type")
	}

	allowed := map[string]struct{}{
		"invoice_number": {}, "invoice_date": {}, "due_date": {},
		"vendor_name": {}, "vendor_address": {}, "vendor_email": {}, "vendor_phone": {},
		"subtotal": {}, "tax_amount": {}, "total_amount": {}, "currency": {},
		"description": {}, "items": {}, "confidence_score": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			drop(k, "unknown")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, adjusted, fmt.Errorf("encode repaired output: %w", err)
	}
	return out, adjusted, nil
}

func repairItems(items []any, adjusted *[]string) []any {
	out := make([]any, 0, len(items))
	for i, it := range items {
		im, ok := it.(map[string]any)
		if !ok {
			*adjusted = append(*adjusted, fmt.Sprintf("items[%d](type)", i))
			continue
		}
		desc, _ := im["description"].(string)
		if strings.TrimSpace(desc) == "" {
			*adjusted = append(*adjusted, fmt.Sprintf("items[%d](no description)", i))
			continue
		}
		cleaned := map[string]any{"description": strings.TrimSpace(desc)}
		switch q := im["quantity"].(type) {
		case float64:
			cleaned["quantity"] = q
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(q), 64); err == nil {
				cleaned["quantity"] = f
			}
		}
		for _, k := range []string{"unit_price", "total"} {
			switch v := im[k].(type) {
			case float64:
				cleaned[k] = strconv.FormatFloat(v, 'f', 2, 64)
			case string:
				s := strings.TrimSpace(v)
				if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
					cleaned[k] = strconv.FormatFloat(f, 'f', 2, 64)
				}
			}
		}
		for _, k := range []string{"product_code", "unit_of_measure"} {
			if s, ok := im[k].(string); ok && strings.TrimSpace(s) != "" {
				cleaned[k] = strings.TrimSpace(s)
			}
		}
		out = append(out, cleaned)
	}
	return out
}

// extractJSONObject returns the outermost {...} in s, tolerating markdown
// fences and prose before or after the object.
func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
