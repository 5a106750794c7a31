package validation

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/llm"
)

// Item is a normalized invoice line.
type Item struct {
	Description   string
	Quantity      float64
	UnitPrice     float64
	LineTotal     float64
	ProductCode   string
	UnitOfMeasure string
}

// NormalizedInvoice is the finalized field set a candidate becomes once it
// passes validation. Only this shape reaches the durable invoice.
type NormalizedInvoice struct {
	InvoiceNumber string
	IssueDate     *time.Time
	DueDate       *time.Time
	Currency      string
	Subtotal      *float64
	TaxAmount     *float64
	TotalAmount   float64
	Notes         string
	Items         []Item
	Confidence    float32
}

// Config holds validation policy.
type Config struct {
	AmountTolerance  float64 // currency units for sum checks
	ViolationPenalty float32 // confidence cost per soft violation
	DefaultCurrency  string
}

type Validator struct {
	cfg Config
}

func NewValidator(cfg Config) *Validator {
	if cfg.AmountTolerance <= 0 {
		cfg.AmountTolerance = 0.01
	}
	if cfg.ViolationPenalty <= 0 {
		cfg.ViolationPenalty = 0.05
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "USD"
	}
	return &Validator{cfg: cfg}
}

// Validate checks and normalizes an extraction candidate. It is a pure
// function over its inputs: persistence is the caller's responsibility.
// Every violated rule is collected, never just the first. A returned
// *common.ValidationError with Fatal() true means the invoice cannot
// advance; soft violations only reduce confidence.
func (v *Validator) Validate(fields llm.InvoiceFields, baseConfidence float32) (NormalizedInvoice, *common.ValidationError) {
	var violations []common.RuleViolation
	addViolation := func(field, rule, msg string, fatal bool) {
		violations = append(violations, common.RuleViolation{
			Field: field, Rule: rule, Message: msg, Fatal: fatal,
		})
	}

	out := NormalizedInvoice{
		InvoiceNumber: strings.TrimSpace(fields.InvoiceNumber),
		Notes:         strings.TrimSpace(fields.Description),
	}

	// total amount: absence or unusability is always fatal
	if total, ok := parseAmount(fields.TotalAmount); !ok {
		addViolation("total_amount", "required", "total amount is missing or unparseable", true)
	} else if total < 0 {
		addViolation("total_amount", "non_negative", "total amount is negative", true)
	} else {
		out.TotalAmount = total
	}

	out.Subtotal = v.optionalAmount("subtotal", fields.Subtotal, addViolation)
	out.TaxAmount = v.optionalAmount("tax_amount", fields.TaxAmount, addViolation)

	out.IssueDate = parseDate("invoice_date", fields.InvoiceDate, addViolation)
	out.DueDate = parseDate("due_date", fields.DueDate, addViolation)
	if out.IssueDate != nil && out.DueDate != nil && out.IssueDate.After(*out.DueDate) {
		addViolation("due_date", "ordering", "issue date is after due date", false)
	}

	out.Currency = strings.ToUpper(strings.TrimSpace(fields.Currency))
	if out.Currency == "" {
		out.Currency = v.cfg.DefaultCurrency
	} else if len(out.Currency) != 3 {
		addViolation("currency", "iso4217", "currency is not a 3-letter code", false)
		out.Currency = v.cfg.DefaultCurrency
	}

	out.Items = v.normalizeItems(fields.Items, addViolation)

	// line items must sum to the subtotal within tolerance
	if out.Subtotal != nil && len(out.Items) > 0 {
		sum := 0.0
		for _, it := range out.Items {
			sum += it.LineTotal
		}
		if math.Abs(sum-*out.Subtotal) > v.cfg.AmountTolerance {
			addViolation("items", "sum_subtotal",
				"line item totals do not sum to subtotal within tolerance", false)
		}
	}

	// subtotal + tax must approximate total within tolerance
	if out.Subtotal != nil && out.TaxAmount != nil && !hasFatal(violations) {
		if math.Abs(*out.Subtotal+*out.TaxAmount-out.TotalAmount) > v.cfg.AmountTolerance {
			addViolation("total_amount", "arithmetic",
				"subtotal plus tax does not equal total within tolerance", false)
		}
	}

	out.Confidence = v.adjustedConfidence(baseConfidence, violations)

	if len(violations) > 0 {
		return out, &common.ValidationError{Violations: violations}
	}
	return out, nil
}

type addFunc func(field, rule, msg string, fatal bool)

func (v *Validator) optionalAmount(field, raw string, add addFunc) *float64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	f, ok := parseAmount(raw)
	if !ok {
		add(field, "numeric", field+" is not a valid amount", false)
		return nil
	}
	if f < 0 {
		add(field, "non_negative", field+" is negative", false)
		return nil
	}
	return &f
}

func (v *Validator) normalizeItems(items []llm.LineItem, add addFunc) []Item {
	out := make([]Item, 0, len(items))
	for i, it := range items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			add("items", "description", "line item without description dropped", false)
			continue
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		price, _ := parseAmount(it.UnitPrice)
		total, totalOK := parseAmount(it.Total)
		computed := round2(qty * price)
		switch {
		case !totalOK:
			total = computed
		case price > 0 && math.Abs(total-computed) > v.cfg.AmountTolerance:
			add("items", "line_arithmetic",
				"line "+strconv.Itoa(i+1)+" total does not equal quantity times unit price", false)
			total = computed
		}
		out = append(out, Item{
			Description:   desc,
			Quantity:      qty,
			UnitPrice:     price,
			LineTotal:     total,
			ProductCode:   strings.TrimSpace(it.ProductCode),
			UnitOfMeasure: strings.TrimSpace(it.UnitOfMeasure),
		})
	}
	return out
}

func (v *Validator) adjustedConfidence(base float32, violations []common.RuleViolation) float32 {
	c := base
	for _, viol := range violations {
		if !viol.Fatal {
			c -= v.cfg.ViolationPenalty
		}
	}
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return round2(f), true
}

func parseDate(field, s string, add addFunc) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		add(field, "date_format", field+" is not a valid YYYY-MM-DD date", false)
		return nil
	}
	return &t
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func hasFatal(violations []common.RuleViolation) bool {
	for _, v := range violations {
		if v.Fatal {
			return true
		}
	}
	return false
}
