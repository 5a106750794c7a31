package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/llm"
)

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// ExtractInvoice implements llm.FieldExtractor over chat/completions.
// Transient transport errors are retried with exponential backoff; a reply
// that fails schema validation after local repair gets exactly one
// correction re-prompt before the call fails permanently.
func (c *Client) ExtractInvoice(ctx context.Context, req llm.ExtractRequest) (llm.ExtractResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	text := strings.TrimSpace(req.DocumentText)
	if text == "" {
		return llm.ExtractResult{}, fmt.Errorf("%w: document text is empty", common.ErrInvalidInput)
	}

	truncated := false
	if len(text) > c.cfg.MaxInputChars {
		text = text[:c.cfg.MaxInputChars]
		truncated = true
	}

	c.logger.Info("ai.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
		"truncated", truncated,
		"known_vendors", len(req.KnownVendors),
	)

	schema := llm.BuildInvoiceJSONSchema()
	messages := []map[string]any{
		{"role": "system", "content": buildSystemPrompt(req)},
		{"role": "user", "content": buildUserPrompt(text, req.FilenameHint)},
		{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
	}

	result := llm.ExtractResult{Truncated: truncated}

	content, usage, err := c.complete(ctx, rid, messages, &result.Retries)
	if err != nil {
		c.logger.Error("ai.extract.request_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return result, err
	}
	result.PromptTokens += usage.Usage.PromptTokens
	result.CompletionTokens += usage.Usage.CompletionTokens

	cleaned, adjusted, repErr := repairAndValidate(schema, content)
	if repErr != nil {
		// One re-prompt with an explicit correction instruction, then give up.
		c.logger.Warn("ai.extract.correction_prompt",
			"req_id", rid, "error", repErr)
		messages = append(messages,
			map[string]any{"role": "assistant", "content": content},
			map[string]any{"role": "user", "content": correctionPrompt(repErr)},
		)
		content, usage, err = c.complete(ctx, rid, messages, &result.Retries)
		if err != nil {
			return result, err
		}
		result.PromptTokens += usage.Usage.PromptTokens
		result.CompletionTokens += usage.Usage.CompletionTokens

		cleaned, adjusted, repErr = repairAndValidate(schema, content)
		if repErr != nil {
			c.logger.Error("ai.extract.schema_validation_failed",
				"req_id", rid, "error", repErr, "content", content,
				"elapsed_ms", time.Since(start).Milliseconds())
			return result, fmt.Errorf("%w: response violates schema after correction: %v", common.ErrExtraction, repErr)
		}
	}
	if len(adjusted) > 0 {
		c.logger.Warn("ai.extract.repair_applied", "req_id", rid, "adjusted", adjusted)
	}

	var fields llm.InvoiceFields
	if err := json.Unmarshal(cleaned, &fields); err != nil {
		return result, fmt.Errorf("%w: unmarshal fields: %v", common.ErrExtraction, err)
	}

	confidence := fields.ModelConfidence
	if confidence <= 0 || confidence > 1 {
		confidence = 0.5
	}
	if truncated {
		confidence -= c.cfg.TruncationPenalty
		if confidence < 0 {
			confidence = 0
		}
	}

	result.Fields = fields
	result.Raw = cleaned
	result.Confidence = confidence

	c.logger.Info("ai.extract.ok",
		"req_id", rid,
		"vendor", fields.VendorName,
		"invoice_number", fields.InvoiceNumber,
		"total", fields.TotalAmount,
		"currency", fields.Currency,
		"items", len(fields.Items),
		"confidence", confidence,
		"prompt_tokens", result.PromptTokens,
		"completion_tokens", result.CompletionTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// complete performs one chat/completions round trip with backoff on
// transient failures. Each retried failure is appended to retries so the
// caller can surface the attempts in its own audit trail.
func (c *Client) complete(ctx context.Context, rid string, messages []map[string]any, retries *[]llm.RetryRecord) (string, chatResponse, error) {
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages":        messages,
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	var cc chatResponse
	attempt := 0
	backoff := retry.WithMaxRetries(uint64(c.cfg.MaxRetries), retry.NewExponential(c.cfg.RetryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		raw, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
		if err != nil {
			if common.IsTransient(err) {
				// NewExponential doubles per attempt starting at the base
				delay := c.cfg.RetryBaseDelay << (attempt - 1)
				*retries = append(*retries, llm.RetryRecord{
					Attempt: attempt,
					Backoff: delay,
					Reason:  err.Error(),
				})
				c.logger.Warn("ai.extract.retry",
					"req_id", rid, "attempt", attempt, "backoff", delay, "error", err)
				return retry.RetryableError(err)
			}
			return err
		}
		if err := json.Unmarshal(raw, &cc); err != nil {
			return fmt.Errorf("%w: decode completion: %v", common.ErrExtraction, err)
		}
		return nil
	})
	if err != nil {
		return "", cc, err
	}
	if len(cc.Choices) == 0 {
		return "", cc, fmt.Errorf("%w: no choices in completion", common.ErrExtraction)
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), cc, nil
}

func repairAndValidate(schema map[string]any, content string) ([]byte, []string, error) {
	cleaned, adjusted, err := llm.RepairExtractionJSON([]byte(content))
	if err != nil {
		return nil, nil, err
	}
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		return nil, adjusted, err
	}
	return cleaned, adjusted, nil
}

func buildSystemPrompt(req llm.ExtractRequest) string {
	cur := req.DefaultCurrency
	if cur == "" {
		cur = "USD"
	}
	parts := []string{
		"You are an expert invoice data extraction assistant. Return ONLY JSON matching the provided JSON Schema.",
		"ALWAYS extract the vendor_name from the invoice header; it is usually the first company name at the top of the document.",
		"Use the full official company name, e.g. \"Microsoft Corporation\" not \"Microsoft\".",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Currency must be a 3-letter ISO 4217 code; default to " + cur + " if uncertain.",
		"Amounts are decimal strings with up to two fraction digits.",
		"Include every line item you can read with description, quantity, unit_price and total.",
		"Set confidence_score between 0.0 and 1.0 based on text clarity.",
		"Never output null. If a field is not present, omit it.",
	}
	if len(req.KnownVendors) > 0 {
		max := len(req.KnownVendors)
		if max > 20 {
			max = 20
		}
		parts = append(parts,
			"Known vendors for this user (use the exact existing spelling when the invoice is from one of them): "+
				strings.Join(req.KnownVendors[:max], ", ")+".")
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(text, filename string) string {
	var b strings.Builder
	if filename != "" {
		b.WriteString("Filename: ")
		b.WriteString(filename)
		b.WriteString("\n\n")
	}
	b.WriteString("Invoice text:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn ONLY JSON that matches the provided schema.")
	return b.String()
}

func correctionPrompt(cause error) string {
	return "The previous reply was not valid JSON for the schema (" + cause.Error() +
		"). Respond again with ONLY a single JSON object that matches the schema exactly. " +
		"No prose, no markdown fences, omit unknown fields."
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
