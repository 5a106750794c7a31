package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5},
	})
	return string(b)
}

const goodContent = `{"invoice_number":"INV-7","invoice_date":"2024-03-01","vendor_name":"Acme Corp","total_amount":"120.00","currency":"USD","confidence_score":0.9}`

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*Config)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := Config{
		APIKey:         "test-key",
		BaseURL:        srv.URL,
		Model:          "gpt-test",
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewClient(cfg, testLogger())
}

func TestExtractInvoice_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, chatReply(goodContent))
	}, nil)

	res, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{DocumentText: "Invoice from Acme Corp, total 120.00"})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "Acme Corp", res.Fields.VendorName)
	assert.Equal(t, "120.00", res.Fields.TotalAmount)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)
	assert.Equal(t, 10, res.PromptTokens)

	// every failed attempt leaves a retry record with its backoff
	require.Len(t, res.Retries, 2)
	assert.Equal(t, 1, res.Retries[0].Attempt)
	assert.Equal(t, time.Millisecond, res.Retries[0].Backoff)
	assert.Contains(t, res.Retries[0].Reason, "500")
	assert.Equal(t, 2, res.Retries[1].Attempt)
	assert.Equal(t, 2*time.Millisecond, res.Retries[1].Backoff)
}

func TestExtractInvoice_CorrectionPromptRecovers(t *testing.T) {
	calls := 0
	var secondBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, chatReply("I could not find any structured data, sorry."))
			return
		}
		secondBody, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, chatReply(goodContent))
	}, nil)

	res, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{DocumentText: "some invoice text"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "INV-7", res.Fields.InvoiceNumber)
	// Token usage accumulates over both round trips.
	assert.Equal(t, 20, res.PromptTokens)
	assert.Equal(t, 10, res.CompletionTokens)

	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(secondBody, &req))
	last := req.Messages[len(req.Messages)-1]
	assert.Equal(t, "user", last.Role)
	assert.Contains(t, last.Content, "ONLY a single JSON object")
	assert.Equal(t, "assistant", req.Messages[len(req.Messages)-2].Role)
}

func TestExtractInvoice_FailsAfterSecondBadReply(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, chatReply("still just prose, no payload"))
	}, nil)

	_, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{DocumentText: "text"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
	assert.Equal(t, 2, calls)
}

func TestExtractInvoice_EmptyText(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, nil)

	_, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{DocumentText: "   \n\t "})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, calls)
}

func TestExtractInvoice_ClientErrorIsNotRetried(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"bad request"}}`)
	}, nil)

	_, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{DocumentText: "text"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrTransient))
	assert.ErrorIs(t, err, common.ErrExtraction)
	assert.Equal(t, 1, calls, "a 4xx must not be retried")
}

func TestExtractInvoice_TruncationPenalty(t *testing.T) {
	var sentText string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.Unmarshal(body, &req)
		sentText = req.Messages[1].Content
		fmt.Fprint(w, chatReply(goodContent))
	}, func(cfg *Config) {
		cfg.MaxInputChars = 16
		cfg.TruncationPenalty = 0.25
	})

	res, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{
		DocumentText: "a very long invoice body that exceeds the input budget",
	})
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.InDelta(t, 0.65, res.Confidence, 0.001)
	assert.NotContains(t, sentText, "input budget")
}

func TestExtractInvoice_ConfidenceDefaultsWhenMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply(`{"vendor_name":"Acme Corp","total_amount":"10.00"}`))
	}, nil)

	res, err := c.ExtractInvoice(context.Background(), llm.ExtractRequest{DocumentText: "text"})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Confidence, 0.001)
}
