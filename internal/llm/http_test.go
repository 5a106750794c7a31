package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpilot/invoicer/internal/common"
)

func sendTo(t *testing.T, status int, body string) error {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := SendJSON(context.Background(), srv.Client(), srv.URL, map[string]any{"k": "v"}, nil, logger)
	return err
}

func TestSendJSON_StatusClassification(t *testing.T) {
	require.NoError(t, sendTo(t, http.StatusOK, `{}`))

	for _, status := range []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusTooManyRequests} {
		err := sendTo(t, status, "")
		require.Error(t, err)
		assert.True(t, common.IsTransient(err), "status %d should be retryable", status)
	}

	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound} {
		err := sendTo(t, status, `{"error":"nope"}`)
		require.Error(t, err)
		assert.False(t, common.IsTransient(err), "status %d must not be retryable", status)
		assert.True(t, errors.Is(err, common.ErrExtraction))
	}
}

func TestSendJSON_TransportErrorIsTransient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := SendJSON(context.Background(), &http.Client{}, "http://127.0.0.1:1", nil, nil, logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransient)
}
