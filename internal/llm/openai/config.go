package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the OpenAI client.
type Config struct {
	APIKey      string // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string // default https://api.openai.com/v1
	Model       string // e.g. "gpt-4o-mini"
	Temperature float32
	MaxTokens   int

	// MaxInputChars caps document text; longer inputs are truncated, the
	// result flagged, and TruncationPenalty subtracted from confidence.
	MaxInputChars     int
	TruncationPenalty float32

	Timeout        time.Duration // http client timeout
	MaxRetries     int           // transient transport retries
	RetryBaseDelay time.Duration // backoff base, doubled per attempt
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = 16000
	}
	if cfg.TruncationPenalty <= 0 {
		cfg.TruncationPenalty = 0.10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
