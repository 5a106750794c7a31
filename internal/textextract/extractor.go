package textextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config for the exec-backed extractor.
type Config struct {
	Pdftotext string        // default "pdftotext"
	Tesseract string        // default "tesseract"
	Timeout   time.Duration // per-document deadline, default 30s
}

// Extractor shells out to local tools per MIME type.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner, for tests.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

func (e *Extractor) ExtractText(ctx context.Context, data []byte, mimeType string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	mt := mimeType
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	mt = strings.ToLower(strings.TrimSpace(mt))

	var (
		res Result
		err error
	)
	switch mt {
	case "text/plain":
		res = Result{Text: strings.TrimSpace(string(data)), Pages: 1, Method: "plain"}
	case "application/pdf":
		res, err = e.fromPDF(ctx, data)
	case "image/png", "image/jpeg":
		res, err = e.fromImage(ctx, data, mt)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{}, fmt.Errorf("%w: %v", ErrExtractionTimeout, err)
		}
		return Result{}, err
	}
	return res, nil
}

func (e *Extractor) fromPDF(ctx context.Context, data []byte) (Result, error) {
	path, cleanup, err := spill(data, "*.pdf")
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{}, fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}
	text := string(out)
	// pdftotext separates pages with a form feed
	return Result{
		Text:   strings.TrimSpace(text),
		Pages:  1 + strings.Count(text, "\f"),
		Method: "pdftotext",
	}, nil
}

func (e *Extractor) fromImage(ctx context.Context, data []byte, mt string) (Result, error) {
	ext := "*.png"
	if mt == "image/jpeg" {
		ext = "*.jpg"
	}
	path, cleanup, err := spill(data, ext)
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	// tesseract <path> stdout
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout")
	if err != nil {
		return Result{}, fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return Result{Text: strings.TrimSpace(string(out)), Pages: 1, Method: "tesseract"}, nil
}

// spill writes data to a temp file for tools that only read paths.
func spill(data []byte, pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", "invoicer-"+pattern)
	if err != nil {
		return "", nil, err
	}
	name := f.Name()
	cleanup := func() {
		if rmErr := os.Remove(name); rmErr != nil {
			slog.Warn("temp file cleanup failed", "path", name, "error", rmErr)
		}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return name, cleanup, nil
}
