package textextract

import (
	"context"
	"errors"
)

// Extraction failure modes at the external boundary.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrExtractionTimeout = errors.New("text extraction timed out")
)

// Result is the raw text pulled out of an uploaded document.
type Result struct {
	Text   string
	Pages  int
	Method string // which external tool produced the text
}

// TextExtractor converts uploaded file bytes into raw text. Text/layout
// extraction is an external capability consumed as a black box; the pipeline
// never inspects document internals itself.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, mimeType string) (Result, error)
}
