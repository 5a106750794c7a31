package textextract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	name   string
	args   []string
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.name = name
	f.args = args
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func newTestExtractor(r Runner) *Extractor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewExtractor(Config{}, logger).WithRunner(r)
}

func TestExtractText_Plain(t *testing.T) {
	e := newTestExtractor(&fakeRunner{})

	res, err := e.ExtractText(context.Background(), []byte("  Invoice INV-1\ntotal 10.00  \n"), "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "Invoice INV-1\ntotal 10.00", res.Text)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "plain", res.Method)
}

func TestExtractText_PDFCountsPages(t *testing.T) {
	r := &fakeRunner{stdout: "page one\fpage two\fpage three"}
	e := newTestExtractor(r)

	res, err := e.ExtractText(context.Background(), []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdftotext", r.name)
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, "pdftotext", res.Method)
	// last arg is "-" so output lands on stdout
	assert.Equal(t, "-", r.args[len(r.args)-1])
}

func TestExtractText_ImageUsesTesseract(t *testing.T) {
	r := &fakeRunner{stdout: "OCR TEXT\n"}
	e := newTestExtractor(r)

	res, err := e.ExtractText(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "tesseract", r.name)
	assert.Equal(t, "OCR TEXT", res.Text)
	assert.Equal(t, "tesseract", res.Method)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	e := newTestExtractor(&fakeRunner{})

	_, err := e.ExtractText(context.Background(), []byte("x"), "application/zip")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractText_ToolFailureIncludesStderr(t *testing.T) {
	r := &fakeRunner{err: errors.New("exit status 1"), stderr: "Syntax Error: broken xref"}
	e := newTestExtractor(r)

	_, err := e.ExtractText(context.Background(), []byte("%PDF"), "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken xref")
}

func TestExtractText_DeadlineMapsToTimeout(t *testing.T) {
	r := &timeoutRunner{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewExtractor(Config{Timeout: 1}, logger).WithRunner(r)

	_, err := e.ExtractText(context.Background(), []byte("%PDF"), "application/pdf")
	assert.ErrorIs(t, err, ErrExtractionTimeout)
}

type timeoutRunner struct{}

func (timeoutRunner) Run(ctx context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	<-ctx.Done()
	return nil, nil, ctx.Err()
}
