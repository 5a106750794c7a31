package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/dupdetect"
	"github.com/paperpilot/invoicer/internal/events"
	"github.com/paperpilot/invoicer/internal/export"
	"github.com/paperpilot/invoicer/internal/llm/openai"
	"github.com/paperpilot/invoicer/internal/pipeline"
	repo "github.com/paperpilot/invoicer/internal/repository"
	invsvc "github.com/paperpilot/invoicer/internal/services/invoices"
	"github.com/paperpilot/invoicer/internal/textextract"
	"github.com/paperpilot/invoicer/internal/validation"
	"github.com/paperpilot/invoicer/internal/vendors"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// invoice-batch processes every supported document in a directory through
// the full pipeline for one user, then writes an XLSX summary.
func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory of invoice documents (required)")
		userStr = flag.String("user", "", "user UUID to import under (required)")
		out     = flag.String("out", "", "output XLSX path (defaults next to --dir)")
		fromStr = flag.String("from", "", "export window start YYYY-MM-DD")
		toStr   = flag.String("to", "", "export window end YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	userID, err := uuid.Parse(strings.TrimSpace(*userStr))
	if err != nil {
		printError("Error: --user must be a UUID\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		t, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &t
	}
	if *toStr != "" {
		t, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &t
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.DSN = "file:invoicer?mode=memory&cache=shared"
	}
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	ctx := context.Background()
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:         cfg.Database.DSN,
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		printError("Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)
	if *inmem {
		if err := entc.Schema.Create(ctx); err != nil {
			printError("Error: create schema: %v\n", err)
			os.Exit(1)
		}
	}

	invoiceRepo := repo.NewInvoiceRepository(entc, logger)
	documentRepo := repo.NewDocumentRepository(entc, logger)
	logRepo := repo.NewProcessingLogRepository(entc, logger)
	vendorRepo := repo.NewVendorRepository(entc, logger)

	resolver := vendors.NewResolver(vendorRepo, vendors.NewUserLocks(), vendors.Config{
		MatchThreshold:  cfg.Pipeline.VendorMatchThreshold,
		ReviewThreshold: cfg.Pipeline.VendorReviewThreshold,
	}, logger)
	extractor := textextract.NewExtractor(textextract.Config{
		Pdftotext: cfg.Extractor.PDFToText,
		Tesseract: cfg.Extractor.Tesseract,
		Timeout:   cfg.Extractor.Timeout,
	}, logger)
	aiClient := openai.NewClient(openai.Config{
		APIKey:            cfg.LLM.APIKey,
		BaseURL:           cfg.LLM.BaseURL,
		Model:             cfg.LLM.Model,
		Temperature:       cfg.LLM.Temperature,
		MaxTokens:         cfg.LLM.MaxTokens,
		MaxInputChars:     cfg.LLM.MaxInputChars,
		TruncationPenalty: cfg.LLM.TruncationPenalty,
		Timeout:           cfg.LLM.Timeout,
		MaxRetries:        cfg.LLM.MaxRetries,
		RetryBaseDelay:    cfg.LLM.RetryBaseDelay,
	}, logger)
	detector := dupdetect.NewDetector(dupdetect.Config{
		Threshold:       cfg.Pipeline.DuplicateThreshold,
		AmountTolerance: cfg.Pipeline.AmountTolerance,
		DateWindowDays:  cfg.Pipeline.DateWindowDays,
	}, logger)
	validator := validation.NewValidator(validation.Config{
		AmountTolerance:  cfg.Pipeline.AmountTolerance,
		ViolationPenalty: cfg.Pipeline.ViolationPenalty,
		DefaultCurrency:  cfg.Pipeline.DefaultCurrency,
	})

	processor := pipeline.NewProcessor(pipeline.Config{
		LeaseTTL:        cfg.Pipeline.LeaseTTL,
		ProcessTimeout:  cfg.Pipeline.ProcessTimeout,
		DefaultCurrency: cfg.Pipeline.DefaultCurrency,
	}, invoiceRepo, documentRepo, logRepo, vendorRepo, resolver,
		extractor, aiClient, detector, validator, events.NopPublisher{}, logger)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		printError("Error: read directory: %v\n", err)
		os.Exit(1)
	}

	var processed, failed, skipped int
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		mimeType := mime.TypeByExtension(filepath.Ext(e.Name()))
		if i := strings.Index(mimeType, ";"); i >= 0 {
			mimeType = mimeType[:i]
		}
		if !constants.IsSupportedMIME(mimeType) {
			skipped++
			continue
		}
		path := filepath.Join(*dir, e.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			printError("read %s: %v\n", path, err)
			failed++
			continue
		}
		if len(content) > invsvc.MaxUploadBytes {
			printError("skip %s: larger than %d bytes\n", e.Name(), invsvc.MaxUploadBytes)
			skipped++
			continue
		}

		doc, err := documentRepo.Create(ctx, &repo.CreateDocumentRequest{
			UserID:   userID,
			Filename: e.Name(),
			MIMEType: mimeType,
			Content:  content,
		})
		if err != nil {
			printError("store %s: %v\n", e.Name(), err)
			failed++
			continue
		}
		inv, err := invoiceRepo.Create(ctx, &repo.CreateInvoiceRequest{
			UserID:     userID,
			DocumentID: doc.ID,
		})
		if err != nil {
			printError("create invoice for %s: %v\n", e.Name(), err)
			failed++
			continue
		}
		if err := processor.Process(ctx, inv.ID); err != nil {
			printError("process %s: %v\n", e.Name(), err)
			failed++
			continue
		}
		processed++
		fmt.Printf("processed %s (%s)\n", e.Name(), inv.ID)
	}

	exportService := export.NewService(invoiceRepo, vendorRepo, logger)
	xlsx, err := exportService.ExportInvoicesXLSX(ctx, userID, from, to)
	if err != nil {
		printError("Error: export: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		printError("Error: write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("done: %d processed, %d failed, %d skipped, export written to %s\n",
		processed, failed, skipped, *out)
}
