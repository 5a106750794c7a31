package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicespb "github.com/paperpilot/invoicer/gen/proto/invoices/v1"
	"github.com/paperpilot/invoicer/internal/async"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/dupdetect"
	"github.com/paperpilot/invoicer/internal/events"
	"github.com/paperpilot/invoicer/internal/export"
	"github.com/paperpilot/invoicer/internal/llm/openai"
	"github.com/paperpilot/invoicer/internal/pipeline"
	repo "github.com/paperpilot/invoicer/internal/repository"
	svc "github.com/paperpilot/invoicer/internal/server"
	invsvc "github.com/paperpilot/invoicer/internal/services/invoices"
	"github.com/paperpilot/invoicer/internal/textextract"
	"github.com/paperpilot/invoicer/internal/validation"
	"github.com/paperpilot/invoicer/internal/vendors"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
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

	publisher := events.NewChannelPublisher(cfg.Pipeline.QueueSize, logger)
	defer publisher.Close()
	go func() {
		// analytics feed: downstream rollups consume finalized transitions
		for ev := range publisher.Events() {
			logger.Info("analytics.status_changed",
				"invoice_id", ev.InvoiceID,
				"user_id", ev.UserID,
				"from", ev.OldStatus,
				"to", ev.NewStatus,
				"amount", ev.Amount,
			)
		}
	}()

	processor := pipeline.NewProcessor(pipeline.Config{
		LeaseTTL:        cfg.Pipeline.LeaseTTL,
		ProcessTimeout:  cfg.Pipeline.ProcessTimeout,
		DefaultCurrency: cfg.Pipeline.DefaultCurrency,
	}, invoiceRepo, documentRepo, logRepo, vendorRepo, resolver,
		extractor, aiClient, detector, validator, publisher, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	invoiceService := invsvc.NewService(invoiceRepo, documentRepo, logRepo, queue, publisher, logger)
	exportService := export.NewService(invoiceRepo, vendorRepo, logger)

	grpcServer := grpc.NewServer()
	invoicespb.RegisterInvoicesServiceServer(grpcServer, svc.NewInvoicesServer(invoiceService, logger))
	invoicespb.RegisterVendorsServiceServer(grpcServer, svc.NewVendorsServer(vendorRepo, logger))
	invoicespb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("invoicerd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
