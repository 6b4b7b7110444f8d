package bootstrap

import (
	"context"
	"fmt"

	"github.com/payops/inquiry-reader/internal/classify"
	"github.com/payops/inquiry-reader/internal/config"
	"github.com/payops/inquiry-reader/internal/core/ports"
	"github.com/payops/inquiry-reader/internal/core/usecase"
	"github.com/payops/inquiry-reader/internal/draft"
	"github.com/payops/inquiry-reader/internal/export"
	"github.com/payops/inquiry-reader/internal/infrastructure/extractor"
	"github.com/payops/inquiry-reader/internal/infrastructure/mail/smtp"
	"github.com/payops/inquiry-reader/internal/infrastructure/queue/nats"
	"github.com/payops/inquiry-reader/internal/infrastructure/repository/postgres"
	"github.com/payops/inquiry-reader/internal/infrastructure/resilience"
	"github.com/payops/inquiry-reader/internal/infrastructure/storage/localfs"
	"github.com/payops/inquiry-reader/internal/infrastructure/storage/supabase"
)

type App struct {
	Config config.Config

	Queue ports.MessageQueue
	Jobs  ports.JobRepository

	ScanUC    *usecase.ScanDocumentsUseCase
	ProcessUC ports.InquiryProcessor
	SendUC    ports.DraftSender
	Export    *export.Service

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	jobs := postgres.NewJobRepository(db)
	if err := jobs.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	invoices := postgres.NewInvoiceRepository(db)

	executor := resilience.NewExecutor(resilience.DefaultConfig())

	store, err := newDocumentStore(cfg, executor)
	if err != nil {
		return nil, fmt.Errorf("init document store: %w", err)
	}

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	patterns, err := classify.LoadPatterns(cfg.PatternsFile)
	if err != nil {
		return nil, fmt.Errorf("load classifier patterns: %w", err)
	}
	classifier := classify.NewClassifier(patterns)
	fields := classify.NewFieldExtractor(patterns)
	drafter := draft.NewDrafter()
	textExtractor := extractor.New()

	mailSender := smtp.NewSender(smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SMTPFrom,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})

	scanUC := usecase.NewScanDocumentsUseCase(store, jobs, queue, cfg.BucketPrefix, cfg.MaxListDepth)
	processUC := usecase.NewProcessInquiryUseCase(jobs, store, textExtractor, classifier, fields, invoices, drafter)
	sendUC := usecase.NewSendDraftUseCase(jobs, mailSender)
	exportSvc := export.NewService(jobs, nil)

	return &App{
		Config: cfg,
		Queue:  queue,
		Jobs:   jobs,

		ScanUC:    scanUC,
		ProcessUC: processUC,
		SendUC:    sendUC,
		Export:    exportSvc,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

// newDocumentStore picks the bucket client when Supabase is configured and
// falls back to the local directory store for development.
func newDocumentStore(cfg config.Config, executor *resilience.Executor) (ports.DocumentStore, error) {
	if cfg.SupabaseURL != "" {
		return supabase.New(cfg.SupabaseURL, cfg.SupabaseAPIKey, cfg.BucketName, executor), nil
	}
	return localfs.New(cfg.LocalStoragePath)
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
