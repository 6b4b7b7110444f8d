package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/payops/inquiry-reader/internal/core/domain"
	"github.com/payops/inquiry-reader/internal/core/ports"
)

// ProcessInquiryUseCase runs the pipeline for one queued document:
// fetch -> extract -> classify -> extract invoice number -> resolve -> draft.
// Each run owns a single document; stages never overlap across documents.
type ProcessInquiryUseCase struct {
	repo       ports.JobRepository
	store      ports.DocumentStore
	extractor  ports.TextExtractor
	classifier ports.InquiryClassifier
	fields     ports.FieldExtractor
	resolver   ports.InvoiceResolver
	drafter    ports.ReplyDrafter
}

func NewProcessInquiryUseCase(
	repo ports.JobRepository,
	store ports.DocumentStore,
	extractor ports.TextExtractor,
	classifier ports.InquiryClassifier,
	fields ports.FieldExtractor,
	resolver ports.InvoiceResolver,
	drafter ports.ReplyDrafter,
) *ProcessInquiryUseCase {
	return &ProcessInquiryUseCase{
		repo:       repo,
		store:      store,
		extractor:  extractor,
		classifier: classifier,
		fields:     fields,
		resolver:   resolver,
		drafter:    drafter,
	}
}

func (uc *ProcessInquiryUseCase) ProcessByID(ctx context.Context, jobID string) error {
	if err := uc.repo.UpdateStatus(ctx, jobID, domain.JobProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	status, result, err := uc.runPipeline(ctx, jobID)
	if err != nil {
		if failErr := uc.markFailed(ctx, jobID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveResult(ctx, jobID, status, result); err != nil {
		return fmt.Errorf("save pipeline result: %w", err)
	}
	return nil
}

func (uc *ProcessInquiryUseCase) runPipeline(ctx context.Context, jobID string) (domain.JobStatus, domain.PipelineResult, error) {
	var result domain.PipelineResult

	job, err := uc.loadJob(ctx, jobID)
	if err != nil {
		return "", result, err
	}

	doc, err := uc.fetchDocument(ctx, job)
	if err != nil {
		return "", result, err
	}

	text, err := uc.extractText(ctx, doc)
	if err != nil {
		return "", result, err
	}

	classification := uc.classifier.Classify(text)
	result.MatchedKeywords = classification.MatchedKeywords
	if !classification.IsPaymentInquiry {
		// Normal negative outcome: the pipeline stops here, nothing is
		// resolved and no draft is composed.
		return domain.JobSkippedNotInquiry, result, nil
	}

	if email, ok := uc.fields.VendorEmail(text); ok {
		result.VendorEmail = email
	}

	invoiceNo, ok := uc.fields.InvoiceNumber(text)
	if !ok {
		// No invoice number is not a failure: draft a reply asking the
		// vendor for the missing details.
		reply := uc.drafter.Draft(domain.NotFoundRecord(""), vendorNameFallback("", result.VendorEmail))
		result.RecordStatus = reply.Status
		result.DraftSubject = reply.Subject
		result.DraftBody = reply.Body
		return domain.JobSkippedNoInvoiceNo, result, nil
	}
	result.InvoiceNumber = invoiceNo

	record, err := uc.resolve(ctx, invoiceNo)
	if err != nil {
		return "", result, err
	}

	reply := uc.drafter.Draft(record, vendorNameFallback(record.SupplierName, result.VendorEmail))
	result.RecordStatus = record.Status
	result.DraftSubject = reply.Subject
	result.DraftBody = reply.Body
	return domain.JobDrafted, result, nil
}

func (uc *ProcessInquiryUseCase) loadJob(ctx context.Context, jobID string) (*domain.InquiryJob, error) {
	job, err := uc.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("fetch job by id: %w", err)
	}
	return job, nil
}

func (uc *ProcessInquiryUseCase) fetchDocument(ctx context.Context, job *domain.InquiryJob) (domain.Document, error) {
	content, err := uc.store.Fetch(ctx, job.SourcePath)
	if err != nil {
		return domain.Document{}, fmt.Errorf("fetch document bytes: %w", err)
	}
	return domain.Document{
		Path:    job.SourcePath,
		Kind:    job.Kind,
		Content: content,
	}, nil
}

func (uc *ProcessInquiryUseCase) extractText(ctx context.Context, doc domain.Document) (domain.ExtractedText, error) {
	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return domain.ExtractedText{}, fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}

func (uc *ProcessInquiryUseCase) resolve(ctx context.Context, invoiceNo string) (domain.InvoiceRecord, error) {
	record, err := uc.resolver.Resolve(ctx, invoiceNo)
	if err != nil {
		return domain.InvoiceRecord{}, fmt.Errorf("resolve invoice: %w", err)
	}
	return record, nil
}

func (uc *ProcessInquiryUseCase) markFailed(ctx context.Context, jobID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.repo.UpdateStatus(ctx, jobID, domain.JobFailed, processErr.Error())
}

// vendorNameFallback picks the salutation: supplier name from the record,
// else the mailbox part of the detected vendor email, else "Vendor".
func vendorNameFallback(supplierName, vendorEmail string) string {
	if supplierName != "" {
		return supplierName
	}
	if vendorEmail != "" {
		mailbox, _, found := strings.Cut(vendorEmail, "@")
		if found && mailbox != "" {
			return strings.ToUpper(mailbox[:1]) + mailbox[1:]
		}
	}
	return "Vendor"
}
