package ports

import (
	"context"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

// DocumentStore lists and fetches vendor documents from a bucket. List walks
// folders recursively up to maxDepth and returns object paths; filtering to
// processable extensions is the caller's concern.
type DocumentStore interface {
	List(ctx context.Context, prefix string, maxDepth int) ([]string, error)
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// TextExtractor converts a PDF or HTML document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, doc domain.Document) (domain.ExtractedText, error)
}

// InquiryClassifier decides whether extracted text is a payment inquiry.
// It is total: absence of a match is a negative result, not an error.
type InquiryClassifier interface {
	Classify(text domain.ExtractedText) domain.ClassificationResult
}

// FieldExtractor scans extracted text for an invoice number and a vendor
// email address. Both return ok=false when no candidate exists.
type FieldExtractor interface {
	InvoiceNumber(text domain.ExtractedText) (string, bool)
	VendorEmail(text domain.ExtractedText) (string, bool)
}

// InvoiceResolver looks up an invoice record by its normalized number.
// Zero matches yield a NotFound record, not an error.
type InvoiceResolver interface {
	Resolve(ctx context.Context, invoiceNo string) (domain.InvoiceRecord, error)
}

// ReplyDrafter composes a reply for a resolved record. vendorName is the
// salutation fallback when the record carries no supplier name.
type ReplyDrafter interface {
	Draft(record domain.InvoiceRecord, vendorName string) domain.DraftReply
}

// JobRepository persists and reads inquiry job state.
type JobRepository interface {
	Create(ctx context.Context, job *domain.InquiryJob) error
	GetByID(ctx context.Context, id string) (*domain.InquiryJob, error)
	UpdateStatus(ctx context.Context, id string, status domain.JobStatus, errMessage string) error
	SaveResult(ctx context.Context, id string, status domain.JobStatus, result domain.PipelineResult) error
	MarkSent(ctx context.Context, id, recipient string) error
	ListRecent(ctx context.Context, limit int) ([]domain.InquiryJob, error)
}

// MessageQueue publishes/consumes inquiry processing events.
type MessageQueue interface {
	PublishInquiryQueued(ctx context.Context, jobID string) error
	SubscribeInquiryQueued(ctx context.Context, handler func(context.Context, string) error) error
}

// MailSender delivers a drafted reply. Used only on explicit user action;
// failures surface to the caller, never silently dropped.
type MailSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
