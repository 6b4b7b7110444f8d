package domain

import "time"

// JobStatus tracks an inquiry job through the pipeline. The two skipped
// states are terminal non-error outcomes, distinct from failed.
type JobStatus string

const (
	JobQueued             JobStatus = "queued"
	JobProcessing         JobStatus = "processing"
	JobDrafted            JobStatus = "drafted"
	JobSkippedNotInquiry  JobStatus = "skipped_not_inquiry"
	JobSkippedNoInvoiceNo JobStatus = "skipped_no_invoice_no"
	JobSent               JobStatus = "sent"
	JobFailed             JobStatus = "failed"
)

// InquiryJob is one pipeline run over one stored document, from queueing
// through drafting (and optionally sending) a reply.
type InquiryJob struct {
	ID              string        `json:"id"`
	SourcePath      string        `json:"source_path"`
	Kind            DocumentKind  `json:"kind"`
	Status          JobStatus     `json:"status"`
	MatchedKeywords []string      `json:"matched_keywords,omitempty"`
	InvoiceNumber   string        `json:"invoice_number,omitempty"`
	VendorEmail     string        `json:"vendor_email,omitempty"`
	RecordStatus    InvoiceStatus `json:"record_status,omitempty"`
	DraftSubject    string        `json:"draft_subject,omitempty"`
	DraftBody       string        `json:"draft_body,omitempty"`
	Recipient       string        `json:"recipient,omitempty"`
	Error           string        `json:"error,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// PipelineResult carries the outcome fields a finished pipeline run writes
// back onto its job in one repository call.
type PipelineResult struct {
	MatchedKeywords []string
	InvoiceNumber   string
	VendorEmail     string
	RecordStatus    InvoiceStatus
	DraftSubject    string
	DraftBody       string
}

// ClassificationResult is the inquiry classifier's verdict for one document.
// Deterministic for identical input text.
type ClassificationResult struct {
	IsPaymentInquiry bool     `json:"is_payment_inquiry"`
	MatchedKeywords  []string `json:"matched_keywords,omitempty"`
}
