package ports

import (
	"context"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

// DocumentLister is the inbound contract for browsing processable documents.
type DocumentLister interface {
	ListDocuments(ctx context.Context) ([]string, error)
}

// InquiryStarter registers a stored document for processing and queues it.
type InquiryStarter interface {
	Start(ctx context.Context, path string) (*domain.InquiryJob, error)
}

// InquiryProcessor runs the pipeline for a queued job.
type InquiryProcessor interface {
	ProcessByID(ctx context.Context, jobID string) error
}

// DraftSender delivers a drafted reply on explicit user action.
type DraftSender interface {
	SendDraft(ctx context.Context, jobID, recipient string) error
}

// JobReader is the inbound read model for job state.
type JobReader interface {
	GetByID(ctx context.Context, id string) (*domain.InquiryJob, error)
}
