package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/payops/inquiry-reader/internal/core/domain"
	"github.com/payops/inquiry-reader/internal/core/ports"
)

// ScanDocumentsUseCase lists processable documents from the store and starts
// inquiry jobs for them.
type ScanDocumentsUseCase struct {
	store    ports.DocumentStore
	repo     ports.JobRepository
	queue    ports.MessageQueue
	prefix   string
	maxDepth int
}

func NewScanDocumentsUseCase(
	store ports.DocumentStore,
	repo ports.JobRepository,
	queue ports.MessageQueue,
	prefix string,
	maxDepth int,
) *ScanDocumentsUseCase {
	return &ScanDocumentsUseCase{
		store:    store,
		repo:     repo,
		queue:    queue,
		prefix:   prefix,
		maxDepth: maxDepth,
	}
}

// ListDocuments returns bucket paths that end in .pdf, .html or .htm.
func (uc *ScanDocumentsUseCase) ListDocuments(ctx context.Context) ([]string, error) {
	paths, err := uc.store.List(ctx, uc.prefix, uc.maxDepth)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	processable := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := domain.KindFromPath(p); ok {
			processable = append(processable, p)
		}
	}
	return processable, nil
}

// Start records a queued job for the given stored document and publishes a
// processing event for the worker.
func (uc *ScanDocumentsUseCase) Start(ctx context.Context, path string) (*domain.InquiryJob, error) {
	kind, ok := domain.KindFromPath(path)
	if !ok {
		return nil, domain.WrapError(domain.ErrUnsupportedFormat, "start inquiry",
			fmt.Errorf("path %q is not a pdf or html document", path))
	}

	now := time.Now().UTC()
	job := &domain.InquiryJob{
		ID:         uuid.NewString(),
		SourcePath: path,
		Kind:       kind,
		Status:     domain.JobQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create inquiry job: %w", err)
	}

	if err := uc.queue.PublishInquiryQueued(ctx, job.ID); err != nil {
		return nil, fmt.Errorf("publish inquiry event: %w", err)
	}
	return job, nil
}
