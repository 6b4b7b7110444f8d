package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/payops/inquiry-reader/internal/core/domain"
	"github.com/payops/inquiry-reader/internal/core/ports"
)

// SendDraftUseCase delivers a drafted reply. Sending is always an explicit
// user action; it never happens as a pipeline side effect.
type SendDraftUseCase struct {
	repo ports.JobRepository
	mail ports.MailSender
}

func NewSendDraftUseCase(repo ports.JobRepository, mail ports.MailSender) *SendDraftUseCase {
	return &SendDraftUseCase{repo: repo, mail: mail}
}

func (uc *SendDraftUseCase) SendDraft(ctx context.Context, jobID, recipient string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return domain.WrapError(domain.ErrInvalidInput, "send draft", errors.New("recipient is required"))
	}

	job, err := uc.repo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("fetch job by id: %w", err)
	}
	if job.DraftSubject == "" || job.DraftBody == "" {
		return domain.WrapError(domain.ErrInvalidInput, "send draft",
			fmt.Errorf("job %s has no draft to send", jobID))
	}

	if err := uc.mail.Send(ctx, recipient, job.DraftSubject, job.DraftBody); err != nil {
		return fmt.Errorf("send draft mail: %w", err)
	}

	if err := uc.repo.MarkSent(ctx, jobID, recipient); err != nil {
		return fmt.Errorf("mark job sent: %w", err)
	}
	return nil
}
