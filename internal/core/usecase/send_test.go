package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

type mailFake struct {
	recipient string
	subject   string
	body      string
	err       error
	calls     int
}

func (f *mailFake) Send(_ context.Context, recipient, subject, body string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.recipient = recipient
	f.subject = subject
	f.body = body
	return nil
}

func draftedJob() *domain.InquiryJob {
	return &domain.InquiryJob{
		ID:           "job-1",
		Status:       domain.JobDrafted,
		DraftSubject: "Re: Payment Inquiry – INV-10234",
		DraftBody:    "Dear ACME Corp,\n\nInvoice INV-10234 has been paid.",
	}
}

func TestSendDraftDeliversAndMarksSent(t *testing.T) {
	repo := &jobRepoFake{job: draftedJob()}
	mail := &mailFake{}
	uc := NewSendDraftUseCase(repo, mail)

	if err := uc.SendDraft(context.Background(), "job-1", "billing@acme.example"); err != nil {
		t.Fatalf("SendDraft() error = %v", err)
	}
	if mail.recipient != "billing@acme.example" {
		t.Fatalf("unexpected recipient %q", mail.recipient)
	}
	if mail.subject != "Re: Payment Inquiry – INV-10234" {
		t.Fatalf("unexpected subject %q", mail.subject)
	}
	if repo.sentID != "job-1" || repo.sentTo != "billing@acme.example" {
		t.Fatalf("job not marked sent: %s/%s", repo.sentID, repo.sentTo)
	}
}

func TestSendDraftTrimsRecipient(t *testing.T) {
	repo := &jobRepoFake{job: draftedJob()}
	mail := &mailFake{}
	uc := NewSendDraftUseCase(repo, mail)

	if err := uc.SendDraft(context.Background(), "job-1", "  billing@acme.example  "); err != nil {
		t.Fatalf("SendDraft() error = %v", err)
	}
	if mail.recipient != "billing@acme.example" {
		t.Fatalf("recipient not trimmed: %q", mail.recipient)
	}
}

func TestSendDraftRejectsEmptyRecipient(t *testing.T) {
	repo := &jobRepoFake{job: draftedJob()}
	mail := &mailFake{}
	uc := NewSendDraftUseCase(repo, mail)

	err := uc.SendDraft(context.Background(), "job-1", "   ")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if mail.calls != 0 {
		t.Fatalf("nothing should be sent without a recipient")
	}
}

func TestSendDraftRejectsJobWithoutDraft(t *testing.T) {
	repo := &jobRepoFake{job: &domain.InquiryJob{ID: "job-1", Status: domain.JobSkippedNotInquiry}}
	mail := &mailFake{}
	uc := NewSendDraftUseCase(repo, mail)

	err := uc.SendDraft(context.Background(), "job-1", "billing@acme.example")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if mail.calls != 0 {
		t.Fatalf("nothing should be sent without a draft")
	}
}

func TestSendDraftDoesNotMarkSentOnMailError(t *testing.T) {
	repo := &jobRepoFake{job: draftedJob()}
	mail := &mailFake{err: errors.New("smtp refused")}
	uc := NewSendDraftUseCase(repo, mail)

	if err := uc.SendDraft(context.Background(), "job-1", "billing@acme.example"); err == nil {
		t.Fatalf("expected error")
	}
	if repo.sentID != "" {
		t.Fatalf("job must not be marked sent after a mail failure")
	}
}

func TestSendDraftPropagatesMissingJob(t *testing.T) {
	repo := &jobRepoFake{getErr: domain.WrapError(domain.ErrJobNotFound, "get job", errors.New("no row"))}
	uc := NewSendDraftUseCase(repo, &mailFake{})

	err := uc.SendDraft(context.Background(), "job-404", "billing@acme.example")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
