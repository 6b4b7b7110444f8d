package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

type jobListFake struct {
	jobs  []domain.InquiryJob
	err   error
	limit int
}

func (f *jobListFake) Create(context.Context, *domain.InquiryJob) error { return nil }

func (f *jobListFake) GetByID(context.Context, string) (*domain.InquiryJob, error) {
	return nil, errors.New("not implemented")
}

func (f *jobListFake) UpdateStatus(context.Context, string, domain.JobStatus, string) error {
	return nil
}

func (f *jobListFake) SaveResult(context.Context, string, domain.JobStatus, domain.PipelineResult) error {
	return nil
}

func (f *jobListFake) MarkSent(context.Context, string, string) error { return nil }

func (f *jobListFake) ListRecent(_ context.Context, limit int) ([]domain.InquiryJob, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func TestExportRunLogXLSXWritesOneRowPerJob(t *testing.T) {
	updated := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	repo := &jobListFake{jobs: []domain.InquiryJob{
		{
			SourcePath:    "inbox/acme/inquiry.pdf",
			InvoiceNumber: "INV-10234",
			RecordStatus:  domain.StatusPaid,
			Status:        domain.JobSent,
			Recipient:     "billing@acme.example",
			UpdatedAt:     updated,
		},
		{
			SourcePath: "inbox/beta/catalog.html",
			Status:     domain.JobSkippedNotInquiry,
			UpdatedAt:  updated,
		},
	}}
	svc := NewService(repo, nil)

	content, err := svc.ExportRunLogXLSX(context.Background(), 100)
	if err != nil {
		t.Fatalf("ExportRunLogXLSX() error = %v", err)
	}
	if repo.limit != 100 {
		t.Fatalf("limit not forwarded, got %d", repo.limit)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Run Log")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "File" || rows[0][3] != "Outcome" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "inbox/acme/inquiry.pdf" || rows[1][1] != "INV-10234" || rows[1][4] != "billing@acme.example" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][3] != string(domain.JobSkippedNotInquiry) {
		t.Fatalf("unexpected second row outcome: %v", rows[2])
	}
	if rows[1][6] != "2026-08-30T14:05:00Z" {
		t.Fatalf("unexpected timestamp: %v", rows[1])
	}
}

func TestExportRunLogXLSXEmptyRepositoryStillYieldsHeader(t *testing.T) {
	svc := NewService(&jobListFake{}, nil)

	content, err := svc.ExportRunLogXLSX(context.Background(), 10)
	if err != nil {
		t.Fatalf("ExportRunLogXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Run Log")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestExportRunLogXLSXPropagatesRepositoryError(t *testing.T) {
	svc := NewService(&jobListFake{err: errors.New("db down")}, nil)

	if _, err := svc.ExportRunLogXLSX(context.Background(), 10); err == nil {
		t.Fatalf("expected error")
	}
}
