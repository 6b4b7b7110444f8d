// Package export produces the run-log workbook: one row per inquiry job.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/payops/inquiry-reader/internal/core/ports"
)

const runLogSheet = "Run Log"

// Service is a tiny façade over the job repository that renders XLSX bytes.
type Service struct {
	jobs   ports.JobRepository
	logger *slog.Logger
}

func NewService(jobs ports.JobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// ExportRunLogXLSX returns a workbook with the most recent jobs, newest
// first, mirroring what the repository reports.
func (s *Service) ExportRunLogXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	jobs, err := s.jobs.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query inquiry jobs: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(runLogSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"File", "Invoice No", "Record Status", "Outcome", "Recipient", "Error", "Processed At (UTC)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(runLogSheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, job := range jobs {
		values := []any{
			job.SourcePath,
			job.InvoiceNumber,
			string(job.RecordStatus),
			string(job.Status),
			job.Recipient,
			job.Error,
			job.UpdatedAt.UTC().Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(runLogSheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", rowIdx+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	s.logger.Info("run_log_exported", "jobs", len(jobs), "duration_ms",
		float64(time.Since(start).Microseconds())/1000.0)
	return buf.Bytes(), nil
}
