package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS inquiry_jobs (
	id TEXT PRIMARY KEY,
	source_path TEXT NOT NULL,
	kind TEXT NOT NULL,
	status TEXT NOT NULL,
	matched_keywords JSONB NOT NULL DEFAULT '[]'::jsonb,
	invoice_number TEXT,
	vendor_email TEXT,
	record_status TEXT,
	draft_subject TEXT,
	draft_body TEXT,
	recipient TEXT,
	error_message TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_inquiry_jobs_status ON inquiry_jobs(status);
CREATE INDEX IF NOT EXISTS idx_inquiry_jobs_created_at ON inquiry_jobs(created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *JobRepository) Create(ctx context.Context, job *domain.InquiryJob) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO inquiry_jobs (
	id, source_path, kind, status, matched_keywords, created_at, updated_at
) VALUES ($1,$2,$3,$4,'[]'::jsonb,$5,$6)
`,
		job.ID, job.SourcePath, string(job.Kind), string(job.Status), job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry job: %w", err)
	}
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.InquiryJob, error) {
	row := r.db.QueryRowContext(ctx, jobSelectColumns+`
FROM inquiry_jobs
WHERE id = $1
`, id)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrJobNotFound, "get job", fmt.Errorf("id %s", id))
		}
		return nil, fmt.Errorf("scan inquiry job: %w", err)
	}
	return job, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status domain.JobStatus, errMessage string) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE inquiry_jobs
SET status = $2, error_message = $3, updated_at = $4
WHERE id = $1
`, id, string(status), errMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	return requireRow(result, id)
}

func (r *JobRepository) SaveResult(ctx context.Context, id string, status domain.JobStatus, res domain.PipelineResult) error {
	keywords := res.MatchedKeywords
	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("marshal matched keywords: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE inquiry_jobs
SET status = $2, matched_keywords = $3, invoice_number = $4, vendor_email = $5,
    record_status = $6, draft_subject = $7, draft_body = $8, error_message = '', updated_at = $9
WHERE id = $1
`, id, string(status), keywordsJSON, res.InvoiceNumber, res.VendorEmail,
		string(res.RecordStatus), res.DraftSubject, res.DraftBody, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save pipeline result: %w", err)
	}
	return requireRow(result, id)
}

func (r *JobRepository) MarkSent(ctx context.Context, id, recipient string) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE inquiry_jobs
SET status = $2, recipient = $3, updated_at = $4
WHERE id = $1
`, id, string(domain.JobSent), recipient, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("mark job sent: %w", err)
	}
	return requireRow(result, id)
}

// ListRecent returns the newest jobs first, for the run-log export.
func (r *JobRepository) ListRecent(ctx context.Context, limit int) ([]domain.InquiryJob, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.db.QueryContext(ctx, jobSelectColumns+`
FROM inquiry_jobs
ORDER BY created_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list inquiry jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.InquiryJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inquiry jobs: %w", err)
	}
	return jobs, nil
}

const jobSelectColumns = `
SELECT id, source_path, kind, status, matched_keywords, invoice_number, vendor_email,
       record_status, draft_subject, draft_body, recipient, error_message, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.InquiryJob, error) {
	var (
		job          domain.InquiryJob
		kind         string
		status       string
		keywordsRaw  []byte
		invoiceNo    sql.NullString
		vendorEmail  sql.NullString
		recordStatus sql.NullString
		draftSubject sql.NullString
		draftBody    sql.NullString
		recipient    sql.NullString
		errMessage   sql.NullString
	)

	err := row.Scan(
		&job.ID, &job.SourcePath, &kind, &status, &keywordsRaw, &invoiceNo, &vendorEmail,
		&recordStatus, &draftSubject, &draftBody, &recipient, &errMessage, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(keywordsRaw, &job.MatchedKeywords); err != nil {
		return nil, fmt.Errorf("unmarshal matched keywords: %w", err)
	}
	job.Kind = domain.DocumentKind(kind)
	job.Status = domain.JobStatus(status)
	job.InvoiceNumber = invoiceNo.String
	job.VendorEmail = vendorEmail.String
	job.RecordStatus = domain.InvoiceStatus(recordStatus.String)
	job.DraftSubject = draftSubject.String
	job.DraftBody = draftBody.String
	job.Recipient = recipient.String
	job.Error = errMessage.String
	return &job, nil
}

func requireRow(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrJobNotFound, "update job", fmt.Errorf("id %s", id))
	}
	return nil
}
