package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

// InvoiceRepository resolves invoice records from the hosted invoices table.
// The table is owned by the accounts-payable system; this repository only
// reads it.
type InvoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Resolve looks up an invoice by exact match on the normalized supplier
// invoice number. Zero matches return a NotFound record as a normal result.
// Duplicate numbers are inconsistent data; the first row wins (LIMIT 1), a
// documented limitation rather than a silent merge. Only transport/query
// failures and unparseable stored data produce ErrResolution.
func (r *InvoiceRepository) Resolve(ctx context.Context, invoiceNo string) (domain.InvoiceRecord, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT "Supplier_Name", "Invoice_Date", "Total_Invoice_Amount", "Currency", "Status",
       "Supplier_Invoice_No", "Comments", "Supplier_Invoice_Date", "file_url"
FROM invoices
WHERE "Supplier_Invoice_No" = $1
LIMIT 1
`, invoiceNo)

	var (
		supplierName        sql.NullString
		invoiceDate         sql.NullString
		totalAmount         sql.NullString
		currency            sql.NullString
		status              string
		supplierInvoiceNo   sql.NullString
		comments            sql.NullString
		supplierInvoiceDate sql.NullString
		fileURL             sql.NullString
	)

	err := row.Scan(
		&supplierName, &invoiceDate, &totalAmount, &currency, &status,
		&supplierInvoiceNo, &comments, &supplierInvoiceDate, &fileURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundRecord(invoiceNo), nil
		}
		return domain.InvoiceRecord{}, domain.WrapError(domain.ErrResolution, "query invoice", err)
	}

	parsedStatus, err := domain.ParseInvoiceStatus(status)
	if err != nil {
		return domain.InvoiceRecord{}, domain.WrapError(domain.ErrResolution, "parse invoice status", err)
	}

	record := domain.InvoiceRecord{
		SupplierName:        supplierName.String,
		InvoiceDate:         invoiceDate.String,
		TotalAmount:         totalAmount.String,
		Currency:            currency.String,
		Status:              parsedStatus,
		SupplierInvoiceNo:   supplierInvoiceNo.String,
		Comments:            comments.String,
		SupplierInvoiceDate: supplierInvoiceDate.String,
		FileURL:             fileURL.String,
	}
	if record.Currency == "" {
		record.Currency = "USD"
	}
	if record.SupplierInvoiceNo == "" {
		record.SupplierInvoiceNo = invoiceNo
	}
	return record, nil
}
