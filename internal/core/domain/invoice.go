package domain

import (
	"fmt"
	"strings"
)

// InvoiceStatus is the payment status of an invoice record. It is always one
// of the six enumerated values; NotFound is a real value meaning "no matching
// record", never a missing-value sentinel.
type InvoiceStatus string

const (
	StatusPaid     InvoiceStatus = "Paid"
	StatusUnpaid   InvoiceStatus = "Unpaid"
	StatusQueued   InvoiceStatus = "Queued"
	StatusOnHold   InvoiceStatus = "On Hold"
	StatusRejected InvoiceStatus = "Rejected"
	StatusNotFound InvoiceStatus = "Not Found"
)

// InvoiceStatuses lists every valid status value. The reply drafter keeps a
// template for each; tests iterate this to enforce totality.
var InvoiceStatuses = []InvoiceStatus{
	StatusPaid,
	StatusUnpaid,
	StatusQueued,
	StatusOnHold,
	StatusRejected,
	StatusNotFound,
}

// ParseInvoiceStatus normalizes a stored status string to its enum value.
// Unknown values are an inconsistent-data condition, not coerced.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	switch normalized {
	case "paid":
		return StatusPaid, nil
	case "unpaid":
		return StatusUnpaid, nil
	case "queued":
		return StatusQueued, nil
	case "on hold":
		return StatusOnHold, nil
	case "rejected":
		return StatusRejected, nil
	case "not found":
		return StatusNotFound, nil
	default:
		return "", fmt.Errorf("unknown invoice status %q", s)
	}
}

// InvoiceRecord mirrors one row of the external invoices table. Amount and
// dates are kept as display text; the drafter never does arithmetic on them.
type InvoiceRecord struct {
	SupplierName        string        `json:"supplier_name"`
	InvoiceDate         string        `json:"invoice_date"`
	TotalAmount         string        `json:"total_invoice_amount"`
	Currency            string        `json:"currency"`
	Status              InvoiceStatus `json:"status"`
	SupplierInvoiceNo   string        `json:"supplier_invoice_no"`
	Comments            string        `json:"comments"`
	SupplierInvoiceDate string        `json:"supplier_invoice_date"`
	FileURL             string        `json:"file_url"`
}

// NotFoundRecord is the zero-match resolution result: status NotFound, the
// looked-up invoice number echoed back, everything else empty.
func NotFoundRecord(invoiceNo string) InvoiceRecord {
	return InvoiceRecord{
		Status:            StatusNotFound,
		SupplierInvoiceNo: invoiceNo,
	}
}

// DraftReply is a composed, unsent reply reflecting the resolution outcome.
type DraftReply struct {
	Subject string        `json:"subject"`
	Body    string        `json:"body"`
	Status  InvoiceStatus `json:"status"`
}
