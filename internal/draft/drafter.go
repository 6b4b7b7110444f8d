// Package draft composes reply emails for resolved payment inquiries. Every
// invoice status has exactly one template; rendering is deterministic.
package draft

import (
	"fmt"
	"strings"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

// signature closes every reply.
const signature = "Regards,\nAccounts Payable"

// closingLines maps each non-NotFound status to its follow-up sentence.
// Totality over domain.InvoiceStatuses is enforced by TestDraftCoversAllStatuses.
var closingLines = map[domain.InvoiceStatus]string{
	domain.StatusPaid:     "If you haven't received the remittance advice, let us know and we'll resend.",
	domain.StatusQueued:   "We expect completion soon; we'll notify you once it posts.",
	domain.StatusOnHold:   "This is pending additional review. We'll reach out if we need anything further.",
	domain.StatusRejected: "Please review the details above and let us know if any corrections are needed.",
	domain.StatusUnpaid:   "Please review the details above and let us know if any corrections are needed.",
}

type Drafter struct{}

func NewDrafter() *Drafter {
	return &Drafter{}
}

// Draft renders the reply for a resolved record. vendorName is used for the
// salutation when non-empty; a record with status NotFound produces the
// "couldn't find it" template asking the vendor for details.
func (d *Drafter) Draft(record domain.InvoiceRecord, vendorName string) domain.DraftReply {
	invoiceNo := record.SupplierInvoiceNo
	if invoiceNo == "" {
		invoiceNo = "(not provided)"
	}
	name := vendorName
	if name == "" {
		name = "Team"
	}

	subject := fmt.Sprintf("Re: Payment Inquiry – %s", invoiceNo)

	if record.Status == domain.StatusNotFound {
		body := fmt.Sprintf(
			"Hi %s,\n\nThanks for reaching out. We couldn't find invoice %s in our records. "+
				"Could you please confirm the invoice number, amount, and date, or attach the invoice copy?\n\n%s",
			name, invoiceNo, signature,
		)
		return domain.DraftReply{Subject: subject, Body: body, Status: record.Status}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nHere's the status for invoice %s: %s.\n", name, invoiceNo, record.Status)

	if details := detailLines(record); len(details) > 0 {
		b.WriteByte('\n')
		for _, d := range details {
			fmt.Fprintf(&b, "- %s\n", d)
		}
	}

	if line, ok := closingLines[record.Status]; ok {
		fmt.Fprintf(&b, "\n%s\n", line)
	}
	fmt.Fprintf(&b, "\n%s", signature)

	return domain.DraftReply{Subject: subject, Body: b.String(), Status: record.Status}
}

func detailLines(record domain.InvoiceRecord) []string {
	var details []string
	if record.TotalAmount != "" {
		currency := record.Currency
		if currency == "" {
			currency = "USD"
		}
		details = append(details, fmt.Sprintf("Amount: %s %s", currency, record.TotalAmount))
	}
	date := record.InvoiceDate
	if date == "" {
		date = record.SupplierInvoiceDate
	}
	if date != "" {
		details = append(details, fmt.Sprintf("Invoice Date: %s", date))
	}
	if record.Comments != "" {
		details = append(details, fmt.Sprintf("Notes: %s", record.Comments))
	}
	return details
}
