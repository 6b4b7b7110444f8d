package classify

import (
	"regexp"
	"strings"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// minInvoiceNoLen drops short tokens that the generic patterns would
// otherwise pick up (years, quantities).
const minInvoiceNoLen = 4

// FieldExtractor pulls an invoice number and a vendor email out of document
// text. Tie-break policy: when several tokens match, the one occurring first
// in document order wins, regardless of which pattern found it. On a document
// quoting several invoices this means only the first is resolved.
type FieldExtractor struct {
	invoicePatterns []*regexp.Regexp
}

func NewFieldExtractor(p Patterns) *FieldExtractor {
	compiled := make([]*regexp.Regexp, 0, len(p.InvoicePatterns))
	for _, expr := range p.InvoicePatterns {
		// Patterns were validated at load time.
		compiled = append(compiled, regexp.MustCompile("(?i)"+expr))
	}
	return &FieldExtractor{invoicePatterns: compiled}
}

// InvoiceNumber returns the normalized first-in-document invoice-number
// candidate, or ok=false when none matches.
func (e *FieldExtractor) InvoiceNumber(text domain.ExtractedText) (string, bool) {
	bestStart := -1
	best := ""

	for _, re := range e.invoicePatterns {
		for _, idx := range re.FindAllStringSubmatchIndex(text.Text, -1) {
			// idx[2:4] is the first capture group.
			if len(idx) < 4 || idx[2] < 0 {
				continue
			}
			token := normalizeInvoiceNo(text.Text[idx[2]:idx[3]])
			if len(token) < minInvoiceNoLen {
				continue
			}
			if bestStart == -1 || idx[2] < bestStart {
				bestStart = idx[2]
				best = token
			}
		}
	}

	if bestStart == -1 {
		return "", false
	}
	return best, true
}

// VendorEmail returns the first email address occurring in the text.
func (e *FieldExtractor) VendorEmail(text domain.ExtractedText) (string, bool) {
	match := emailPattern.FindString(text.Text)
	if match == "" {
		return "", false
	}
	return match, true
}

// normalizeInvoiceNo uppercases the token and strips stray punctuation the
// label patterns can drag in from surrounding prose.
func normalizeInvoiceNo(token string) string {
	return strings.Trim(strings.ToUpper(strings.TrimSpace(token)), ".,;:)(")
}
