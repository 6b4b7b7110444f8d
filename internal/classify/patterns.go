// Package classify detects payment-inquiry language in extracted document
// text and pulls identifying fields (invoice number, vendor email) out of it.
package classify

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Patterns is the fixed rule set shared by the classifier and the field
// extractor. The defaults cover common accounts-payable phrasing; operators
// can override them with a YAML file.
type Patterns struct {
	// Keywords are matched case-insensitively as substrings.
	Keywords []string `yaml:"keywords"`
	// InvoicePatterns are tried in order; each must have exactly one
	// capture group holding the invoice-number token.
	InvoicePatterns []string `yaml:"invoice_patterns"`
}

var defaultKeywords = []string{
	"payment status",
	"paid?",
	"payment when",
	"remittance",
	"remittance advice",
	"payment date",
	"has it been paid",
	"when will i get paid",
	"invoice status",
	"payment confirmation",
	"receipt confirmation",
	"remit",
}

var defaultInvoicePatterns = []string{
	`invoice\s*(?:#|no\.?|id:?)\s*([A-Za-z0-9\-_/]{4,})`,
	`\b(INV[-_/]?\d{4,})\b`,
	`\b([A-Z]{2,5}\d{4,})\b`,
}

// DefaultPatterns returns the built-in rule set.
func DefaultPatterns() Patterns {
	return Patterns{
		Keywords:        defaultKeywords,
		InvoicePatterns: defaultInvoicePatterns,
	}
}

// LoadPatterns reads a YAML rule set from path. An empty path returns the
// defaults. Missing sections fall back to the built-in values so a file may
// override just the keywords.
func LoadPatterns(path string) (Patterns, error) {
	if path == "" {
		return DefaultPatterns(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Patterns{}, fmt.Errorf("read patterns file: %w", err)
	}

	var p Patterns
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Patterns{}, fmt.Errorf("parse patterns file: %w", err)
	}
	if len(p.Keywords) == 0 {
		p.Keywords = defaultKeywords
	}
	if len(p.InvoicePatterns) == 0 {
		p.InvoicePatterns = defaultInvoicePatterns
	}

	for _, expr := range p.InvoicePatterns {
		if _, err := regexp.Compile("(?i)" + expr); err != nil {
			return Patterns{}, fmt.Errorf("invalid invoice pattern %q: %w", expr, err)
		}
	}
	return p, nil
}
