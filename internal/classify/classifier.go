package classify

import (
	"strings"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

// Classifier decides whether document text is a payment inquiry by counting
// keyword hits. A document is an inquiry when it mentions an invoice and at
// least one payment keyword, or when two or more keywords match. Given the
// same text and rule set the verdict is always identical.
type Classifier struct {
	keywords []string
}

func NewClassifier(p Patterns) *Classifier {
	return &Classifier{keywords: p.Keywords}
}

func (c *Classifier) Classify(text domain.ExtractedText) domain.ClassificationResult {
	low := strings.ToLower(text.Text)

	var matched []string
	for _, kw := range c.keywords {
		if strings.Contains(low, kw) {
			matched = append(matched, kw)
		}
	}

	mentionsInvoice := strings.Contains(low, "invoice")
	isInquiry := (mentionsInvoice && len(matched) >= 1) || len(matched) >= 2

	return domain.ClassificationResult{
		IsPaymentInquiry: isInquiry,
		MatchedKeywords:  matched,
	}
}
