// Package extractor converts stored documents into plain text.
package extractor

import (
	"context"
	"fmt"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

// Extractor dispatches on document kind. It is a pure function of the input
// bytes; corrupt streams fail with domain.ErrExtraction and unknown kinds
// with domain.ErrUnsupportedFormat.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(_ context.Context, doc domain.Document) (domain.ExtractedText, error) {
	var (
		text string
		err  error
	)

	switch doc.Kind {
	case domain.KindPDF:
		text, err = extractPDF(doc.Content)
	case domain.KindHTML:
		text, err = extractHTML(doc.Content)
	default:
		return domain.ExtractedText{}, domain.WrapError(domain.ErrUnsupportedFormat, "extract",
			fmt.Errorf("kind %q for %s", doc.Kind, doc.Path))
	}
	if err != nil {
		return domain.ExtractedText{}, domain.WrapError(domain.ErrExtraction, "extract", err)
	}

	return domain.ExtractedText{Source: doc.Path, Text: text}, nil
}
