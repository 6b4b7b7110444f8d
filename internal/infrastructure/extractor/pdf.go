package extractor

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the plain text of all pages in page order, with a
// single newline as the page break.
func extractPDF(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}

	var buf bytes.Buffer
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		buf.WriteString(text)
		if i < numPages {
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}
