package domain

import (
	"path"
	"strings"
)

// DocumentKind identifies the source format of a fetched document.
type DocumentKind string

const (
	KindPDF  DocumentKind = "pdf"
	KindHTML DocumentKind = "html"
)

// Document is a fetched source document: raw bytes plus where they came from.
// It is immutable once built and discarded after text extraction.
type Document struct {
	Path    string
	Kind    DocumentKind
	Content []byte
}

// ExtractedText is the plain text of a document together with its origin.
type ExtractedText struct {
	Source string
	Text   string
}

// KindFromPath derives the document kind from the file extension.
// Only .pdf, .html and .htm are processable.
func KindFromPath(p string) (DocumentKind, bool) {
	switch strings.ToLower(path.Ext(p)) {
	case ".pdf":
		return KindPDF, true
	case ".html", ".htm":
		return KindHTML, true
	default:
		return "", false
	}
}
