package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat rejects document kinds the extractor cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtraction marks a corrupt or unparseable byte stream.
	ErrExtraction = errors.New("text extraction failed")
	// ErrResolution marks a transport/query failure against the record store;
	// a zero-match lookup is a normal result, never this error.
	ErrResolution = errors.New("invoice resolution failed")
	// ErrTransport marks a document store transport failure.
	ErrTransport = errors.New("storage transport failure")

	ErrDocumentNotFound = errors.New("document not found")
	ErrJobNotFound      = errors.New("inquiry job not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrTemporary        = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
