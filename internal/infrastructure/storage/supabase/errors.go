package supabase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/payops/inquiry-reader/internal/infrastructure/resilience"
)

type statusError struct {
	operation string
	code      int
	message   string
}

func newStatusError(operation string, resp *http.Response) *statusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &statusError{
		operation: operation,
		code:      resp.StatusCode,
		message:   strings.TrimSpace(string(body)),
	}
}

func (e *statusError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("storage %s status %d", e.operation, e.code)
	}
	return fmt.Sprintf("storage %s status %d: %s", e.operation, e.code, e.message)
}

func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}

// classifyStorageError retries network faults and server-side errors; client
// errors (auth, missing object) fail fast and 404 does not trip the breaker.
func classifyStorageError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	if resilience.IsCircuitOpen(err) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}

	var se *statusError
	if errors.As(err, &se) {
		if se.code == http.StatusNotFound {
			return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
		}
		if se.code >= 500 || se.code == http.StatusTooManyRequests {
			return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
		}
		return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
	}

	// Transport-level failure (dial, timeout, reset).
	return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
}
