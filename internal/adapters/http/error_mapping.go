package httpadapter

import (
	"net/http"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput),
		domain.IsKind(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrJobNotFound),
		domain.IsKind(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	case domain.IsKind(err, domain.ErrTransport),
		domain.IsKind(err, domain.ErrResolution):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
