package apperr

import (
	"errors"
	"net/http"
)

// Error kinds surfaced to HTTP callers. Wrap them with fmt.Errorf("...: %w", kind).
var (
	ErrMethodNotAllowed  = errors.New("method not allowed")
	ErrMissingInput      = errors.New("missing input")
	ErrDocumentParse     = errors.New("document parse failed")
	ErrConfiguration     = errors.New("configuration error")
	ErrCompletionService = errors.New("completion service error")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrPaymentService    = errors.New("payment service error")
	ErrPayloadTooLarge   = errors.New("payload too large")
)

// HTTPStatus maps an error to its response status and envelope code.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, "method_not_allowed"
	case errors.Is(err, ErrMissingInput):
		return http.StatusBadRequest, "missing_input"
	case errors.Is(err, ErrDocumentParse):
		return http.StatusBadRequest, "document_parse_error"
	case errors.Is(err, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "payload_too_large"
	case errors.Is(err, ErrInvalidProduct):
		return http.StatusBadRequest, "invalid_product"
	case errors.Is(err, ErrConfiguration):
		return http.StatusInternalServerError, "configuration_error"
	case errors.Is(err, ErrCompletionService):
		return http.StatusBadGateway, "completion_service_error"
	case errors.Is(err, ErrPaymentService):
		return http.StatusInternalServerError, "payment_service_error"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
