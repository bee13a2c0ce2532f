package reports

import (
	"errors"
	"net/http"
)

// ErrorKind is the machine-readable error tag sent to clients.
type ErrorKind string

const (
	KindMissingParameters ErrorKind = "MISSING_PARAMETERS"
	KindInvalidJSON       ErrorKind = "INVALID_JSON"
	KindInvalidDateRange  ErrorKind = "INVALID_DATE_RANGE"
	KindInvalidFormat     ErrorKind = "INVALID_FORMAT"
	KindStorage           ErrorKind = "STORAGE_ERROR"
	KindGeneration        ErrorKind = "GENERATION_ERROR"
	KindServer            ErrorKind = "SERVER_ERROR"
)

// Date range validation failures.
var (
	ErrMissingField = errors.New("both start date and end date are required")
	ErrNotADate     = errors.New("start date and end date must be valid dates")
	ErrInvalidOrder = errors.New("start date must be before or equal to end date")
)

// ReportError carries a kind, a client-safe message and the underlying cause.
type ReportError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ReportError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func newReportError(kind ErrorKind, message string, err error) *ReportError {
	return &ReportError{Kind: kind, Message: message, Err: err}
}

// invalidDateRange wraps a date validation failure with its client message.
func invalidDateRange(err error) *ReportError {
	msg := "Invalid date format. Expected ISO 8601 format."
	switch {
	case errors.Is(err, ErrMissingField):
		msg = "Both start date and end date are required"
	case errors.Is(err, ErrNotADate):
		msg = "Invalid date format"
	case errors.Is(err, ErrInvalidOrder):
		msg = "Start date must be before or equal to end date"
	}
	return newReportError(KindInvalidDateRange, msg, err)
}

// IsClientError reports whether the kind is caused by bad caller input.
func (k ErrorKind) IsClientError() bool {
	switch k {
	case KindMissingParameters, KindInvalidJSON, KindInvalidDateRange, KindInvalidFormat:
		return true
	}
	return false
}

// HTTPStatus maps the kind onto a response status.
func (k ErrorKind) HTTPStatus() int {
	if k.IsClientError() {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ToErrorResponse converts any error into the public JSON shape. Storage and
// generation failures collapse into SERVER_ERROR; details only when exposeDetails.
func ToErrorResponse(err error, fallbackMessage string, exposeDetails bool) (int, ErrorResponse) {
	var rerr *ReportError
	if errors.As(err, &rerr) && rerr.Kind.IsClientError() {
		return rerr.Kind.HTTPStatus(), ErrorResponse{Error: rerr.Kind, Message: rerr.Message}
	}

	resp := ErrorResponse{Error: KindServer, Message: fallbackMessage}
	if exposeDetails && err != nil {
		resp.Details = err.Error()
	}
	return http.StatusInternalServerError, resp
}
