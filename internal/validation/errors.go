package validation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrBatchTooLarge       = errors.New("batch size exceeds maximum")
	ErrEmptyBatch          = errors.New("urls is required")
	ErrCredentialsInURL    = errors.New("url must not contain credentials")
	ErrSelfReference       = errors.New("url points back to this service")
)

type IndexedError struct {
	Index int
	Err   error
}

type BatchValidationError struct {
	Errors []IndexedError
}

func (e *BatchValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, ie := range e.Errors {
		parts[i] = fmt.Sprintf("urls[%d]: %v", ie.Index, ie.Err)
	}
	return "batch validation failed: " + strings.Join(parts, "; ")
}

func (e *BatchValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, ie := range e.Errors {
		errs[i] = ie.Err
	}
	return errs
}

// FieldError describes a request field that failed struct validation.
type FieldError struct {
	Field   string
	Message string
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = f.Message
	}
	return strings.Join(parts, "; ")
}

// Message turns a validation error into the text returned to API clients.
func Message(err error) string {
	var fieldErrs FieldErrors
	var batchErr *BatchValidationError
	switch {
	case errors.As(err, &fieldErrs):
		return fieldErrs.Error()
	case errors.As(err, &batchErr):
		return batchErr.Error()
	case errors.Is(err, ErrEmptyURL), errors.Is(err, ErrEmptyBatch):
		return "URL is required."
	case errors.Is(err, ErrURLTooLong):
		return "URL is too long."
	case errors.Is(err, ErrBatchTooLarge):
		return "Too many URLs."
	case errors.Is(err, ErrSelfReference):
		return "URL cannot point to a short link."
	case errors.Is(err, ErrInvalidURLFormat),
		errors.Is(err, ErrUnsafeProtocol),
		errors.Is(err, ErrCredentialsInURL),
		errors.Is(err, ErrPrivateIPNotAllowed):
		return "Invalid URL."
	default:
		return "Invalid request."
	}
}
