package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Code identifies an error category with a stable wire value.
type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeIdempotency  Code = "IDEMPOTENCY_KEY_REUSED"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeDependency   Code = "DEPENDENCY_ERROR"
)

// Metadata describes how a code surfaces over HTTP. DetailsAllowed controls
// whether WithDetails payloads are echoed to clients.
type Metadata struct {
	HTTPStatus     int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation:   {http.StatusBadRequest, false, "validation failed", true},
	CodeUnauthorized: {http.StatusUnauthorized, false, "authentication required", false},
	CodeForbidden:    {http.StatusForbidden, false, "access denied", false},
	CodeNotFound:     {http.StatusNotFound, false, "resource not found", false},
	CodeConflict:     {http.StatusConflict, false, "conflict detected", false},
	CodeIdempotency:  {http.StatusConflict, false, "idempotency key reused", true},
	CodeInternal:     {http.StatusInternalServerError, true, "internal server error", false},
	CodeDependency:   {http.StatusServiceUnavailable, true, "dependency unavailable", true},
}

// MetadataFor returns the HTTP mapping for code. Unknown codes map to
// CodeInternal so a miswired error never leaks a raw message.
func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// Error is the coded error carried between services and the HTTP layer.
// All accessors are nil-safe.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

// WithDetails attaches a payload echoed to clients when the code allows it.
func (e *Error) WithDetails(details any) *Error {
	if e != nil {
		e.details = details
	}
	return e
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As returns the first *Error in err's chain, or nil.
func As(err error) *Error {
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
