package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error that knows which HTTP status it maps to.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches on Code so wrapped and cloned errors still compare equal to the
// catalogue entries below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// Response is the JSON body of every failed request.
type Response struct {
	Error *Error `json:"error"`
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches a catalogue code to an underlying error.
func Wrap(err error, base *Error) *Error {
	return &Error{Code: base.Code, Status: base.Status, Message: base.Message, Err: err}
}

// Clone copies base, overriding the message when one is given.
func Clone(base *Error, message string) *Error {
	if base == nil {
		return nil
	}
	clone := *base
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// FromError normalises any error into an *Error, defaulting to ErrInternal.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal)
}

var (
	ErrMalformedTime          = New("MALFORMED_TIME", http.StatusBadRequest, "malformed time, expected HH:MM")
	ErrStoreUnavailable       = New("STORE_UNAVAILABLE", http.StatusServiceUnavailable, "document store unavailable")
	ErrInvalidIndex           = New("INVALID_INDEX", http.StatusNotFound, "element index out of range")
	ErrElementNotFound        = New("ELEMENT_NOT_FOUND", http.StatusNotFound, "element not found")
	ErrOfferNotFound          = New("OFFER_NOT_FOUND", http.StatusNotFound, "offer not found")
	ErrReportNotFound         = New("REPORT_NOT_FOUND", http.StatusNotFound, "report not found")
	ErrWorkerNotFound         = New("WORKER_NOT_FOUND", http.StatusNotFound, "worker not found")
	ErrBrigadeNotFound        = New("BRIGADE_NOT_FOUND", http.StatusNotFound, "brigade not found")
	ErrWorkerExists           = New("WORKER_EXISTS", http.StatusConflict, "a worker with this CI already exists")
	ErrBrigadeExists          = New("BRIGADE_EXISTS", http.StatusConflict, "the leader already has a brigade")
	ErrConcurrentModification = New("CONCURRENT_MODIFICATION", http.StatusConflict, "offer was modified by another request")
	ErrValidation             = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrUnauthorized           = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrInternal               = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)
