package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Request failure classes. Every error returned by a request operation
// matches exactly one of them with errors.Is.
var (
	ErrServiceUnreachable = errors.New("enrollment service unreachable")
	ErrTimeout            = errors.New("enrollment service timeout")
	ErrClientStatus       = errors.New("enrollment service rejected request")
	ErrServerStatus       = errors.New("enrollment service failed")
	ErrMalformedResponse  = errors.New("malformed enrollment service response")
)

// Status refinements, matched in addition to ErrClientStatus or
// ErrServerStatus.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Input errors, returned before any request is sent.
var (
	ErrInvalidBaseURL       = errors.New("invalid base url")
	ErrEmptyRegistrationID  = errors.New("empty registration id")
	ErrEmptyDocumentContent = errors.New("empty document content")
)

// RequestError describes a failed enrollment service request.
type RequestError struct {
	// Kind is one of the failure class sentinels.
	Kind error
	// Method and URL identify the request.
	Method string
	URL    string
	// StatusCode and Body are set when a response was received.
	StatusCode int
	Body       string
	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: %v: http %d: %v", e.Method, e.URL, e.Kind, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: %v: http %d: %s", e.Method, e.URL, e.Kind, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s %s: %v: %v", e.Method, e.URL, e.Kind, e.Err)
	}
}

// Unwrap exposes the failure class, the status refinement and the
// underlying error to errors.Is and errors.As.
func (e *RequestError) Unwrap() []error {
	errs := []error{e.Kind}
	if refined := statusRefinement(e.StatusCode); refined != nil {
		errs = append(errs, refined)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func statusRefinement(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}
