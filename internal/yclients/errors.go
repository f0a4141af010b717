package yclients

import "fmt"

// ErrorKind classifies API failures by the status code the API answered with.
type ErrorKind int

const (
	ErrKindUnknown ErrorKind = iota
	ErrKindBadRequest
	ErrKindUnauthorized
	ErrKindForbidden
	ErrKindNotFound
	ErrKindUnprocessableEntity
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindBadRequest:
		return "bad_request"
	case ErrKindUnauthorized:
		return "unauthorized"
	case ErrKindForbidden:
		return "forbidden"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindUnprocessableEntity:
		return "unprocessable_entity"
	default:
		return "unknown"
	}
}

// APIError is returned for any non-success answer from the API and for
// transport failures (StatusCode 0).
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Response   []byte
	cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("yclients: request failed: %v", e.cause)
	}
	if e.Kind == ErrKindUnknown {
		return fmt.Sprintf("yclients: API returned unexpected status code %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("yclients: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

func kindForStatus(status int) ErrorKind {
	switch status {
	case 400:
		return ErrKindBadRequest
	case 401:
		return ErrKindUnauthorized
	case 403:
		return ErrKindForbidden
	case 404:
		return ErrKindNotFound
	case 422:
		return ErrKindUnprocessableEntity
	default:
		return ErrKindUnknown
	}
}

// ValidationError reports a response body that does not match the expected
// model. Parsing never degrades silently.
type ValidationError struct {
	Endpoint string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("yclients: invalid response from %s: %v", e.Endpoint, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
