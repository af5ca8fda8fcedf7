package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors matched by [*HTTPError] through errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// HTTPError is returned for every non-2xx backend response.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error returns the response body when it is non-empty, otherwise a generic
// message naming the status code. The body is not trimmed.
func (e *HTTPError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("Request failed with status %d", e.StatusCode)
}

// Is reports whether target is the sentinel for e.StatusCode.
func (e *HTTPError) Is(target error) bool {
	sentinel := statusSentinel(e.StatusCode)
	return sentinel != nil && sentinel == target
}

func statusSentinel(code int) error {
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
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return nil
	}
}
