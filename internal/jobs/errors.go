package jobs

import (
	"errors"
	"fmt"
)

// ErrNoResults is returned when the listings API answered successfully but the
// mapped result set is empty. Callers can distinguish "no jobs found" from a
// transport or configuration failure.
var ErrNoResults = errors.New("no jobs found for the specified criteria")

// HTTPError represents a non-2xx response from the listings API.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error from listings API: %s", e.Status)
}

// RequestError represents a network-level failure reaching the listings API.
type RequestError struct {
	Cause error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request error reaching listings API: %v", e.Cause)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// InvalidInputError represents malformed tool input that failed JSON Schema
// validation.
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid job search input: %s", e.Detail)
}
