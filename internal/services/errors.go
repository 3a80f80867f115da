package services

import (
	"fmt"
	"net/http"
)

// FetchError is returned when an organization lookup fails: the network call
// failed, the bank answered with a non-2xx status, or the payload did not
// have the expected shape.
type FetchError struct {
	Slug       string
	Op         string // What was being fetched, e.g. "fetch organization"
	StatusCode int    // Set when the bank answered with an unexpected status
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Slug, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotFound reports whether the bank said the organization does not exist.
func (e *FetchError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ValidationError is returned for identifiers that can never name an
// organization. No network call is made for them.
type ValidationError struct {
	Slug   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid organization ID %q: %s", e.Slug, e.Reason)
}
