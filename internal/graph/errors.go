package graph

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is matched by TransportErrors for 404 responses.
	ErrNotFound = errors.New("graph: resource not found")

	// ErrUnsupportedMethod is returned when the request primitive is used
	// with anything other than GET, POST or DELETE.
	ErrUnsupportedMethod = errors.New("graph: unsupported method")

	// ErrInvalidContent is returned for bulk items that fail validation.
	ErrInvalidContent = errors.New("graph: invalid content")
)

// APIError is the error payload the Graph API attaches to failed responses.
type APIError struct {
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	Code      int    `json:"code,omitempty"`
	Subcode   int    `json:"error_subcode,omitempty"`
	FBTraceID string `json:"fbtrace_id,omitempty"`
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s, code %d)", e.Message, e.Type, e.Code)
}

// TransportError reports a failed round trip: connection errors, timeouts,
// non-2xx statuses and undecodable bodies.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int // zero when no response was received
	API        *APIError
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.API != nil:
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.API.Error())
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports 404 responses as ErrNotFound.
func (e *TransportError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// ResolutionError reports a target that maps to no known identity.
type ResolutionError struct {
	Target string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("graph: page or user account %q not found", e.Target)
}
