package vpic

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport indicates the request could not be sent or no response arrived.
	ErrTransport = errors.New("transport failure")
	// ErrStatus indicates the server answered with a non-2xx status.
	ErrStatus = errors.New("unexpected status")
	// ErrDecode indicates the response body was not a valid vPIC envelope.
	ErrDecode = errors.New("malformed response")
)

// FetchError describes a failed lookup. Kind is one of ErrTransport, ErrStatus
// or ErrDecode and can be matched with errors.Is.
type FetchError struct {
	Op         string // Lookup name (e.g., "GetModelsForMake")
	URL        string // Requested URL
	StatusCode int    // HTTP status, 0 when no response arrived
	Kind       error
	Err        error
}

func newFetchError(op, url string, status int, kind, err error) *FetchError {
	return &FetchError{Op: op, URL: url, StatusCode: status, Kind: kind, Err: err}
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %v (status %d): %v", e.Op, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *FetchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
