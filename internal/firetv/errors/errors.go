package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPaired is returned before anything touches the network when an
	// authenticated operation is attempted on a session without a token.
	ErrNotPaired = errors.New("Session is not paired")

	ErrNoAddress = errors.New("Announcement carries no address")
)

// TransportError is a non-2xx answer from the device, or it wraps the
// connection/timeout failure that prevented one.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("transport: unexpected status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("transport: unexpected status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError is a reply the device did send but we could not make
// sense of. Missing fields are not protocol errors, only unparsable bodies.
type ProtocolError struct {
	Path string
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol: bad response from %s: %v", e.Path, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
