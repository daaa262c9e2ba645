package relay

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type ErrorKind string

const (
	KindUpstreamHTTP      ErrorKind = "UPSTREAM_HTTP"
	KindUpstreamMalformed ErrorKind = "UPSTREAM_MALFORMED"
	KindUpstreamTimeout   ErrorKind = "UPSTREAM_TIMEOUT"
)

// ErrEmptyMessage is returned for a message with no visible text
var ErrEmptyMessage = errors.New("message must not be empty")

// UpstreamError is returned by providers for any failed outbound call.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Reason     string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewHTTPError(provider string, statusCode int, reason string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Kind: KindUpstreamHTTP, StatusCode: statusCode, Reason: reason, Err: err}
}

func NewMalformedError(provider, reason string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Kind: KindUpstreamMalformed, Reason: reason, Err: err}
}

func NewTimeoutError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Kind: KindUpstreamTimeout, Reason: "request timed out", Err: err}
}

// NewTransportError classifies an error that happened before any response was read.
func NewTransportError(provider string, err error) *UpstreamError {
	if IsTimeout(err) {
		return NewTimeoutError(provider, err)
	}
	return NewHTTPError(provider, 0, "request failed", err)
}

// IsTimeout reports whether err is a deadline or client timeout
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// KindOf returns the kind of the first UpstreamError in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Kind, true
	}
	return "", false
}
