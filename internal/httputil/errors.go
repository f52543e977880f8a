// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"errors"
	"fmt"
)

// Kind classifies why an upstream call failed.
type Kind int

const (
	// KindTransport covers connection failures: DNS, refused, reset, TLS.
	KindTransport Kind = iota
	// KindTimeout means the client timeout or context deadline expired.
	KindTimeout
	// KindStatus means the server answered with a non-200 status.
	KindStatus
	// KindMalformed means the body could not be decoded.
	KindMalformed
	// KindAPI means the body decoded but reported an error of its own.
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindStatus:
		return "http_status"
	case KindMalformed:
		return "malformed_body"
	case KindAPI:
		return "api_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels matched by errors.Is against an *Error of the same Kind.
var (
	ErrTransport = errors.New("transport failure")
	ErrTimeout   = errors.New("request timed out")
	ErrStatus    = errors.New("unexpected HTTP status")
	ErrMalformed = errors.New("malformed response body")
	ErrAPI       = errors.New("upstream API error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindTimeout:
		return ErrTimeout
	case KindStatus:
		return ErrStatus
	case KindMalformed:
		return ErrMalformed
	case KindAPI:
		return ErrAPI
	default:
		return ErrTransport
	}
}

// Error is a typed upstream failure. Op names the call ("esearch",
// "esummary") so a log line identifies which stage failed.
type Error struct {
	Op         string
	Kind       Kind
	StatusCode int    // set for KindStatus
	Message    string // set for KindAPI
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	case KindAPI:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the Kind of err and true if err wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsTimeout returns true if err is an upstream timeout.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }

// IsStatus returns true if err is a non-200 upstream response.
func IsStatus(err error) bool { return errors.Is(err, ErrStatus) }

// IsMalformed returns true if err is an undecodable upstream body.
func IsMalformed(err error) bool { return errors.Is(err, ErrMalformed) }
