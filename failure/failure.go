// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package failure

import (
	"context"
	"encoding/json"
	"errors"
	"syscall"
	"time"

	"github.com/gogama/httpcore/checkpoint"
)

// A Kind is a normalized failure kind.
type Kind int

const (
	// Transport indicates the underlying transport failed for a reason
	// not covered by a more specific kind, for example a refused
	// connection or a malformed URL. The failure's Description carries
	// the transport's own error text.
	Transport Kind = iota
	// Cancelled indicates the transport operation was cancelled, either
	// through the execution's cancellable handle or by the transport
	// itself.
	Cancelled
	// Timeout indicates the transport operation exceeded its deadline.
	Timeout
	// InvalidResponse indicates the transport completed without error
	// but what it produced cannot be interpreted as an HTTP response.
	InvalidResponse
	// JSON indicates a request or response body could not be encoded,
	// decoded, or parsed as JSON.
	JSON
	// kindSentinel provides the total number of kinds.
	kindSentinel

	numKinds = int(kindSentinel)
)

var kindNames = []string{
	"transport",
	"cancelled",
	"timeout",
	"invalid-response",
	"json",
}

// Kinds returns every failure kind.
func Kinds() []Kind {
	return []Kind{Transport, Cancelled, Timeout, InvalidResponse, JSON}
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Sentinel failure signals. A transport may return these, possibly
// wrapped, to report a cancellation, a deadline expiry, or an
// unintelligible response without depending on the context package or
// on net/http error types.
var (
	ErrCancelled       = errors.New("httpcore/failure: operation cancelled")
	ErrTimeout         = errors.New("httpcore/failure: deadline exceeded")
	ErrInvalidResponse = errors.New("httpcore/failure: invalid response")
)

// An Error is a normalized failure.
type Error struct {
	// Kind is the normalized failure kind.
	Kind Kind
	// Description is a stable human-readable description of the cause.
	// It is set for Transport and JSON failures. It is for diagnostics
	// only; never branch on it.
	Description string

	cause error
}

// New constructs a failure of the given kind with no underlying cause.
func New(k Kind, description string) Error {
	return Error{Kind: k, Description: description}
}

// NewJSON constructs a JSON failure from an encoding, decoding or
// parsing error.
func NewJSON(err error) Error {
	return Error{Kind: JSON, Description: err.Error(), cause: err}
}

// Error returns a message of the form "httpcore: kind" or
// "httpcore: kind: description".
func (e Error) Error() string {
	if e.Description == "" {
		return "httpcore: " + e.Kind.String()
	}
	return "httpcore: " + e.Kind.String() + ": " + e.Description
}

// Unwrap returns the transport error the failure was mapped from, if
// any.
func (e Error) Unwrap() error {
	return e.cause
}

// Info is a terminal failure: the normalized error plus the checkpoint
// and time at which it was detected. Once produced, an Info is
// delivered and never transformed further.
type Info struct {
	Err        Error
	Checkpoint checkpoint.Checkpoint
	Time       time.Time
}

// Kind returns the normalized failure kind.
func (i *Info) Kind() Kind {
	return i.Err.Kind
}

// Error returns the message of the underlying normalized error.
func (i *Info) Error() string {
	return i.Err.Error()
}

// Unwrap returns the underlying normalized error.
func (i *Info) Unwrap() error {
	return i.Err
}

// Map converts a transport failure signal into a normalized failure.
// Map is total and deterministic: every input, including nil, yields
// exactly one kind, and mapping the same input twice yields equal
// results.
//
// The rules are applied in order, looking through wrapped errors:
//
// • an error that already is a normalized Error is returned unchanged;
//
// • context.Canceled or ErrCancelled maps to Cancelled;
//
// • context.DeadlineExceeded, ErrTimeout, or an error with a Timeout()
// method reporting true maps to Timeout;
//
// • ErrInvalidResponse maps to InvalidResponse;
//
// • an encoding/json error maps to JSON;
//
// • anything else, including nil, maps to Transport.
func Map(err error) Error {
	if err == nil {
		return Error{Kind: Transport, Description: "unknown transport failure"}
	}

	var e Error
	if errors.As(err, &e) {
		return e
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, ErrCancelled) {
		return Error{Kind: Cancelled, cause: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrTimeout) {
		return Error{Kind: Timeout, cause: err}
	}
	var te hasTimeout
	if errors.As(err, &te) && te.Timeout() {
		return Error{Kind: Timeout, cause: err}
	}

	if errors.Is(err, ErrInvalidResponse) {
		return Error{Kind: InvalidResponse, cause: err}
	}

	if isJSON(err) {
		return NewJSON(err)
	}

	return Error{Kind: Transport, Description: err.Error(), cause: err}
}

// Retryable reports whether a new attempt after the failure e has a
// reasonable prospect of success. Timeouts are retryable, as are
// transport failures caused by the remote host refusing or resetting
// the connection (which commonly happens while a service restarts or
// behind a load balancer). Nothing else is.
//
// The executor never consults Retryable; it exists for callers that
// implement their own retry policy.
func Retryable(e Error) bool {
	switch e.Kind {
	case Timeout:
		return true
	case Transport:
		var errno syscall.Errno
		if errors.As(e.cause, &errno) {
			return errno == syscall.ECONNRESET || errno == syscall.ECONNREFUSED
		}
	}
	return false
}

type hasTimeout interface {
	Timeout() bool
}

func isJSON(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var marshalerErr *json.MarshalerError
	var unsupportedTypeErr *json.UnsupportedTypeError
	var unsupportedValueErr *json.UnsupportedValueError
	var invalidUnmarshalErr *json.InvalidUnmarshalError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &marshalerErr) ||
		errors.As(err, &unsupportedTypeErr) ||
		errors.As(err, &unsupportedValueErr) ||
		errors.As(err, &invalidUnmarshalErr)
}
