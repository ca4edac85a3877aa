// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

//go:generate mockgen -destination=../internal/mocks/transport.go -package=mocks github.com/gogama/httpcore/transport Transport,Operation

import "github.com/gogama/httpcore/request"

// Head is the status line and header of an HTTP response.
type Head struct {
	StatusCode int
	Header     request.Header
}

// An Outcome is the result of a transport operation.
//
// An Outcome with a non-nil Err is a failure and its other fields are
// ignored. An Outcome with a nil Err is well-formed only if Head is
// non-nil; a nil Head with a nil Err is treated as an invalid
// response.
type Outcome struct {
	Body []byte
	Head *Head
	Err  error
}

// An Operation is a transport operation in progress.
type Operation interface {
	// Cancel requests that the operation stop. Cancel must be
	// idempotent, must not block, and must be safe to call after the
	// operation has completed. Cancelling an operation which has not
	// yet reported its Outcome should cause it to report a cancellation
	// error, such as context.Canceled, soon after.
	Cancel()
}

// A Transport issues HTTP requests.
//
// Implementations of Transport must be safe for concurrent use by
// multiple goroutines.
type Transport interface {
	// Issue starts an operation for r and returns a handle to it. The
	// request must be transmitted verbatim.
	//
	// Issue must call done exactly once, at some point after it is
	// called, from any goroutine. It may call done before it returns.
	Issue(r *request.Request, done func(Outcome)) Operation
}

// Func adapts an ordinary function to the Transport interface.
type Func func(r *request.Request, done func(Outcome)) Operation

// Issue returns f(r, done).
func (f Func) Issue(r *request.Request, done func(Outcome)) Operation {
	return f(r, done)
}

// OperationFunc adapts an ordinary function to the Operation
// interface. The function itself must be idempotent.
type OperationFunc func()

// Cancel calls f.
func (f OperationFunc) Cancel() {
	f()
}

// Nop is an Operation whose Cancel does nothing. It suits transports
// which complete synchronously inside Issue.
var Nop Operation = OperationFunc(func() {})
