// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"github.com/gogama/httpcore/checkpoint"
	"github.com/gogama/httpcore/failure"
	"github.com/gogama/httpcore/request"
)

// A Result is the terminal result of an execution. Exactly one of
// Response and Failure is non-nil.
type Result struct {
	// Response is the response, if the execution succeeded.
	Response *request.Response
	// Checkpoint is the checkpoint at which the result was delivered.
	// For a failure it equals Failure.Checkpoint.
	Checkpoint checkpoint.Checkpoint
	// Failure describes why the execution failed or was cancelled.
	Failure *failure.Info
}

// OK reports whether the execution succeeded.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Err returns the failure as an error, or nil if the execution
// succeeded.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// A Completion receives the terminal result of an execution. It is
// called exactly once, on the executor's delivery queue, after the
// terminal event has been handed to the sink.
type Completion func(Result)
