// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"sync"

	"github.com/gogama/httpcore/transport"
)

// A Handle is the caller's grip on one execution. It is returned by
// Execute before any work is scheduled.
//
// Cancel may be called at any time, from any goroutine, any number of
// times. If the transport operation has not been started yet when
// Cancel is called, it is cancelled the moment it starts, or not
// started at all. Cancellation is best effort: an execution whose
// transport has already produced a response may still succeed.
type Handle struct {
	mu        sync.Mutex
	op        transport.Operation
	cancelled bool
}

// Cancel requests cancellation of the execution.
func (h *Handle) Cancel() {
	h.mu.Lock()
	if h.cancelled {
		h.mu.Unlock()
		return
	}
	h.cancelled = true
	op := h.op
	h.mu.Unlock()

	if op != nil {
		op.Cancel()
	}
}

// Cancelled reports whether Cancel has been called.
func (h *Handle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}

// bind attaches the execution's transport operation. If the handle was
// already cancelled, op is cancelled immediately.
func (h *Handle) bind(op transport.Operation) {
	h.mu.Lock()
	if h.op != nil {
		h.mu.Unlock()
		panic("httpcore: handle already bound")
	}
	h.op = op
	cancelled := h.cancelled
	h.mu.Unlock()

	if cancelled {
		op.Cancel()
	}
}
