// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"math"
	"time"

	"github.com/gogama/httpcore/request"
)

// A Policy decides the timeout for a transport operation.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to apply to the transport operation
	// carrying r. A zero or negative return value, or any value equal
	// to Never, means the operation has no deadline.
	Timeout(r *request.Request) time.Duration
}

// Never is the duration returned by the Infinite policy.
const Never = time.Duration(math.MaxInt64)

// DefaultPolicy is the timeout policy used by the HTTP transport when
// none is configured.
var DefaultPolicy Policy = FromRequest

// FromRequest is a policy which returns the request's own Timeout. A
// request with a zero Timeout has no deadline.
var FromRequest Policy = PolicyFunc(func(r *request.Request) time.Duration {
	return r.Timeout
})

// Infinite is a policy which never times out.
var Infinite Policy = Fixed(Never)

// Fixed constructs a timeout policy that always returns d, ignoring the
// request's own Timeout.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

// Fallback constructs a timeout policy that returns the request's own
// Timeout when it is positive, and d otherwise.
func Fallback(d time.Duration) Policy {
	return PolicyFunc(func(r *request.Request) time.Duration {
		if r.Timeout > 0 {
			return r.Timeout
		}
		return d
	})
}

// Bounded reports whether d, as returned by a Policy, imposes a
// deadline.
func Bounded(d time.Duration) bool {
	return d > 0 && d != Never
}

// PolicyFunc adapts an ordinary function to the Policy interface.
type PolicyFunc func(r *request.Request) time.Duration

// Timeout returns f(r).
func (f PolicyFunc) Timeout(r *request.Request) time.Duration {
	return f(r)
}

type fixed time.Duration

func (f fixed) Timeout(_ *request.Request) time.Duration {
	return time.Duration(f)
}
