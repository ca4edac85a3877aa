// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transport defines the capability an httpcore executor uses to
move bytes, Transport, together with a default implementation, HTTP,
built on net/http.

A Transport starts one operation per request and reports its Outcome,
exactly once, through a callback that may run on any goroutine. The
returned Operation can be cancelled at any time, including after it
has completed.

Implement Transport directly, or adapt a function with Func, to plug a
different HTTP stack, a recording stub, or an in-memory fake into an
executor.
*/
package transport
