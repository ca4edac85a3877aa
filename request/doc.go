// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the value types exchanged with an httpcore
executor: Request, which describes one HTTP call, and Response, which
describes its successful result.

For those familiar with the Go standard HTTP library, net/http, a
Request looks like a stripped-down http.Request with all server-side
fields removed, the body replaced with a pre-buffered []byte, and a
per-request timeout added. Every Request carries a unique identifier,
drawn from a checkpoint.IDSource when it is constructed, which is
copied onto the Response so the two can be correlated.

Create a request:

	r, err := request.New(request.MethodPost, "https://example.com/upload", body)
	...
	r.Header.Set("Accept", "application/json")
	r.Timeout = 5 * time.Second
	h := executor.Execute(r, checkpoint.Of(r), completion)

A Request must not be modified after it has been handed to an
executor. The executor and its transport read it concurrently with the
caller.

Header is deliberately simpler than http.Header: each name holds a
single value and names are compared exactly as given.
*/
package request
