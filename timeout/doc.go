// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package timeout defines the timeout policies used by the HTTP transport
in package transport.

A timeout policy decides how long a single transport operation may run
before it is abandoned with a timeout failure. The executor never
applies timeouts itself: it hands the request to its transport
verbatim, and the transport consults its policy.

The default policy, FromRequest, honors the request's own Timeout
field. Use Fixed to impose the same timeout on every request regardless
of what the request asks for, and Infinite to never time out.
*/
package timeout
