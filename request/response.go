// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Response is the result of a request that reached the server and
// produced a well-formed HTTP response. The status code may be any
// value, including 4XX and 5XX statuses: an error status is still a
// successful execution.
type Response struct {
	// RequestID is the ID of the Request that produced the response.
	RequestID uint64

	// StatusCode is the HTTP status code, for example 200.
	StatusCode int

	// Header contains the response header fields.
	Header Header

	// Body is the complete response body.
	Body []byte
}

// NewResponse constructs the response to r.
func NewResponse(r *Request, statusCode int, header Header, body []byte) *Response {
	return &Response{
		RequestID:  r.ID,
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
	}
}

// Identifier returns the ID of the originating request.
func (r *Response) Identifier() uint64 {
	return r.RequestID
}
