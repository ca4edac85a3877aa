// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"

	"github.com/gogama/httpcore/failure"
)

// ContentTypeJSON is the Content-Type set by SetJSONBody.
const ContentTypeJSON = "application/json"

// SetJSONBody replaces the request body with the JSON encoding of v and
// sets the Content-Type header field to application/json.
//
// If v cannot be encoded, the request is left untouched and the
// returned error is a failure.Error of kind failure.JSON.
func (r *Request) SetJSONBody(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return failure.NewJSON(err)
	}
	if r.Header == nil {
		r.Header = make(Header)
	}
	r.Body = b
	r.Header.Set("Content-Type", ContentTypeJSON)
	return nil
}

// DecodeJSONBody decodes the request body into v. It returns false,
// leaving v untouched, if the body is empty.
func (r *Request) DecodeJSONBody(v interface{}) (bool, error) {
	if len(r.Body) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return false, failure.NewJSON(err)
	}
	return true, nil
}

// DecodeJSON decodes the response body into v. Unlike a request body,
// an empty response body is not valid JSON and results in an error.
func (r *Response) DecodeJSON(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return failure.NewJSON(err)
	}
	return nil
}
