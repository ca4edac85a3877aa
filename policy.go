// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"net/url"
	"strconv"
)

// Tag keys set by the executor.
const (
	TagMethod        = "http.method"
	TagURL           = "http.url"
	TagRequestID     = "http.request_id"
	TagExecutionID   = "http.execution_id"
	TagRequestBytes  = "http.request_bytes"
	TagResponseBytes = "http.response_bytes"
	TagStatus        = "http.status"
	TagErrorKind     = "http.error_kind"
)

// A Policy controls what the executor reveals in the tags it attaches
// to each occurrence. The zero value reveals everything.
type Policy struct {
	// RedactQuery removes the query string and fragment from the
	// http.url tag.
	RedactQuery bool
	// OmitByteCounts leaves out the http.request_bytes and
	// http.response_bytes tags.
	OmitByteCounts bool
}

// Tags builds the tags for an occurrence of the execution identified by
// executionID.
func (p Policy) Tags(o Occurrence, executionID string) Tags {
	r := o.Request
	t := Tags{
		TagMethod:      r.Method,
		TagURL:         p.url(r.URL),
		TagRequestID:   strconv.FormatUint(r.ID, 10),
		TagExecutionID: executionID,
	}
	if !p.OmitByteCounts {
		t[TagRequestBytes] = strconv.Itoa(len(r.Body))
	}
	if resp := o.Response; resp != nil {
		t[TagStatus] = strconv.Itoa(resp.StatusCode)
		if !p.OmitByteCounts {
			t[TagResponseBytes] = strconv.Itoa(len(resp.Body))
		}
	}
	if f := o.Failure; f != nil {
		t[TagErrorKind] = f.Kind().String()
	}
	return t
}

func (p Policy) url(u *url.URL) string {
	if u == nil {
		return ""
	}
	if !p.RedactQuery || (u.RawQuery == "" && u.Fragment == "" && !u.ForceQuery) {
		return u.String()
	}
	u2 := *u
	u2.RawQuery = ""
	u2.ForceQuery = false
	u2.Fragment = ""
	u2.RawFragment = ""
	return u2.String()
}
