// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"net/http"
	urlpkg "net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gogama/httpcore/checkpoint"
	"golang.org/x/net/http/httpguts"
)

// Standard request methods.
const (
	MethodGet     = http.MethodGet
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodDelete  = http.MethodDelete
	MethodPatch   = http.MethodPatch
	MethodHead    = http.MethodHead
	MethodOptions = http.MethodOptions
)

// Methods returns the standard request methods.
func Methods() []string {
	return []string{
		MethodGet,
		MethodPost,
		MethodPut,
		MethodDelete,
		MethodPatch,
		MethodHead,
		MethodOptions,
	}
}

var validate = validator.New()

// A Request describes one HTTP call.
//
// A Request is a plain value which the caller builds and then hands to
// an executor. Once handed off it must not be modified: the executor
// passes it to the transport verbatim, without defaulting or rewriting
// any field.
type Request struct {
	// ID uniquely identifies the request. It is assigned when the
	// request is constructed and copied onto the Response.
	ID uint64

	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	Method string

	// URL specifies the absolute URL to request.
	URL *urlpkg.URL

	// Header contains the request header fields. New always allocates
	// an empty Header.
	Header Header

	// Body is the pre-buffered request body. A nil or empty Body means
	// the request has no body.
	Body []byte

	// Timeout bounds the transport operation. Zero means the transport
	// applies no timeout of its own choosing beyond what its timeout
	// policy dictates.
	Timeout time.Duration
}

// New constructs a request with an identifier drawn from
// checkpoint.Process.
//
// The body parameter may be nil, a string, a []byte, a url.Values, an
// io.Reader or an io.ReadCloser. See BodyBytes.
func New(method, url string, body interface{}) (*Request, error) {
	return NewWithIDs(checkpoint.Process, method, url, body)
}

// NewWithIDs constructs a request with an identifier drawn from ids.
//
// An empty method means GET. The URL must be absolute.
func NewWithIDs(ids checkpoint.IDSource, method, url string, body interface{}) (*Request, error) {
	if ids == nil {
		panic("httpcore/request: nil id source")
	}
	if method == "" {
		method = MethodGet
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("httpcore/request: invalid method %q", method)
	}
	if err := validate.Var(url, "required,url"); err != nil {
		return nil, fmt.Errorf("httpcore/request: invalid url %q: %w", url, err)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, fmt.Errorf("httpcore/request: invalid url %q: %w", url, err)
	}
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Request{
		ID:     ids.NextID(),
		Method: method,
		URL:    u,
		Header: make(Header),
		Body:   b,
	}, nil
}

type shape struct {
	Method  string `validate:"required"`
	URL     string `validate:"required,url"`
	Timeout int64  `validate:"gte=0"`
}

// Validate checks a request that was built or modified by hand rather
// than through New. It reports an error unless r has a valid method
// token, an absolute URL and a non-negative timeout. Executors do not
// call it. Header fields are checked by the transport when the request
// is issued.
func (r *Request) Validate() error {
	s := shape{Method: r.Method, Timeout: int64(r.Timeout)}
	if r.URL != nil {
		s.URL = r.URL.String()
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("httpcore/request: invalid request %d: %w", r.ID, err)
	}
	if !validMethod(r.Method) {
		return fmt.Errorf("httpcore/request: invalid method %q", r.Method)
	}
	return nil
}

// Identifier returns r.ID, making a Request a checkpoint.Entity from
// which a causal chain can be started.
func (r *Request) Identifier() uint64 {
	return r.ID
}

// String returns a short description such as "GET https://example.com #7".
func (r *Request) String() string {
	u := "<nil>"
	if r.URL != nil {
		u = r.URL.String()
	}
	return r.Method + " " + u + " #" + fmt.Sprint(r.ID)
}

func validMethod(method string) bool {
	return method != "" && strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
