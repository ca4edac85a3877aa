// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gogama/httpcore/request"
	"github.com/gogama/httpcore/timeout"
	"golang.org/x/net/http/httpguts"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

// HTTPDoer is the interface HTTP uses to send requests. It is
// satisfied by *http.Client.
type HTTPDoer interface {
	Do(r *http.Request) (*http.Response, error)
}

// IdleCloser is implemented by HTTPDoers which can close idle
// connections, like *http.Client.
type IdleCloser interface {
	CloseIdleConnections()
}

// HTTP is a Transport which sends requests through a net/http style
// HTTPDoer and buffers the complete response body.
//
// The zero value is a valid transport which uses http.DefaultClient and
// timeout.DefaultPolicy.
type HTTP struct {
	// Doer specifies the mechanism for sending requests and receiving
	// responses. If Doer is nil, http.DefaultClient is used.
	//
	// Doer must not follow a timeout of its own which is shorter than
	// the timeouts TimeoutPolicy hands out, or timeouts will be
	// reported as ordinary transport failures.
	Doer HTTPDoer

	// TimeoutPolicy specifies how to set the timeout on each
	// operation. If TimeoutPolicy is nil, timeout.DefaultPolicy is
	// used, which honors the request's own Timeout.
	TimeoutPolicy timeout.Policy
}

// Issue sends r on a new goroutine and reports the Outcome to done.
// Cancelling the returned Operation cancels the request context.
func (t *HTTP) Issue(r *request.Request, done func(Outcome)) Operation {
	ctx, cancel := context.WithCancel(context.Background())
	if d := t.timeoutPolicy().Timeout(r); timeout.Bounded(d) {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, d)
		cancelParent := cancel
		cancel = func() {
			cancelTimeout()
			cancelParent()
		}
	}

	doer := t.doer()
	go func() {
		defer cancel()
		done(send(ctx, doer, r))
	}()

	return OperationFunc(cancel)
}

// CloseIdleConnections invokes the same method on the doer if it
// implements IdleCloser.
func (t *HTTP) CloseIdleConnections() {
	if ic, ok := t.doer().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (t *HTTP) doer() HTTPDoer {
	if t.Doer == nil {
		return http.DefaultClient
	}

	return t.Doer
}

func (t *HTTP) timeoutPolicy() timeout.Policy {
	if t.TimeoutPolicy == nil {
		return timeout.DefaultPolicy
	}

	return t.TimeoutPolicy
}

func send(ctx context.Context, doer HTTPDoer, r *request.Request) Outcome {
	req, err := ToHTTPRequest(ctx, r)
	if err != nil {
		return Outcome{Err: err}
	}
	resp, err := doer.Do(req)
	if err != nil {
		return Outcome{Err: urlErrorWrap(ctx, r, err)}
	}
	body, err := readBody(resp)
	if err != nil {
		return Outcome{Err: urlErrorWrap(ctx, r, err)}
	}
	return Outcome{
		Body: body,
		Head: &Head{
			StatusCode: resp.StatusCode,
			Header:     flatten(resp.Header),
		},
	}
}

// ToHTTPRequest translates r into an *http.Request bound to ctx. The
// method, URL, header fields and body are carried over verbatim: header
// names are not canonicalized and no field is defaulted. A Host field,
// matched without regard to case, overrides the host taken from the URL.
//
// An error is returned if r has no URL or if any header name or value
// is not valid on the wire.
func ToHTTPRequest(ctx context.Context, r *request.Request) (*http.Request, error) {
	if r.URL == nil {
		return nil, fmt.Errorf("httpcore/transport: request %d has no URL", r.ID)
	}
	req := template.WithContext(ctx)
	req.Method = r.Method
	req.URL = r.URL
	req.Host = r.URL.Host
	req.Header = make(http.Header, len(r.Header))
	for name, value := range r.Header {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("httpcore/transport: invalid header field name %q", name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, fmt.Errorf("httpcore/transport: invalid header field value for %q", name)
		}
		if strings.EqualFold(name, "Host") {
			req.Host = value
			continue
		}
		req.Header[name] = []string{value}
	}
	if len(r.Body) > 0 {
		body := r.Body
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		req.ContentLength = int64(len(body))
	}
	return req, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}

func flatten(h http.Header) request.Header {
	h2 := make(request.Header, len(h))
	for name, values := range h {
		h2[name] = strings.Join(values, ", ")
	}
	return h2
}

// urlErrorWrap wraps err in a *url.Error, as *http.Client does. If the
// operation context has ended, the context error is recorded in place
// of err, since body read errors after a cancellation or deadline do
// not always say so.
func urlErrorWrap(ctx context.Context, r *request.Request, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = fmt.Errorf("%w: %v", ctxErr, err)
	}

	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(r.Method),
		URL: r.URL.String(),
		Err: err,
	}
}

func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
