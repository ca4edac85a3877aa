// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"context"
	"net/url"

	"github.com/gogama/httpcore/checkpoint"
	"github.com/gogama/httpcore/request"
)

// A Client executes requests asynchronously.
//
// Client is implemented by *Executor. Code which executes requests
// should depend on Client, so that a fake can stand in for an
// Executor in tests.
type Client interface {
	// Execute starts executing r, tagging the Created event with cp,
	// and returns a handle which can cancel the execution. The
	// completion function is called exactly once with the terminal
	// result.
	Execute(r *request.Request, cp checkpoint.Checkpoint, completion Completion) *Handle
}

// Do executes r with c and waits for the terminal result.
//
// If ctx ends first, the execution is cancelled and Do goes on waiting
// for the terminal result, which is usually, but not necessarily, a
// cancellation. Do never abandons an execution.
func Do(ctx context.Context, c Client, r *request.Request, cp checkpoint.Checkpoint) Result {
	ch := make(chan Result, 1)
	h := c.Execute(r, cp, func(res Result) {
		ch <- res
	})

	select {
	case res := <-ch:
		return res
	case <-ctx.Done():
		h.Cancel()
		return <-ch
	}
}

// Get issues a GET to the specified URL using c and waits for the
// response. The causal chain starts at the request.
//
// A non-nil error is returned if the URL is not valid or if the
// execution failed. A response with a 4XX or 5XX status code is not an
// error.
func Get(ctx context.Context, c Client, url string) (*request.Response, error) {
	r, err := request.New(request.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return do(ctx, c, r)
}

// Head issues a HEAD to the specified URL using c and waits for the
// response.
func Head(ctx context.Context, c Client, url string) (*request.Response, error) {
	r, err := request.New(request.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	return do(ctx, c, r)
}

// Post issues a POST to the specified URL using c and waits for the
// response. The body may be any type accepted by request.BodyBytes.
func Post(ctx context.Context, c Client, url, contentType string, body interface{}) (*request.Response, error) {
	r, err := request.New(request.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", contentType)
	return do(ctx, c, r)
}

// PostForm issues a POST to the specified URL using c, with data's keys
// and values URL-encoded as the request body, and waits for the
// response.
func PostForm(ctx context.Context, c Client, url string, data url.Values) (*request.Response, error) {
	return Post(ctx, c, url, "application/x-www-form-urlencoded", data)
}

func do(ctx context.Context, c Client, r *request.Request) (*request.Response, error) {
	res := Do(ctx, c, r, checkpoint.Of(r))
	return res.Response, res.Err()
}
