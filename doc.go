// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpcore provides an asynchronous HTTP request executor with
cancellation, normalized failures, and causal lifecycle telemetry.

Create an Executor to begin making requests. The zero value is ready to
use.

	executor := &httpcore.Executor{}
	r, err := request.New("GET", "https://www.example.com", nil)
	...
	h := executor.Execute(r, checkpoint.Of(r), func(res httpcore.Result) {
		if res.OK() {
			fmt.Println(res.Response.StatusCode)
		}
	})
	...
	h.Cancel()

To wait for the result instead, use Do, or one of the helpers Get,
Head, Post and PostForm:

	res := httpcore.Do(ctx, executor, r, checkpoint.Of(r))
	...
	resp, err := httpcore.Get(ctx, executor, "https://www.example.com")

Every execution produces exactly one terminal Result. A response with
any status code, including 4XX and 5XX, is a success; failures are
normalized to the kinds in package failure.

For control over how requests are sent, set a custom transport. For
example, use a transport.HTTP with a GoLang standard HTTP client and a
fixed timeout:

	executor := &httpcore.Executor{
		Transport: &transport.HTTP{
			Doer:          &http.Client{...},
			TimeoutPolicy: timeout.Fixed(10 * time.Second),
		},
	}

To observe executions, install a Sink. Each lifecycle Event is reported
with the checkpoint at which it occurred, so related events can be
stitched into a causal chain, and with tags built according to the
executor's Policy. A HandlerGroup routes events to per-event chains:

	handlers := &httpcore.HandlerGroup{}
	handlers.PushBack(httpcore.Failed, httpcore.SinkFunc(
		func(o httpcore.Occurrence, cp checkpoint.Checkpoint, _ httpcore.Tags) {
			log.Printf("%s failed at %s: %v", o.Request, cp, o.Failure)
		}),
	)
	executor := &httpcore.Executor{
		Sink: httpcore.MultiSink{handlers, eventlog.New(logger)},
	}

For control over where executions run, set the Queue and DeliveryQueue
using package queue.
*/
package httpcore
