// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"time"

	"github.com/gogama/httpcore/failure"
	"github.com/gogama/httpcore/request"
)

// An Event identifies a lifecycle event in a request execution. Every
// event which occurs is handed to the executor's Sink as an Occurrence.
type Event int

const (
	// Created identifies the event that occurs when Execute accepts a
	// request, before anything is scheduled.
	//
	// The Created occurrence carries the caller's checkpoint and the
	// request.
	Created Event = iota
	// Started identifies the event that occurs when the execution's
	// first task runs on the executor's Queue, before the transport is
	// consulted.
	Started
	// ResponseReceived identifies the event that occurs when the
	// transport has produced a well-formed response. Its occurrence
	// carries the request and the response.
	//
	// Note that ResponseReceived fires for every well-formed response
	// regardless of its status code. A 500 response is still a
	// response.
	ResponseReceived
	// Succeeded identifies the terminal event of a successful
	// execution. It always immediately follows ResponseReceived, with
	// the same response and checkpoint.
	Succeeded
	// Failed identifies the terminal event of a failed execution. Its
	// occurrence carries the failure.
	Failed
	// Cancelled identifies the terminal event of a cancelled execution.
	Cancelled
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

// KindPrefix prefixes every event kind string.
const KindPrefix = "HTTPEvent"

var eventNames = []string{
	"Created",
	"Started",
	"ResponseReceived",
	"Succeeded",
	"Failed",
	"Cancelled",
}

var eventKinds = []string{
	KindPrefix + "_created",
	KindPrefix + "_started",
	KindPrefix + "_received",
	KindPrefix + "_succeeded",
	KindPrefix + "_failed",
	KindPrefix + "_cancelled",
}

// Events returns a slice containing all events which can occur in a
// request execution, in the order in which they would occur.
func Events() []Event {
	return []Event{
		Created,
		Started,
		ResponseReceived,
		Succeeded,
		Failed,
		Cancelled,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}

// Kind returns the stable telemetry kind string for the event, for
// example "HTTPEvent_received" for ResponseReceived.
func (evt Event) Kind() string {
	return eventKinds[int(evt)]
}

// Terminal reports whether the event ends an execution.
func (evt Event) Terminal() bool {
	return evt == Succeeded || evt == Failed || evt == Cancelled
}

func (evt Event) valid() bool {
	return evt >= 0 && int(evt) < numEvents
}

// An Occurrence is one lifecycle event of one execution.
type Occurrence struct {
	// Event identifies what happened.
	Event Event
	// Request is the request being executed. It is always set.
	Request *request.Request
	// Response is set for ResponseReceived and Succeeded.
	Response *request.Response
	// Failure is set for Failed and Cancelled.
	Failure *failure.Info
	// Time is when the event occurred.
	Time time.Time
}

// Kind returns o.Event.Kind().
func (o Occurrence) Kind() string {
	return o.Event.Kind()
}
