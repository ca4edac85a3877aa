// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"context"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"github.com/gogama/httpcore/checkpoint"
	"github.com/gogama/httpcore/failure"
	"github.com/gogama/httpcore/queue"
	"github.com/gogama/httpcore/request"
	"github.com/gogama/httpcore/transport"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// An Executor runs requests through a Transport, reporting every
// lifecycle event to a Sink and the terminal result to a Completion.
//
// The zero value is a valid Executor which sends requests with
// transport.HTTP, discards events, and runs on concurrent queues. The
// fields must not be changed after the first call to Execute.
//
// An Executor never retries, never rewrites requests, and never treats
// an HTTP status code as a failure: a 404 or 503 response is a
// successful execution.
type Executor struct {
	// Transport issues requests. If Transport is nil, a
	// transport.HTTP using http.DefaultClient is used.
	Transport transport.Transport

	// Sink receives every lifecycle occurrence. If Sink is nil,
	// occurrences are discarded.
	Sink Sink

	// Queue is where each execution starts its transport operation. If
	// Queue is nil, an unlimited queue.Concurrent is used.
	Queue queue.Queue

	// DeliveryQueue is where each execution delivers its terminal
	// result. If DeliveryQueue is nil, an unlimited queue.Concurrent,
	// separate from Queue, is used.
	DeliveryQueue queue.Queue

	// Policy controls the tags attached to each occurrence.
	Policy Policy

	// IDs is the source of the executor's identity, and of the default
	// queues' identities. If IDs is nil, checkpoint.Process is used.
	IDs checkpoint.IDSource

	// Logger receives diagnostic logging. If Logger is nil, nothing is
	// logged.
	Logger *zap.Logger

	once sync.Once
	eng  *engine
}

// engine holds an executor's resolved collaborators.
type engine struct {
	id        uint64
	transport transport.Transport
	sink      Sink
	queue     queue.Queue
	delivery  queue.Queue
	policy    Policy
	logger    *zap.Logger
}

func (e *engine) Identifier() uint64 {
	return e.id
}

func (x *Executor) engine() *engine {
	x.once.Do(func() {
		ids := x.IDs
		if ids == nil {
			ids = checkpoint.Process
		}
		eng := &engine{
			id:        ids.NextID(),
			transport: x.Transport,
			sink:      x.Sink,
			queue:     x.Queue,
			delivery:  x.DeliveryQueue,
			policy:    x.Policy,
			logger:    x.Logger,
		}
		if eng.transport == nil {
			eng.transport = &transport.HTTP{}
		}
		if eng.sink == nil {
			eng.sink = NopSink
		}
		if eng.queue == nil {
			eng.queue = queue.NewConcurrent(ids, 0)
		}
		if eng.delivery == nil {
			eng.delivery = queue.NewConcurrent(ids, 0)
		}
		if eng.logger == nil {
			eng.logger = zap.NewNop()
		}
		x.eng = eng
	})
	return x.eng
}

// Identifier returns the executor's identity, which tags the
// checkpoints of the Started event and of result delivery.
func (x *Executor) Identifier() uint64 {
	return x.engine().id
}

// Execute starts executing r and returns a handle which can cancel the
// execution.
//
// The Created event is emitted, tagged with cp, before Execute returns.
// Everything else happens asynchronously: the execution is scheduled
// onto the executor's Queue, where the Started event is emitted and the
// request is issued through the transport; the transport's outcome is
// then delivered on the DeliveryQueue, where the terminal event is
// emitted and completion is called, exactly once.
//
// Execute panics if r or completion is nil.
func (x *Executor) Execute(r *request.Request, cp checkpoint.Checkpoint, completion Completion) *Handle {
	if r == nil {
		panic("httpcore: nil request")
	}
	if completion == nil {
		panic("httpcore: nil completion")
	}

	t := &task{
		eng:         x.engine(),
		request:     r,
		handle:      &Handle{},
		completion:  completion,
		executionID: uuid.NewString(),
	}
	t.emit(Occurrence{Event: Created, Request: r, Time: time.Now()}, cp)
	t.eng.queue.Schedule(cp, t.start)
	return t.handle
}

// task is the state of one execution.
type task struct {
	eng         *engine
	request     *request.Request
	handle      *Handle
	completion  Completion
	executionID string
	outcomes    atomix.Uint32
}

func (t *task) start(info queue.Info) {
	cp := info.Checkpoint.Next(t.eng)
	t.emit(Occurrence{Event: Started, Request: t.request, Time: time.Now()}, cp)

	if t.handle.Cancelled() {
		t.eng.logger.Debug("execution cancelled before issue",
			zap.Uint64("request_id", t.request.ID),
			zap.Stringer("checkpoint", cp))
		t.receive(cp, transport.Outcome{Err: context.Canceled})
		return
	}

	t.eng.logger.Debug("issuing request",
		zap.Uint64("request_id", t.request.ID),
		zap.String("method", t.request.Method),
		zap.Stringer("checkpoint", cp))
	op := t.eng.transport.Issue(t.request, func(o transport.Outcome) {
		t.receive(cp, o)
	})
	if op == nil {
		op = transport.Nop
	}
	t.handle.bind(op)
}

// receive accepts the first transport outcome and hops to the delivery
// queue. Later outcomes are dropped.
func (t *task) receive(cp checkpoint.Checkpoint, o transport.Outcome) {
	if n := t.outcomes.Add(1); n != 1 {
		t.eng.logger.Warn("dropping duplicate transport outcome",
			zap.Uint64("request_id", t.request.ID),
			zap.Uint32("outcome", n),
			zap.Error(o.Err))
		return
	}
	t.eng.delivery.Schedule(cp, func(info queue.Info) {
		t.deliver(info.Checkpoint.Next(t.eng), o)
	})
}

func (t *task) deliver(cp checkpoint.Checkpoint, o transport.Outcome) {
	now := time.Now()

	if o.Err != nil {
		e := failure.Map(o.Err)
		if e.Kind == failure.Cancelled {
			t.fail(Cancelled, e, cp, now)
		} else {
			t.fail(Failed, e, cp, now)
		}
		return
	}

	if o.Head == nil || o.Head.StatusCode < 100 || o.Head.StatusCode > 999 {
		t.fail(Failed, failure.Map(failure.ErrInvalidResponse), cp, now)
		return
	}

	header := o.Head.Header
	if header == nil {
		header = request.Header{}
	}
	resp := request.NewResponse(t.request, o.Head.StatusCode, header, o.Body)
	t.emit(Occurrence{Event: ResponseReceived, Request: t.request, Response: resp, Time: now}, cp)
	t.emit(Occurrence{Event: Succeeded, Request: t.request, Response: resp, Time: now}, cp)
	t.completion(Result{Response: resp, Checkpoint: cp})
}

func (t *task) fail(evt Event, e failure.Error, cp checkpoint.Checkpoint, now time.Time) {
	info := &failure.Info{Err: e, Checkpoint: cp, Time: now}
	t.emit(Occurrence{Event: evt, Request: t.request, Failure: info, Time: now}, cp)
	t.completion(Result{Checkpoint: cp, Failure: info})
}

func (t *task) emit(o Occurrence, cp checkpoint.Checkpoint) {
	t.eng.sink.Sink(o, cp, t.eng.policy.Tags(o, t.executionID))
}
