// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"sync"
	"testing"

	"github.com/gogama/httpcore/checkpoint"
	"github.com/gogama/httpcore/queue"
	"github.com/gogama/httpcore/request"
	"github.com/gogama/httpcore/transport"
	"github.com/stretchr/testify/require"
)

type record struct {
	o    Occurrence
	cp   checkpoint.Checkpoint
	tags Tags
}

type recordingSink struct {
	mu      sync.Mutex
	records []record
}

func (s *recordingSink) Sink(o Occurrence, cp checkpoint.Checkpoint, tags Tags) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record{o, cp, tags})
}

func (s *recordingSink) all() []record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]record(nil), s.records...)
}

func (s *recordingSink) kinds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]string, len(s.records))
	for i := range s.records {
		kinds[i] = s.records[i].o.Kind()
	}
	return kinds
}

func (s *recordingSink) forRequest(id uint64) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var evts []Event
	for _, rec := range s.records {
		if rec.o.Request.ID == id {
			evts = append(evts, rec.o.Event)
		}
	}
	return evts
}

// manualQueue holds scheduled tasks until the test runs them.
type manualQueue struct {
	id      uint64
	mu      sync.Mutex
	pending []func()
}

func (q *manualQueue) Identifier() uint64 {
	return q.id
}

func (q *manualQueue) Schedule(cp checkpoint.Checkpoint, task queue.Task) {
	q.mu.Lock()
	defer q.mu.Unlock()
	info := queue.Info{Checkpoint: cp.Next(q)}
	q.pending = append(q.pending, func() { task(info) })
}

func (q *manualQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *manualQueue) runAll() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		f := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()
		f()
	}
}

// newInlineExecutor returns an executor which runs everything on the
// calling goroutine. Its queues have identities 1 and 2 and the
// executor itself has identity 3.
func newInlineExecutor(tr transport.Transport) (*Executor, *recordingSink) {
	ids := checkpoint.NewCounter()
	s := &recordingSink{}
	x := &Executor{
		Transport:     tr,
		Sink:          s,
		Queue:         queue.NewInline(ids),
		DeliveryQueue: queue.NewInline(ids),
		IDs:           ids,
	}
	return x, s
}

func outcomeTransport(o transport.Outcome) transport.Transport {
	return transport.Func(func(_ *request.Request, done func(transport.Outcome)) transport.Operation {
		done(o)
		return transport.Nop
	})
}

func newRequest(t *testing.T, method, url string) *request.Request {
	r, err := request.NewWithIDs(checkpoint.NewCounter(), method, url, nil)
	require.NoError(t, err)
	return r
}

type completionRecorder struct {
	mu      sync.Mutex
	results []Result
}

func (c *completionRecorder) complete(res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, res)
}

func (c *completionRecorder) all() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Result(nil), c.results...)
}
