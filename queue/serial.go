// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"github.com/gogama/httpcore/checkpoint"
)

// DefaultSerialCapacity is the ring capacity used by NewSerial when a
// non-positive capacity is requested.
const DefaultSerialCapacity = 256

const closedMsg = "httpcore/queue: schedule on closed serial queue"

type entry struct {
	info Info
	task Task
}

// Serial is a Queue which runs tasks one at a time, in the order they
// were scheduled, on a single worker goroutine.
//
// Scheduled tasks wait in a bounded ring. Schedule returns as soon as
// the task is in the ring; if the ring is full, Schedule backs off
// until the worker makes room. A task running on a Serial queue must
// therefore not schedule more work onto the same queue than the ring
// has room for, or it will wait on itself forever.
//
// The ring orders memory with atomics the race detector does not model,
// so builds with -race may report false races between producers and the
// worker.
//
// A Serial queue must be closed with Close when no longer needed.
type Serial struct {
	id   uint64
	ring lfq.SPSC[entry]

	mu     sync.Mutex // serializes producers
	closed bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewSerial returns a running Serial queue whose identity is drawn from
// s, or from checkpoint.Process if s is nil. The ring holds capacity
// waiting tasks, rounded up to a power of two, or
// DefaultSerialCapacity if capacity is not positive.
func NewSerial(s checkpoint.IDSource, capacity int) *Serial {
	if capacity <= 0 {
		capacity = DefaultSerialCapacity
	}
	q := &Serial{
		id:   ids(s).NextID(),
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	q.ring.Init(pow2(capacity))
	go q.work()
	return q
}

// Identifier returns the queue's identity.
func (q *Serial) Identifier() uint64 {
	return q.id
}

// Schedule appends task to the ring. It panics if the queue is closed.
func (q *Serial) Schedule(cp checkpoint.Checkpoint, task Task) {
	if task == nil {
		panic(nilTaskMsg)
	}
	e := entry{info: info(q, cp), task: task}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		panic(closedMsg)
	}
	var bo iox.Backoff
	for {
		err := q.ring.Enqueue(&e)
		if err == nil {
			break
		}
		if !iox.IsWouldBlock(err) {
			panic(err)
		}
		q.signal()
		bo.Wait()
	}
	q.signal()
}

// Close stops accepting tasks, waits for every task already scheduled
// to finish, and stops the worker goroutine. Close is idempotent.
//
// Close must not be called from a task running on q.
func (q *Serial) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.stop)
	}
	q.mu.Unlock()
	<-q.done
}

func (q *Serial) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Serial) work() {
	defer close(q.done)
	for {
		if q.drain() {
			continue
		}
		select {
		case <-q.wake:
		case <-q.stop:
			q.drain()
			return
		}
	}
}

// drain runs every task currently in the ring and reports whether it
// ran any.
func (q *Serial) drain() bool {
	ran := false
	for {
		e, err := q.ring.Dequeue()
		if err != nil {
			return ran
		}
		ran = true
		e.task(e.info)
	}
}

func pow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
