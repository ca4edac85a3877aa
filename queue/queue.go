// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package queue

import "github.com/gogama/httpcore/checkpoint"

// Info describes the context a task runs in.
type Info struct {
	// Checkpoint is the scheduling checkpoint advanced to the queue's
	// identity.
	Checkpoint checkpoint.Checkpoint
}

// A Task is a unit of work scheduled onto a Queue.
type Task func(info Info)

// A Queue is an execution context onto which tasks can be scheduled.
//
// Implementations of Queue must be safe for concurrent use by multiple
// goroutines.
type Queue interface {
	checkpoint.Entity

	// Schedule arranges for task to run, exactly once, with cp
	// advanced to the queue's identity. Whether the task runs before
	// Schedule returns depends on the implementation.
	Schedule(cp checkpoint.Checkpoint, task Task)
}

const nilTaskMsg = "httpcore/queue: nil task"

func info(q checkpoint.Entity, cp checkpoint.Checkpoint) Info {
	return Info{Checkpoint: cp.Next(q)}
}

func ids(s checkpoint.IDSource) checkpoint.IDSource {
	if s == nil {
		return checkpoint.Process
	}
	return s
}

// Inline is a Queue which runs each task on the calling goroutine
// before Schedule returns.
type Inline struct {
	id uint64
}

// NewInline returns an Inline queue whose identity is drawn from s, or
// from checkpoint.Process if s is nil.
func NewInline(s checkpoint.IDSource) *Inline {
	return &Inline{id: ids(s).NextID()}
}

// Identifier returns the queue's identity.
func (q *Inline) Identifier() uint64 {
	return q.id
}

// Schedule runs task immediately.
func (q *Inline) Schedule(cp checkpoint.Checkpoint, task Task) {
	if task == nil {
		panic(nilTaskMsg)
	}
	task(info(q, cp))
}
