// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package queue

import "github.com/gogama/httpcore/checkpoint"

// Concurrent is a Queue which runs each task on its own goroutine.
// Schedule never blocks.
type Concurrent struct {
	id  uint64
	sem chan struct{}
}

// NewConcurrent returns a Concurrent queue whose identity is drawn from
// s, or from checkpoint.Process if s is nil.
//
// If limit is positive, at most limit tasks run at the same time and
// the rest wait their turn. Waiting tasks are not started in any
// particular order. A zero or negative limit means no limit.
func NewConcurrent(s checkpoint.IDSource, limit int) *Concurrent {
	q := &Concurrent{id: ids(s).NextID()}
	if limit > 0 {
		q.sem = make(chan struct{}, limit)
	}
	return q
}

// Identifier returns the queue's identity.
func (q *Concurrent) Identifier() uint64 {
	return q.id
}

// Schedule starts a goroutine to run task.
func (q *Concurrent) Schedule(cp checkpoint.Checkpoint, task Task) {
	if task == nil {
		panic(nilTaskMsg)
	}
	i := info(q, cp)
	go func() {
		if q.sem != nil {
			q.sem <- struct{}{}
			defer func() { <-q.sem }()
		}
		task(i)
	}()
}
