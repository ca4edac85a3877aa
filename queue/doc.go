// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package queue provides the execution contexts an httpcore executor hops
through while running a request: one to start the transport operation,
and one to deliver the terminal result.

Every Queue is a checkpoint.Entity. When a task scheduled at checkpoint
cp runs, it receives cp advanced to the queue's identity, so the causal
chain records each hop.

Three implementations are provided. Concurrent runs each task on its
own goroutine, optionally limiting how many run at once. Serial runs
tasks one at a time, in scheduling order, on a single worker goroutine.
Inline runs each task on the scheduling goroutine before Schedule
returns, which makes tests deterministic.
*/
package queue
