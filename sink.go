// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import "github.com/gogama/httpcore/checkpoint"

// Tags are extra key/value pairs attached to an occurrence for
// telemetry. The executor builds them according to its Policy.
type Tags map[string]string

// A Sink receives lifecycle occurrences from an executor.
//
// Implementations of Sink must be safe for concurrent use by multiple
// goroutines, must not panic, and should return promptly: the executor
// calls the sink on its own goroutines and waits for it before
// carrying on with the execution.
type Sink interface {
	Sink(o Occurrence, cp checkpoint.Checkpoint, tags Tags)
}

// The SinkFunc type is an adapter to allow the use of ordinary
// functions as sinks.
type SinkFunc func(o Occurrence, cp checkpoint.Checkpoint, tags Tags)

// Sink calls f(o, cp, tags).
func (f SinkFunc) Sink(o Occurrence, cp checkpoint.Checkpoint, tags Tags) {
	f(o, cp, tags)
}

// NopSink discards every occurrence.
var NopSink Sink = SinkFunc(func(Occurrence, checkpoint.Checkpoint, Tags) {})

// A MultiSink fans every occurrence out to each of its sinks in order.
// Nil entries are skipped.
type MultiSink []Sink

// Sink passes the occurrence to every sink in m.
func (m MultiSink) Sink(o Occurrence, cp checkpoint.Checkpoint, tags Tags) {
	for _, s := range m {
		if s != nil {
			s.Sink(o, cp, tags)
		}
	}
}

// A HandlerGroup is a Sink which routes each occurrence to a chain of
// sinks installed for its event.
//
// Install handlers before handing the group to an executor. PushBack is
// not safe to call concurrently with Sink.
type HandlerGroup struct {
	handlers [][]Sink
}

// PushBack adds a sink to the back of the chain for a specific event.
func (g *HandlerGroup) PushBack(evt Event, h Sink) {
	if h == nil {
		panic("httpcore: nil handler")
	}
	if !evt.valid() {
		panic("httpcore: unknown event")
	}

	if g.handlers == nil {
		g.handlers = make([][]Sink, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

// Sink runs the chain installed for o.Event, if any.
func (g *HandlerGroup) Sink(o Occurrence, cp checkpoint.Checkpoint, tags Tags) {
	i := int(o.Event)
	if i >= 0 && i < len(g.handlers) {
		run(g.handlers[i], o, cp, tags)
	}
}

func run(chain []Sink, o Occurrence, cp checkpoint.Checkpoint, tags Tags) {
	for _, h := range chain {
		h.Sink(o, cp, tags)
	}
}
