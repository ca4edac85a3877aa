// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package eventlog provides an httpcore.Sink which writes every
// lifecycle occurrence to a zap logger as a structured entry.
package eventlog

import (
	"sort"

	"github.com/gogama/httpcore"
	"github.com/gogama/httpcore/checkpoint"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink logs occurrences. Failed and Cancelled occurrences are logged at
// warn level, everything else at debug level. The entry message is the
// occurrence kind, such as "HTTPEvent_started".
type Sink struct {
	logger *zap.Logger
}

// New returns a sink which logs to logger. A nil logger discards
// everything.
func New(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger}
}

// Sink logs o.
func (s *Sink) Sink(o httpcore.Occurrence, cp checkpoint.Checkpoint, tags httpcore.Tags) {
	lvl := zapcore.DebugLevel
	if o.Event == httpcore.Failed || o.Event == httpcore.Cancelled {
		lvl = zapcore.WarnLevel
	}
	ce := s.logger.Check(lvl, o.Kind())
	if ce == nil {
		return
	}
	ce.Write(Fields(o, cp, tags)...)
}

// Fields renders an occurrence as zap fields: the event name, the
// request ID, the checkpoint, the failure if any, and every tag in key
// order.
func Fields(o httpcore.Occurrence, cp checkpoint.Checkpoint, tags httpcore.Tags) []zap.Field {
	fields := make([]zap.Field, 0, 5+len(tags))
	fields = append(fields,
		zap.String("event", o.Event.Name()),
		zap.Stringer("checkpoint", cp),
		zap.Time("time", o.Time),
	)
	if o.Request != nil {
		fields = append(fields, zap.Uint64("request_id", o.Request.ID))
	}
	if o.Failure != nil {
		fields = append(fields, zap.Error(o.Failure))
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.String(k, tags[k]))
	}
	return fields
}
