// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package eventlog

import (
	"testing"
	"time"

	"github.com/gogama/httpcore"
	"github.com/gogama/httpcore/checkpoint"
	"github.com/gogama/httpcore/failure"
	"github.com/gogama/httpcore/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSink(t *testing.T) {
	r := &request.Request{ID: 11, Method: "GET"}
	cp := checkpoint.Checkpoint{EntityID: 3, Seq: 2}
	tags := httpcore.Tags{"http.method": "GET", "http.request_id": "11"}
	now := time.Now()
	fail := &failure.Info{Err: failure.New(failure.Timeout, ""), Checkpoint: cp, Time: now}

	testCases := []struct {
		name  string
		o     httpcore.Occurrence
		level zapcore.Level
	}{
		{"created", httpcore.Occurrence{Event: httpcore.Created, Request: r, Time: now}, zapcore.DebugLevel},
		{"succeeded", httpcore.Occurrence{Event: httpcore.Succeeded, Request: r, Response: &request.Response{RequestID: 11}, Time: now}, zapcore.DebugLevel},
		{"failed", httpcore.Occurrence{Event: httpcore.Failed, Request: r, Failure: fail, Time: now}, zapcore.WarnLevel},
		{"cancelled", httpcore.Occurrence{Event: httpcore.Cancelled, Request: r, Failure: fail, Time: now}, zapcore.WarnLevel},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			New(zap.New(core)).Sink(testCase.o, cp, tags)

			entries := logs.All()
			require.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, testCase.level, e.Level)
			assert.Equal(t, testCase.o.Kind(), e.Message)
			m := e.ContextMap()
			assert.Equal(t, testCase.o.Event.Name(), m["event"])
			assert.Equal(t, "3/2", m["checkpoint"])
			assert.Equal(t, uint64(11), m["request_id"])
			assert.Equal(t, "GET", m["http.method"])
			assert.Equal(t, "11", m["http.request_id"])
			if testCase.o.Failure != nil {
				assert.Equal(t, "httpcore: timeout", m["error"])
			} else {
				assert.NotContains(t, m, "error")
			}
		})
	}
}

func TestSink_LevelFilter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(zap.New(core))
	r := &request.Request{ID: 1}
	s.Sink(httpcore.Occurrence{Event: httpcore.Started, Request: r}, checkpoint.Checkpoint{}, nil)
	assert.Equal(t, 0, logs.Len())
	s.Sink(httpcore.Occurrence{Event: httpcore.Failed, Request: r, Failure: &failure.Info{}}, checkpoint.Checkpoint{}, nil)
	assert.Equal(t, 1, logs.Len())
}

func TestNew_NilLogger(t *testing.T) {
	s := New(nil)
	assert.NotPanics(t, func() {
		s.Sink(httpcore.Occurrence{Event: httpcore.Created, Request: &request.Request{}}, checkpoint.Checkpoint{}, nil)
	})
}

func TestFields(t *testing.T) {
	fields := Fields(httpcore.Occurrence{Event: httpcore.Started}, checkpoint.Checkpoint{}, httpcore.Tags{"b": "2", "a": "1"})
	require.Len(t, fields, 5)
	assert.Equal(t, "a", fields[3].Key)
	assert.Equal(t, "b", fields[4].Key)
}
