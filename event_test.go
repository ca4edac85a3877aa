// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, eventKinds, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, Created, events[Created])
	assert.Equal(t, Started, events[Started])
	assert.Equal(t, ResponseReceived, events[ResponseReceived])
	assert.Equal(t, Succeeded, events[Succeeded])
	assert.Equal(t, Failed, events[Failed])
	assert.Equal(t, Cancelled, events[Cancelled])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "Created", Created.Name())
	assert.Equal(t, "Started", Started.Name())
	assert.Equal(t, "ResponseReceived", ResponseReceived.Name())
	assert.Equal(t, "Succeeded", Succeeded.String())
	assert.Equal(t, "Failed", Failed.String())
	assert.Equal(t, "Cancelled", Cancelled.String())
}

func TestEvent_Kind(t *testing.T) {
	assert.Equal(t, "HTTPEvent_created", Created.Kind())
	assert.Equal(t, "HTTPEvent_started", Started.Kind())
	assert.Equal(t, "HTTPEvent_received", ResponseReceived.Kind())
	assert.Equal(t, "HTTPEvent_succeeded", Succeeded.Kind())
	assert.Equal(t, "HTTPEvent_failed", Failed.Kind())
	assert.Equal(t, "HTTPEvent_cancelled", Cancelled.Kind())
	assert.Equal(t, "HTTPEvent_failed", Occurrence{Event: Failed}.Kind())
}

func TestEvent_Terminal(t *testing.T) {
	for _, evt := range Events() {
		expected := evt == Succeeded || evt == Failed || evt == Cancelled
		assert.Equal(t, expected, evt.Terminal(), evt.Name())
		assert.True(t, evt.valid())
	}
	assert.False(t, Event(-1).valid())
	assert.False(t, eventSentinel.valid())
}
