// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"math"
	"testing"
	"time"

	"github.com/gogama/httpcore/request"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, time.Duration(0), DefaultPolicy.Timeout(&request.Request{}))
	assert.Equal(t, 3*time.Second, DefaultPolicy.Timeout(&request.Request{Timeout: 3 * time.Second}))
}

func TestInfinite(t *testing.T) {
	a := Infinite.Timeout(&request.Request{})
	assert.Equal(t, time.Duration(math.MaxInt64), a)
	b := Infinite.Timeout(&request.Request{Timeout: time.Millisecond})
	assert.Equal(t, time.Duration(math.MaxInt64), b)
	assert.False(t, Bounded(a))
}

func TestFixed(t *testing.T) {
	p := Fixed(33 * time.Hour)
	assert.Equal(t, 33*time.Hour, p.Timeout(&request.Request{}))
	assert.Equal(t, 33*time.Hour, p.Timeout(&request.Request{Timeout: time.Second}))
}

func TestFallback(t *testing.T) {
	p := Fallback(5 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, p.Timeout(&request.Request{}))
	assert.Equal(t, 5*time.Millisecond, p.Timeout(&request.Request{Timeout: -1}))
	assert.Equal(t, 10*time.Millisecond, p.Timeout(&request.Request{Timeout: 10 * time.Millisecond}))
}

func TestBounded(t *testing.T) {
	testCases := []struct {
		d        time.Duration
		expected bool
	}{
		{-time.Second, false},
		{0, false},
		{1, true},
		{time.Hour, true},
		{Never, false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.d.String(), func(t *testing.T) {
			assert.Equal(t, testCase.expected, Bounded(testCase.d))
		})
	}
}
