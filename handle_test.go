// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gogama/httpcore/internal/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type countingOp struct {
	n int32
}

func (op *countingOp) Cancel() {
	atomic.AddInt32(&op.n, 1)
}

func TestHandle(t *testing.T) {
	t.Run("cancel before bind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		op := mocks.NewMockOperation(ctrl)
		h := &Handle{}
		h.Cancel()
		assert.True(t, h.Cancelled())
		op.EXPECT().Cancel().Times(1)
		h.bind(op)
		h.Cancel()
	})
	t.Run("bind before cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		op := mocks.NewMockOperation(ctrl)
		h := &Handle{}
		h.bind(op)
		assert.False(t, h.Cancelled())
		op.EXPECT().Cancel().Times(1)
		h.Cancel()
		h.Cancel()
		assert.True(t, h.Cancelled())
	})
	t.Run("never cancelled", func(t *testing.T) {
		op := &countingOp{}
		h := &Handle{}
		h.bind(op)
		assert.Equal(t, int32(0), op.n)
		assert.False(t, h.Cancelled())
	})
	t.Run("double bind", func(t *testing.T) {
		h := &Handle{}
		h.bind(&countingOp{})
		assert.PanicsWithValue(t, "httpcore: handle already bound", func() {
			h.bind(&countingOp{})
		})
	})
	t.Run("cancel may reenter handle", func(t *testing.T) {
		h := &Handle{}
		var cancelled bool
		h.bind(opFunc(func() { cancelled = h.Cancelled() }))
		h.Cancel()
		assert.True(t, cancelled)
	})
	t.Run("interleavings", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(1))
		for i := 0; i < 2000; i++ {
			op := &countingOp{}
			h := &Handle{}
			cancellers := 1 + rnd.Intn(3)
			spinBind := rnd.Intn(50)
			spinCancel := rnd.Intn(50)
			var wg sync.WaitGroup
			wg.Add(1 + cancellers)
			go func() {
				defer wg.Done()
				spin(spinBind)
				h.bind(op)
			}()
			for c := 0; c < cancellers; c++ {
				go func() {
					defer wg.Done()
					spin(spinCancel)
					h.Cancel()
				}()
			}
			wg.Wait()
			if !assert.Equal(t, int32(1), atomic.LoadInt32(&op.n), "iteration %d", i) {
				return
			}
		}
	})
}

type opFunc func()

func (f opFunc) Cancel() { f() }

func spin(n int) {
	for i := 0; i < n; i++ {
		runtime.Gosched()
	}
}
