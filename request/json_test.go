// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"testing"

	"github.com/gogama/httpcore/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRequest_SetJSONBody(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		r := &Request{}
		err := r.SetJSONBody(payload{Name: "ham", Count: 2})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"ham","count":2}`, string(r.Body))
		v, ok := r.Header.Get("Content-Type")
		assert.True(t, ok)
		assert.Equal(t, ContentTypeJSON, v)
	})
	t.Run("unsupported value", func(t *testing.T) {
		r := &Request{Body: []byte("keep"), Header: Header{}}
		err := r.SetJSONBody(make(chan int))
		var fe failure.Error
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, failure.JSON, fe.Kind)
		assert.Equal(t, []byte("keep"), r.Body)
		assert.Equal(t, 0, r.Header.Len())
	})
}

func TestRequest_DecodeJSONBody(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var p payload
		ok, err := (&Request{}).DecodeJSONBody(&p)
		assert.False(t, ok)
		assert.NoError(t, err)
		assert.Equal(t, payload{}, p)
	})
	t.Run("round trip", func(t *testing.T) {
		r := &Request{}
		require.NoError(t, r.SetJSONBody(payload{Name: "eggs", Count: 3}))
		var p payload
		ok, err := r.DecodeJSONBody(&p)
		assert.True(t, ok)
		assert.NoError(t, err)
		assert.Equal(t, payload{Name: "eggs", Count: 3}, p)
	})
	t.Run("malformed", func(t *testing.T) {
		var p payload
		ok, err := (&Request{Body: []byte("{")}).DecodeJSONBody(&p)
		assert.False(t, ok)
		var fe failure.Error
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, failure.JSON, fe.Kind)
		assert.NotEmpty(t, fe.Description)
	})
}

func TestResponse_DecodeJSON(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		isValid bool
	}{
		{"valid", `{"name":"spam","count":1}`, true},
		{"empty", ``, false},
		{"malformed", `{"name":`, false},
		{"wrong type", `{"count":"one"}`, false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var p payload
			err := (&Response{Body: []byte(testCase.body)}).DecodeJSON(&p)
			if testCase.isValid {
				assert.NoError(t, err)
				assert.Equal(t, payload{Name: "spam", Count: 1}, p)
				return
			}
			var fe failure.Error
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, failure.JSON, fe.Kind)
		})
	}
}
