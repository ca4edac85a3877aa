// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	"net/url"
)

const badBodyTypeMsg = "httpcore/request: invalid body type (use nil, " +
	"string, []byte, url.Values, io.Reader or io.ReadCloser)"

// BodyBytes converts a generic body parameter to the pre-buffered byte
// slice a Request carries.
//
// The conversion logic is:
//
// • nil yields a nil byte slice and no error.
//
// • A []byte is returned as-is, without copying.
//
// • A string is converted with the built-in conversion.
//
// • A url.Values is form-encoded with its Encode method.
//
// • An io.Reader is read to the end. If it is also an io.Closer, it is
// closed after reading. If reading or closing fails, the result is a
// nil byte slice and the error.
//
// • Any other type yields a nil byte slice and an error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	case url.Values:
		return []byte(x.Encode()), nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			_ = x.Close()
			return nil, err
		}
		if err = x.Close(); err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return BodyBytes(io.NopCloser(x))
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}
