// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "sort"

// A Header holds the header fields of a request or response. Each name
// maps to a single value. Names are stored exactly as given, so
// "Accept" and "accept" are different fields.
//
// A nil Header is valid for reading. Set on a nil Header panics, just
// as assigning to a nil map does.
type Header map[string]string

// Get returns the value of the named field and whether it is present.
func (h Header) Get(name string) (string, bool) {
	v, ok := h[name]
	return v, ok
}

// Set sets the named field to value, replacing any existing value.
func (h Header) Set(name, value string) {
	h[name] = value
}

// Del removes the named field. It is a no-op if the field is absent.
func (h Header) Del(name string) {
	delete(h, name)
}

// Len returns the number of fields.
func (h Header) Len() int {
	return len(h)
}

// Names returns the field names in sorted order.
func (h Header) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of h, or nil if h is nil.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	h2 := make(Header, len(h))
	for name, value := range h {
		h2[name] = value
	}
	return h2
}
