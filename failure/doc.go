// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package failure defines the closed set of normalized failure kinds
// an HTTP execution can end with, and maps transport-specific errors
// onto that set.
//
// The taxonomy is cancelled, timeout, invalid-response, transport and
// json. Every failure is terminal from the point of view of a single
// execution: the executor delivers it and never retries. Package
// failure also offers Retryable, a classification helper for code that
// wants to layer its own retry policy on top.
//
// Descriptions carried by transport and json failures are stable and
// human-readable but are meant for logs and telemetry only. Branch on
// Kind, never on Description.
package failure
