// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package checkpoint provides causal correlation tokens for HTTP request
executions.

A Checkpoint names the entity that currently owns a causal chain and a
sequence number within that chain. A chain is started from any
identified entity using Of, and each component that takes ownership of
the chain advances it with Next:

	cp := checkpoint.Of(caller)
	...
	cp = cp.Next(executor)

Checkpoints are used purely for correlating lifecycle events and
results with the call that produced them. They never drive control flow
and must not be interpreted as a logical clock across independent
entities.

Entity identifiers are drawn from an IDSource. Counter is the standard
IDSource; inject one per process (or per test) wherever an identified
component is constructed. Process is a shared Counter used only when no
IDSource has been injected.
*/
package checkpoint
