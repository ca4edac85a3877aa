// Copyright 2026 The httpcore Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package checkpoint

import (
	"strconv"

	"code.hybscloud.com/atomix"
)

// An Entity is any component with a stable numeric identity that can
// originate or take ownership of a causal chain.
type Entity interface {
	Identifier() uint64
}

// A Checkpoint is an immutable causal token: the identifier of the
// entity which produced it plus a sequence number.
//
// Along any causal chain the sequence number never decreases. Two
// checkpoints are equal, and compare equal with ==, if and only if they
// have the same EntityID and the same Seq.
type Checkpoint struct {
	// EntityID is the identifier of the entity that produced the
	// checkpoint.
	EntityID uint64
	// Seq is the position of the checkpoint within its causal chain.
	Seq uint64
}

// Of starts a new causal chain owned by e. The returned checkpoint has
// sequence number zero.
func Of(e Entity) Checkpoint {
	return Checkpoint{EntityID: e.Identifier()}
}

// Next advances the checkpoint to a new owner. The returned checkpoint
// is tagged with owner's identity and its sequence number is exactly
// one greater than c.Seq.
func (c Checkpoint) Next(owner Entity) Checkpoint {
	return Checkpoint{
		EntityID: owner.Identifier(),
		Seq:      c.Seq + 1,
	}
}

// String renders the checkpoint as "entity/seq".
func (c Checkpoint) String() string {
	return strconv.FormatUint(c.EntityID, 10) + "/" + strconv.FormatUint(c.Seq, 10)
}

// An IDSource hands out unique identifiers. Implementations must be
// safe for concurrent use by multiple goroutines, and must never return
// the same identifier twice.
type IDSource interface {
	NextID() uint64
}

// A Counter is an IDSource producing monotonically increasing
// identifiers starting from 1. The zero value is ready to use.
type Counter struct {
	n atomix.Uint64
}

// NewCounter returns a fresh Counter whose first identifier is 1.
func NewCounter() *Counter {
	return &Counter{}
}

// NextID returns the next identifier.
func (c *Counter) NextID() uint64 {
	return c.n.Add(1)
}

// Process is the process-wide Counter used by components constructed
// without an explicit IDSource. It is initialized at package load and
// lives for the life of the process; it is never reset. Tests and
// applications that need reproducible identifiers should inject their
// own Counter instead.
var Process = NewCounter()

// A Static entity has a fixed identifier. It is convenient for callers
// that do not otherwise have an identity to start a chain from.
type Static uint64

// Identifier returns s.
func (s Static) Identifier() uint64 {
	return uint64(s)
}
