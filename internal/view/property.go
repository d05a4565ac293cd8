// Package view projects an append-only event log into a well-formed
// sequence and computes the positions at which that sequence can be
// safely shortened. It performs no I/O, no logging, and holds no state
// across calls: every exported function is a pure transform over the
// slice it is given.
package view

import "github.com/open-agentic/viewengine/pkg/models"

// ViewProperty is one invariant the engine enforces over an event
// sequence. Each property can both report which manipulation positions
// would keep it intact (SafeIndices) and repair a sequence that
// otherwise violates it (Validate).
type ViewProperty interface {
	// SafeIndices returns the positions in {0, ..., len(events)} at
	// which inserting a cut (a summary, a truncation) would not break
	// this property.
	SafeIndices(events []models.Event) *IndexSet

	// Validate returns a copy of events with whatever this property
	// forbids removed or repaired. It never mutates its input.
	Validate(events []models.Event) []models.Event
}
