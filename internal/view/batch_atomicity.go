package view

import "github.com/open-agentic/viewengine/pkg/models"

// BatchAtomicityProperty enforces invariant 2: the actions returned in a
// single model response are indivisible. No manipulation may insert a
// cut between the first and last action of a batch, and if any action
// of a batch is removed upstream (by condensation or matching), every
// sibling action of that batch must be removed too.
//
// raw holds the original, unreduced sequence the view was built from.
// Validate needs it to recover a batch's full membership: once matching
// has already dropped an orphaned sibling, the reduced slice alone no
// longer shows that the remaining action belonged to an incomplete
// batch.
type BatchAtomicityProperty struct {
	raw []models.Event
}

// NewBatchAtomicityProperty constructs the property against the raw
// sequence a view is being built from.
func NewBatchAtomicityProperty(raw []models.Event) *BatchAtomicityProperty {
	return &BatchAtomicityProperty{raw: raw}
}

// SafeIndices forbids cutting strictly between the first and last
// action of any batch present in events. Positions equal to a batch's
// minimum position, or one past its maximum, remain safe.
func (p *BatchAtomicityProperty) SafeIndices(events []models.Event) *IndexSet {
	n := len(events)
	safe := NewFullIndexSet(n)
	idx := BuildActionBatchIndex(events)
	var ranges [][2]int
	for rid := range idx.Positions {
		min, max, ok := idx.Range(rid)
		if !ok {
			continue
		}
		ranges = append(ranges, [2]int{min, max})
	}
	for _, r := range mergeRanges(ranges) {
		min, max := r[0], r[1]
		if max > min {
			safe.ClearRange(min+1, max)
		}
	}
	return safe
}

// Validate drops every action whose batch is only partially present in
// events, given the full membership recorded in raw.
func (p *BatchAtomicityProperty) Validate(events []models.Event) []models.Event {
	rawIdx := BuildActionBatchIndex(p.raw)
	present := make(map[models.EventID]bool, len(events))
	for _, e := range events {
		present[e.ID] = true
	}

	removeRid := make(map[models.LlmResponseID]bool)
	for rid, positions := range rawIdx.Positions {
		total := len(positions)
		kept := 0
		for _, pos := range positions {
			if present[p.raw[pos].ID] {
				kept++
			}
		}
		if kept > 0 && kept < total {
			removeRid[rid] = true
		}
	}
	if len(removeRid) == 0 {
		return append([]models.Event(nil), events...)
	}

	// Dropping the remaining siblings of an incomplete batch can orphan
	// their observations, so collect those tool call ids (from raw,
	// since a sibling's observation may already be gone too) and drop
	// them alongside.
	removeToolCall := make(map[models.ToolCallID]bool)
	for rid := range removeRid {
		for _, pos := range rawIdx.Positions[rid] {
			removeToolCall[p.raw[pos].Action.ToolCallID] = true
		}
	}

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Kind == models.EventKindAction && e.Action != nil && removeRid[e.Action.LlmResponseID] {
			continue
		}
		if e.Kind == models.EventKindObservation && e.Observation != nil && removeToolCall[e.Observation.ToolCallID] {
			continue
		}
		out = append(out, e)
	}
	return out
}
