package view

import "github.com/open-agentic/viewengine/pkg/models"

// ToolLoopAtomicityProperty enforces invariant 3: a "thinking" tool loop
// — a batch that carries reasoning content, plus every consecutive
// Action/Observation event that follows it before the next non-tool
// event — must not be split by a manipulation. Loops without thinking
// are not subject to this property at all; ordinary tool calls may be
// cut anywhere ToolCallMatchingProperty allows.
type ToolLoopAtomicityProperty struct{}

// NewToolLoopAtomicityProperty constructs the property. It holds no
// state: loop detection only needs the sequence it is given.
func NewToolLoopAtomicityProperty() *ToolLoopAtomicityProperty {
	return &ToolLoopAtomicityProperty{}
}

func (p *ToolLoopAtomicityProperty) loopRanges(events []models.Event) [][2]int {
	idx := BuildActionBatchIndex(events)
	var starts []int
	for rid, thinking := range idx.HasThinking {
		if !thinking {
			continue
		}
		min, _, ok := idx.Range(rid)
		if !ok {
			continue
		}
		starts = append(starts, min)
	}
	var ranges [][2]int
	for _, start := range starts {
		end := start
		for end+1 < len(events) {
			next := events[end+1]
			if next.Kind != models.EventKindAction && next.Kind != models.EventKindObservation {
				break
			}
			end++
		}
		ranges = append(ranges, [2]int{start, end})
	}
	return mergeRanges(ranges)
}

// SafeIndices forbids cutting strictly inside any thinking-initiated
// loop, using the same min/min+1..max/max+1 boundary rule as batch
// atomicity.
func (p *ToolLoopAtomicityProperty) SafeIndices(events []models.Event) *IndexSet {
	safe := NewFullIndexSet(len(events))
	for _, r := range p.loopRanges(events) {
		min, max := r[0], r[1]
		if max > min {
			safe.ClearRange(min+1, max)
		}
	}
	return safe
}

// Validate is a no-op: tool loop atomicity only restricts where cuts may
// land, it never itself removes events. Upstream removal is repaired
// only at batch granularity, by BatchAtomicityProperty's completeness
// check; a loop that loses a whole batch is not otherwise repaired.
func (p *ToolLoopAtomicityProperty) Validate(events []models.Event) []models.Event {
	return append([]models.Event(nil), events...)
}
