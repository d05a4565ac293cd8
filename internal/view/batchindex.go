package view

import "github.com/open-agentic/viewengine/pkg/models"

// ActionBatchIndex maps every LlmResponseID appearing in a sequence to
// the positions of its ActionEvents and whether the first of them
// carries reasoning content. It is built once per sequence and consulted by
// both BatchAtomicityProperty and ToolLoopAtomicityProperty.
type ActionBatchIndex struct {
	Positions   map[models.LlmResponseID][]int
	HasThinking map[models.LlmResponseID]bool
}

// BuildActionBatchIndex scans events and groups ActionEvent positions by
// LlmResponseID, in the order actions appear.
func BuildActionBatchIndex(events []models.Event) *ActionBatchIndex {
	idx := &ActionBatchIndex{
		Positions:   make(map[models.LlmResponseID][]int),
		HasThinking: make(map[models.LlmResponseID]bool),
	}
	for i, e := range events {
		if e.Kind != models.EventKindAction || e.Action == nil {
			continue
		}
		rid := e.Action.LlmResponseID
		if _, seen := idx.Positions[rid]; !seen {
			idx.HasThinking[rid] = e.Action.HasThinking()
		}
		idx.Positions[rid] = append(idx.Positions[rid], i)
	}
	return idx
}

// Range returns the minimum and maximum event-index occupied by batch
// rid's actions, and whether the batch has any actions at all.
func (idx *ActionBatchIndex) Range(rid models.LlmResponseID) (min, max int, ok bool) {
	positions, exists := idx.Positions[rid]
	if !exists || len(positions) == 0 {
		return 0, 0, false
	}
	min, max = positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max, true
}

// mergeRanges sorts and merges overlapping or touching [min,max] ranges,
// the way a batch that pathologically interleaves with another batch's
// actions collapses into a single forbidden span.
func mergeRanges(ranges [][2]int) [][2]int {
	if len(ranges) == 0 {
		return nil
	}
	for i := 1; i < len(ranges); i++ {
		for j := i; j > 0 && ranges[j-1][0] > ranges[j][0]; j-- {
			ranges[j-1], ranges[j] = ranges[j], ranges[j-1]
		}
	}
	merged := [][2]int{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r[0] <= last[1] {
			if r[1] > last[1] {
				last[1] = r[1]
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
