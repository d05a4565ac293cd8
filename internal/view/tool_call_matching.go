package view

import "github.com/open-agentic/viewengine/pkg/models"

// ToolCallMatchingProperty enforces invariant 4: every ActionEvent has
// exactly one ObservationEvent carrying the same ToolCallID, and vice
// versa. It never restricts where a manipulation may land — bijection
// violations are a validation-time concern only, not a cut-placement
// one, so SafeIndices always returns the full range.
type ToolCallMatchingProperty struct {
	// Strict, when true, makes ValidateStrict return a *MatchingError
	// (with the input unchanged) instead of silently dropping an orphaned
	// action or observation.
	Strict bool
}

// NewToolCallMatchingProperty constructs the property in lenient
// (default) or strict mode.
func NewToolCallMatchingProperty(strict bool) *ToolCallMatchingProperty {
	return &ToolCallMatchingProperty{Strict: strict}
}

// SafeIndices imposes no restriction: matching is repaired, not avoided.
func (p *ToolCallMatchingProperty) SafeIndices(events []models.Event) *IndexSet {
	return NewFullIndexSet(len(events))
}

// Validate drops actions and observations that cannot be paired. In
// strict mode it instead returns a copy of the input unchanged and
// discards the violation; ValidateStrict is the way to receive it.
func (p *ToolCallMatchingProperty) Validate(events []models.Event) []models.Event {
	result, _ := p.validate(events)
	return result
}

// ValidateStrict behaves like Validate but, when the property is in
// strict mode, surfaces the first matching violation as an error instead
// of dropping silently. In lenient mode it drops orphans and returns a
// nil error.
func (p *ToolCallMatchingProperty) ValidateStrict(events []models.Event) ([]models.Event, error) {
	return p.validate(events)
}

func (p *ToolCallMatchingProperty) validate(events []models.Event) ([]models.Event, error) {
	actionsByTC := make(map[models.ToolCallID]int)
	obsByTC := make(map[models.ToolCallID]int)
	for _, e := range events {
		if e.Kind == models.EventKindAction && e.Action != nil {
			actionsByTC[e.Action.ToolCallID]++
		}
		if e.Kind == models.EventKindObservation && e.Observation != nil {
			obsByTC[e.Observation.ToolCallID]++
		}
	}

	orphanAction := func(tc models.ToolCallID) bool { return obsByTC[tc] == 0 }
	orphanObs := func(tc models.ToolCallID) bool { return actionsByTC[tc] == 0 }

	if p.Strict {
		for tc := range actionsByTC {
			if orphanAction(tc) {
				return append([]models.Event(nil), events...), &MatchingError{ToolCallID: tc, Reason: "action has no observation"}
			}
		}
		for tc := range obsByTC {
			if orphanObs(tc) {
				return append([]models.Event(nil), events...), &MatchingError{ToolCallID: tc, Reason: "observation has no action"}
			}
		}
		return append([]models.Event(nil), events...), nil
	}

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Kind == models.EventKindAction && e.Action != nil && orphanAction(e.Action.ToolCallID) {
			continue
		}
		if e.Kind == models.EventKindObservation && e.Observation != nil && orphanObs(e.Observation.ToolCallID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
