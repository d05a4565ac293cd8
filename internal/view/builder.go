package view

import "github.com/open-agentic/viewengine/pkg/models"

// BuildState tracks where a view is in its build pipeline. It exists
// for introspection and debug logging around the engine; the pipeline
// itself never branches on it.
type BuildState int

const (
	StateIdle BuildState = iota
	StateValidating
	StateIndicesComputed
	StateDone
)

func (s BuildState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateIndicesComputed:
		return "indices_computed"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Result is the output of BuildView: the well-formed, validated
// sequence, a calculator over manipulation indices computed from the
// original raw sequence, and the status flags external interface #1
// requires alongside the validated view.
type Result struct {
	Raw        []models.Event
	Validated  []models.Event
	Calculator *ManipulationIndexCalculator
	State      BuildState

	// UnhandledCondensationRequest is true iff the last meta-event in
	// Raw is a CondensationRequest not yet answered by a Condensation.
	UnhandledCondensationRequest bool
	// MostRecentSummary is the summary text of the last Condensation (by
	// input order) with a non-empty summary, if any.
	MostRecentSummary string
	// HasMostRecentSummary reports whether MostRecentSummary is set; no
	// Condensation ever carried a non-empty summary when false.
	HasMostRecentSummary bool
}

// ManipulationIndices returns every safe manipulation position, in
// ascending order.
func (r *Result) ManipulationIndices() []int {
	return r.Calculator.Indices()
}

// NextManipulationIndex returns the smallest safe manipulation position
// at or after threshold.
func (r *Result) NextManipulationIndex(threshold int, strict bool) (int, bool) {
	return r.Calculator.NextIndex(threshold, strict)
}

// BuildView projects raw into a well-formed View. The pipeline:
//
//  1. validate every raw event's own shape (fatal on failure)
//  2. CondensationProperty.Validate — remove forgotten events and meta
//     events, insert the most recent non-empty summary
//  3. ToolCallMatchingProperty.Validate — drop unmatched actions and
//     observations (or, in strict mode, fail on the first one)
//  4. BatchAtomicityProperty.Validate — drop any action left with a
//     removed sibling
//
// Manipulation indices are computed separately, over raw, by
// intersecting every property's SafeIndices — never over the validated
// sequence, since a position only the validated sequence would call
// "safe" may have been safe only because the events that made it unsafe
// were already removed.
//
// Result.UnhandledCondensationRequest and Result.MostRecentSummary are
// likewise derived from raw, via CondensationProperty.Flags.
func BuildView(raw []models.Event, strict bool) (*Result, error) {
	for _, e := range raw {
		if err := e.Validate(); err != nil {
			return nil, &MalformedInputError{EventID: e.ID, Reason: err.Error()}
		}
	}

	cond := NewCondensationProperty()
	matching := NewToolCallMatchingProperty(strict)
	batch := NewBatchAtomicityProperty(raw)
	loop := NewToolLoopAtomicityProperty()

	afterCondensation := cond.Validate(raw)

	var afterMatching []models.Event
	if strict {
		v, err := matching.ValidateStrict(afterCondensation)
		if err != nil {
			return nil, err
		}
		afterMatching = v
	} else {
		afterMatching = matching.Validate(afterCondensation)
	}

	validated := batch.Validate(afterMatching)

	calc := NewManipulationIndexCalculator(
		batch.SafeIndices(raw),
		loop.SafeIndices(raw),
		matching.SafeIndices(raw),
		cond.SafeIndices(raw),
	)

	unhandled, summary, hasSummary := cond.Flags(raw)

	return &Result{
		Raw:                          raw,
		Validated:                    validated,
		Calculator:                   calc,
		State:                        StateDone,
		UnhandledCondensationRequest: unhandled,
		MostRecentSummary:            summary,
		HasMostRecentSummary:         hasSummary,
	}, nil
}
