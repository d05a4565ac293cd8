package view

import "github.com/open-agentic/viewengine/pkg/models"

// CondensationProperty enforces invariant 5: once a Condensation event
// names a set of forgotten ids and a summary, the forgotten events
// disappear from the sequence and the summary takes their place at
// SummaryOffset. Condensation never restricts where a future
// manipulation may land — it has already happened — so SafeIndices
// always returns the full range.
type CondensationProperty struct{}

// NewCondensationProperty constructs the property. Stateless: it only
// needs the sequence passed to Validate.
func NewCondensationProperty() *CondensationProperty {
	return &CondensationProperty{}
}

// SafeIndices imposes no restriction.
func (p *CondensationProperty) SafeIndices(events []models.Event) *IndexSet {
	return NewFullIndexSet(len(events))
}

// Validate removes CondensationRequest events, removes every event ever
// forgotten by any Condensation event, drops the Condensation events
// themselves, and inserts a single synthetic summary message: the
// summary of the last Condensation (in input order) whose Summary is
// non-empty, at its SummaryOffset. Earlier Condensations still forget
// their events; only their summary text is superseded, per invariant 5
// ("exactly once") and the empty-summary edge policy (no summary text
// means no insertion).
func (p *CondensationProperty) Validate(events []models.Event) []models.Event {
	forgotten := make(map[models.EventID]bool)
	var chosen *models.Event
	for i := range events {
		e := events[i]
		if e.Kind != models.EventKindCondensation || e.Condensation == nil {
			continue
		}
		for _, id := range e.Condensation.ForgottenIDs {
			forgotten[id] = true
		}
		if e.Condensation.Summary != "" {
			chosen = &events[i]
		}
	}

	survivors := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.IsMeta() {
			continue
		}
		if forgotten[e.ID] {
			continue
		}
		survivors = append(survivors, e)
	}

	if chosen == nil {
		return survivors
	}

	summaryEvent := models.NewMessageEvent(
		models.EventID(string(chosen.ID)+"#summary"),
		chosen.Time,
		models.MessageSourceAssistant,
		chosen.Condensation.Summary,
	)

	at := chosen.Condensation.SummaryOffset
	if at < 0 {
		at = 0
	}
	if at > len(survivors) {
		at = len(survivors)
	}
	out := make([]models.Event, 0, len(survivors)+1)
	out = append(out, survivors[:at]...)
	out = append(out, summaryEvent)
	out = append(out, survivors[at:]...)
	return out
}

// Flags reports the two pieces of build_view's external status that
// CondensationProperty alone can determine: unhandledCondensationRequest
// is true iff the last meta-event in events (CondensationRequest or
// Condensation) is a CondensationRequest not followed by a Condensation;
// mostRecentSummary is the summary text of the last Condensation (by
// input order) whose Summary is non-empty, or the zero value with ok
// false if no Condensation ever carried one.
func (p *CondensationProperty) Flags(events []models.Event) (unhandledCondensationRequest bool, mostRecentSummary string, ok bool) {
	var lastMeta models.EventKind
	sawMeta := false
	for _, e := range events {
		if e.Kind != models.EventKindCondensationRequest && e.Kind != models.EventKindCondensation {
			continue
		}
		sawMeta = true
		lastMeta = e.Kind
		if e.Kind == models.EventKindCondensation && e.Condensation != nil && e.Condensation.Summary != "" {
			mostRecentSummary = e.Condensation.Summary
			ok = true
		}
	}
	unhandledCondensationRequest = sawMeta && lastMeta == models.EventKindCondensationRequest
	return unhandledCondensationRequest, mostRecentSummary, ok
}
