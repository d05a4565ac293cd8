package view

import (
	"testing"

	"github.com/open-agentic/viewengine/pkg/models"
)

func TestToolCallMatchingLenientDropsOrphans(t *testing.T) {
	events := []models.Event{
		models.NewActionEvent("a1", at(0), "b1", "t1", "bash", nil),
		models.NewObservationEvent("o1", at(1), "t1", models.ObservationNormal, "ok"),
		models.NewActionEvent("a2", at(2), "b2", "t2", "bash", nil),
		models.NewObservationEvent("o3", at(3), "t3", models.ObservationNormal, "ok"),
	}
	p := NewToolCallMatchingProperty(false)
	got := p.Validate(events)
	assertIDs(t, got, []models.EventID{"a1", "o1"})
}

func TestToolCallMatchingStrictFailsOnOrphan(t *testing.T) {
	events := []models.Event{
		models.NewActionEvent("a1", at(0), "b1", "t1", "bash", nil),
	}
	p := NewToolCallMatchingProperty(true)
	_, err := p.ValidateStrict(events)
	if err == nil {
		t.Fatal("expected MatchingError for orphaned action in strict mode")
	}
	var matchErr *MatchingError
	if me, ok := AsMatchingError(err); ok {
		matchErr = me
	}
	if matchErr == nil {
		t.Fatalf("expected *MatchingError, got %T", err)
	}
}

func TestToolCallMatchingSafeIndicesUnrestricted(t *testing.T) {
	events := []models.Event{
		models.NewActionEvent("a1", at(0), "b1", "t1", "bash", nil),
	}
	p := NewToolCallMatchingProperty(false)
	safe := p.SafeIndices(events)
	if safe.Len() != len(events)+1 {
		t.Fatalf("expected no restriction from matching, got %d safe", safe.Len())
	}
}
