package view

import (
	"testing"

	"github.com/open-agentic/viewengine/pkg/models"
)

func TestCondensationValidateIdempotent(t *testing.T) {
	cond := models.NewCondensationEvent("cond", at(5), []models.EventID{"e1"}, "summary", 1)
	events := []models.Event{
		models.NewSystemEvent("e0", at(0), "a"),
		models.NewSystemEvent("e1", at(1), "b"),
		models.NewSystemEvent("e2", at(2), "c"),
		cond,
	}
	p := NewCondensationProperty()
	once := p.Validate(events)
	twice := p.Validate(once)
	if len(once) != len(twice) {
		t.Fatalf("expected idempotent validate, got %v then %v", ids(once), ids(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("expected idempotent validate, got %v then %v", ids(once), ids(twice))
		}
	}
}

func TestCondensationOnlyLastSummarySurvives(t *testing.T) {
	condA := models.NewCondensationEvent("condA", at(10), nil, "first", 1)
	condB := models.NewCondensationEvent("condB", at(11), nil, "second", 1)
	events := []models.Event{
		models.NewSystemEvent("e0", at(0), "a"),
		models.NewSystemEvent("e1", at(1), "b"),
		condA,
		condB,
	}
	p := NewCondensationProperty()
	got := p.Validate(events)
	if len(got) != 3 {
		t.Fatalf("expected 2 originals + exactly one summary, got %v", ids(got))
	}
	if got[1].Message.Content != "second" {
		t.Fatalf("expected only condB's summary (the last one with non-empty text), got %q", got[1].Message.Content)
	}
}

func TestCondensationEmptySummaryNotInserted(t *testing.T) {
	cond := models.NewCondensationEvent("cond", at(10), []models.EventID{"e0"}, "", 0)
	events := []models.Event{
		models.NewSystemEvent("e0", at(0), "a"),
		models.NewSystemEvent("e1", at(1), "b"),
		cond,
	}
	p := NewCondensationProperty()
	got := p.Validate(events)
	if len(got) != 1 {
		t.Fatalf("expected only e1 to survive with no summary inserted, got %v", ids(got))
	}
	if got[0].ID != "e1" {
		t.Fatalf("expected e1, got %v", ids(got))
	}
}

func TestCondensationEarlierSummaryStillForgetsItsEvents(t *testing.T) {
	condA := models.NewCondensationEvent("condA", at(10), []models.EventID{"e0"}, "first", 0)
	condB := models.NewCondensationEvent("condB", at(11), []models.EventID{"e1"}, "second", 0)
	events := []models.Event{
		models.NewSystemEvent("e0", at(0), "a"),
		models.NewSystemEvent("e1", at(1), "b"),
		models.NewSystemEvent("e2", at(2), "c"),
		condA,
		condB,
	}
	p := NewCondensationProperty()
	got := p.Validate(events)
	if len(got) != 2 {
		t.Fatalf("expected e2 plus condB's summary, got %v", ids(got))
	}
	// condB's SummaryOffset is 0, so its summary lands before e2.
	if got[0].Kind != models.EventKindMessage || got[0].Message.Content != "second" || got[1].ID != "e2" {
		t.Fatalf("expected condB's summary then e2, got %v", ids(got))
	}
}

func TestCondensationSafeIndicesUnrestricted(t *testing.T) {
	p := NewCondensationProperty()
	events := []models.Event{models.NewSystemEvent("e0", at(0), "a")}
	safe := p.SafeIndices(events)
	if safe.Len() != 2 {
		t.Fatalf("expected no restriction, got %d", safe.Len())
	}
}
