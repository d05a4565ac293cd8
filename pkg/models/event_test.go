package models

import (
	"testing"
	"time"
)

func TestEventValidateRejectsMultiplePayloads(t *testing.T) {
	e := NewSystemEvent("e1", time.Now(), "hello")
	e.Message = &MessagePayload{Source: MessageSourceUser, Content: "oops"}
	if err := e.Validate(); err == nil {
		t.Fatal("expected error for event with two payloads")
	}
}

func TestEventValidateRejectsMissingPayload(t *testing.T) {
	e := Event{ID: "e1", Kind: EventKindAction}
	if err := e.Validate(); err == nil {
		t.Fatal("expected error for action event without ActionPayload")
	}
}

func TestEventValidateAcceptsWellFormed(t *testing.T) {
	e := NewActionEvent("e1", time.Now(), "r1", "t1", "bash", nil)
	if err := e.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActionHasThinking(t *testing.T) {
	e := NewActionEvent("e1", time.Now(), "r1", "t1", "bash", nil, ThinkingBlock{Content: "plan"})
	if !e.Action.HasThinking() {
		t.Fatal("expected HasThinking true")
	}
	e2 := NewActionEvent("e2", time.Now(), "r1", "t2", "bash", nil)
	if e2.Action.HasThinking() {
		t.Fatal("expected HasThinking false")
	}
}

func TestIsMeta(t *testing.T) {
	cr := NewCondensationRequestEvent("e1", time.Now(), "context full")
	if !cr.IsMeta() {
		t.Fatal("expected CondensationRequest to be meta")
	}
	msg := NewMessageEvent("e2", time.Now(), MessageSourceUser, "hi")
	if msg.IsMeta() {
		t.Fatal("expected MessageEvent to not be meta")
	}
}
