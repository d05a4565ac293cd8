// Package models holds the wire types shared by the view engine, the
// reference condenser, and the LLM message formatter.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventID identifies a single event in an append-only log. Opaque and
// stable: callers mint it, the engine never parses it.
type EventID string

// LlmResponseID groups every ActionEvent produced by a single model
// response (a "batch"). Two actions share an LlmResponseID if and only
// if they came back in the same completion.
type LlmResponseID string

// ToolCallID pairs an ActionEvent with the ObservationEvent that reports
// its result.
type ToolCallID string

// EventKind discriminates the payload carried by an Event. Exactly one
// of the Event's payload pointers is non-nil for a given Kind, following
// the same convention as AgentEvent in the agent package this was
// adapted from.
type EventKind string

const (
	EventKindSystem              EventKind = "system"
	EventKindMessage             EventKind = "message"
	EventKindAction               EventKind = "action"
	EventKindObservation         EventKind = "observation"
	EventKindCondensationRequest EventKind = "condensation_request"
	EventKindCondensation        EventKind = "condensation"
)

// MessageSource distinguishes a user message from an assistant message.
type MessageSource string

const (
	MessageSourceUser      MessageSource = "user"
	MessageSourceAssistant MessageSource = "assistant"
)

// ObservationOutcome classifies why an ObservationEvent exists.
type ObservationOutcome string

const (
	// ObservationNormal is a regular tool result.
	ObservationNormal ObservationOutcome = "normal"
	// ObservationUserRejection marks a tool call the user declined to run.
	ObservationUserRejection ObservationOutcome = "user_rejection"
	// ObservationAgentError marks a tool call that failed during execution.
	ObservationAgentError ObservationOutcome = "agent_error"
)

// Event is the tagged union projected by the view engine. It is a value
// type: a View is built by producing fresh slices of Events, never by
// mutating an input slice in place.
type Event struct {
	ID   EventID   `json:"id"`
	Kind EventKind `json:"kind"`
	Time time.Time `json:"time"`

	System              *SystemPayload              `json:"system,omitempty"`
	Message             *MessagePayload              `json:"message,omitempty"`
	Action               *ActionPayload              `json:"action,omitempty"`
	Observation         *ObservationPayload         `json:"observation,omitempty"`
	CondensationRequest *CondensationRequestPayload `json:"condensation_request,omitempty"`
	Condensation        *CondensationPayload        `json:"condensation,omitempty"`
}

// SystemPayload carries a system prompt or system note.
type SystemPayload struct {
	Content string `json:"content"`
}

// MessagePayload carries a user or assistant chat message.
type MessagePayload struct {
	Source  MessageSource `json:"source"`
	Content string        `json:"content"`
}

// ThinkingBlock is an opaque reasoning block attached to an action. Only
// its presence matters to the view engine (it marks the action's batch
// as starting a tool loop); its content is never inspected.
type ThinkingBlock struct {
	Content string `json:"content"`
}

// ActionPayload is a single tool call made by the model. LlmResponseID
// groups sibling actions returned in the same completion.
type ActionPayload struct {
	LlmResponseID  LlmResponseID   `json:"llm_response_id"`
	ToolCallID     ToolCallID      `json:"tool_call_id"`
	ToolName       string          `json:"tool_name"`
	Input          json.RawMessage `json:"input,omitempty"`
	ThinkingBlocks []ThinkingBlock `json:"thinking_blocks,omitempty"`
}

// HasThinking reports whether this action carries reasoning content.
func (a *ActionPayload) HasThinking() bool {
	return a != nil && len(a.ThinkingBlocks) > 0
}

// ObservationPayload is the result of executing one ActionPayload.
type ObservationPayload struct {
	ToolCallID ToolCallID         `json:"tool_call_id"`
	Outcome    ObservationOutcome `json:"outcome"`
	Content    string             `json:"content"`
}

// CondensationRequestPayload marks a point where a condenser was asked
// to shorten the log but had not yet produced a Condensation.
type CondensationRequestPayload struct {
	Reason string `json:"reason"`
}

// CondensationPayload names a set of forgotten events (not necessarily
// contiguous) and an optional summary that stands in for them. SummaryOffset is the position, in the sequence of events
// that survive forgetting, at which the summary message is inserted.
type CondensationPayload struct {
	ForgottenIDs  []EventID `json:"forgotten_ids"`
	Summary       string    `json:"summary"`
	SummaryOffset int       `json:"summary_offset"`
}

// NewSystemEvent builds a SystemEvent.
func NewSystemEvent(id EventID, t time.Time, content string) Event {
	return Event{ID: id, Kind: EventKindSystem, Time: t, System: &SystemPayload{Content: content}}
}

// NewMessageEvent builds a MessageEvent.
func NewMessageEvent(id EventID, t time.Time, source MessageSource, content string) Event {
	return Event{ID: id, Kind: EventKindMessage, Time: t, Message: &MessagePayload{Source: source, Content: content}}
}

// NewActionEvent builds an ActionEvent.
func NewActionEvent(id EventID, t time.Time, rid LlmResponseID, tc ToolCallID, tool string, input json.RawMessage, thinking ...ThinkingBlock) Event {
	return Event{
		ID:   id,
		Kind: EventKindAction,
		Time: t,
		Action: &ActionPayload{
			LlmResponseID:  rid,
			ToolCallID:     tc,
			ToolName:       tool,
			Input:          input,
			ThinkingBlocks: thinking,
		},
	}
}

// NewObservationEvent builds an ObservationEvent.
func NewObservationEvent(id EventID, t time.Time, tc ToolCallID, outcome ObservationOutcome, content string) Event {
	return Event{ID: id, Kind: EventKindObservation, Time: t, Observation: &ObservationPayload{ToolCallID: tc, Outcome: outcome, Content: content}}
}

// NewCondensationRequestEvent builds a CondensationRequestEvent.
func NewCondensationRequestEvent(id EventID, t time.Time, reason string) Event {
	return Event{ID: id, Kind: EventKindCondensationRequest, Time: t, CondensationRequest: &CondensationRequestPayload{Reason: reason}}
}

// NewCondensationEvent builds a Condensation event.
func NewCondensationEvent(id EventID, t time.Time, forgotten []EventID, summary string, offset int) Event {
	return Event{
		ID:   id,
		Kind: EventKindCondensation,
		Time: t,
		Condensation: &CondensationPayload{
			ForgottenIDs:  append([]EventID(nil), forgotten...),
			Summary:       summary,
			SummaryOffset: offset,
		},
	}
}

// IsMeta reports whether this event is a pipeline control event
// (CondensationRequest or Condensation) rather than a conversational one.
func (e Event) IsMeta() bool {
	return e.Kind == EventKindCondensationRequest || e.Kind == EventKindCondensation
}

// Validate checks that an Event carries exactly the payload its Kind
// implies. It is the only place the view engine treats malformed input
// as a distinct error from a normal empty result.
func (e Event) Validate() error {
	payloads := 0
	for _, p := range []bool{e.System != nil, e.Message != nil, e.Action != nil, e.Observation != nil, e.CondensationRequest != nil, e.Condensation != nil} {
		if p {
			payloads++
		}
	}
	if payloads != 1 {
		return fmt.Errorf("event %q: expected exactly one payload, got %d", e.ID, payloads)
	}
	switch e.Kind {
	case EventKindSystem:
		if e.System == nil {
			return fmt.Errorf("event %q: kind system without SystemPayload", e.ID)
		}
	case EventKindMessage:
		if e.Message == nil {
			return fmt.Errorf("event %q: kind message without MessagePayload", e.ID)
		}
	case EventKindAction:
		if e.Action == nil {
			return fmt.Errorf("event %q: kind action without ActionPayload", e.ID)
		}
	case EventKindObservation:
		if e.Observation == nil {
			return fmt.Errorf("event %q: kind observation without ObservationPayload", e.ID)
		}
	case EventKindCondensationRequest:
		if e.CondensationRequest == nil {
			return fmt.Errorf("event %q: kind condensation_request without CondensationRequestPayload", e.ID)
		}
	case EventKindCondensation:
		if e.Condensation == nil {
			return fmt.Errorf("event %q: kind condensation without CondensationPayload", e.ID)
		}
	default:
		return fmt.Errorf("event %q: unknown kind %q", e.ID, e.Kind)
	}
	return nil
}
