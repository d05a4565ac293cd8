// Package llmformat converts a validated view into the wire shape an
// LLM provider expects. It is the "LLM message formatter" consumer
// downstream of build_view in the data-flow: the engine never imports
// this package, only the other direction.
package llmformat

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/open-agentic/viewengine/pkg/models"
)

// ToAnthropicMessages converts a validated sequence of events into
// Anthropic Messages API parameters. System events are collected
// separately since Anthropic carries the system prompt outside the
// message list; callers pass the returned string to
// anthropic.MessageNewParams.System.
func ToAnthropicMessages(events []models.Event) (system string, messages []anthropic.MessageParam, err error) {
	var systemParts []string
	var pendingToolUse []anthropic.ContentBlockParamUnion
	var pendingToolResult []anthropic.ContentBlockParamUnion

	flushAssistant := func() {
		if len(pendingToolUse) == 0 {
			return
		}
		messages = append(messages, anthropic.NewAssistantMessage(pendingToolUse...))
		pendingToolUse = nil
	}
	flushUserToolResults := func() {
		if len(pendingToolResult) == 0 {
			return
		}
		messages = append(messages, anthropic.NewUserMessage(pendingToolResult...))
		pendingToolResult = nil
	}

	for _, e := range events {
		switch e.Kind {
		case models.EventKindSystem:
			flushAssistant()
			flushUserToolResults()
			systemParts = append(systemParts, e.System.Content)
		case models.EventKindMessage:
			flushAssistant()
			flushUserToolResults()
			block := anthropic.NewTextBlock(e.Message.Content)
			if e.Message.Source == models.MessageSourceAssistant {
				messages = append(messages, anthropic.NewAssistantMessage(block))
			} else {
				messages = append(messages, anthropic.NewUserMessage(block))
			}
		case models.EventKindAction:
			flushUserToolResults()
			var input any
			if len(e.Action.Input) > 0 {
				if unmarshalErr := json.Unmarshal(e.Action.Input, &input); unmarshalErr != nil {
					return "", nil, fmt.Errorf("llmformat: invalid action input for %s: %w", e.Action.ToolCallID, unmarshalErr)
				}
			}
			pendingToolUse = append(pendingToolUse, anthropic.NewToolUseBlock(string(e.Action.ToolCallID), input, e.Action.ToolName))
		case models.EventKindObservation:
			flushAssistant()
			isError := e.Observation.Outcome != models.ObservationNormal
			pendingToolResult = append(pendingToolResult, anthropic.NewToolResultBlock(string(e.Observation.ToolCallID), e.Observation.Content, isError))
		default:
			// Condensation/CondensationRequest never survive build_view's
			// validation pass, so llmformat never sees them.
		}
	}
	flushAssistant()
	flushUserToolResults()

	return joinSystem(systemParts), messages, nil
}

func joinSystem(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "\n\n" + p
	}
	return out
}
