package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-agentic/viewengine/internal/condenser"
	"github.com/open-agentic/viewengine/pkg/models"
)

// truncatingSummarizer is a local stand-in for a real LLM-backed
// Summarizer: it is enough to exercise the condenser end to end from
// the command line without a network dependency. A production caller
// would instead format events with internal/llmformat and call the
// Anthropic Messages API.
type truncatingSummarizer struct {
	maxChars int
}

func (s truncatingSummarizer) Summarize(ctx context.Context, events []models.Event) (string, error) {
	var b strings.Builder
	for _, e := range events {
		switch e.Kind {
		case models.EventKindMessage:
			b.WriteString(e.Message.Content)
			b.WriteString(" ")
		case models.EventKindAction:
			b.WriteString(e.Action.ToolName)
			b.WriteString(" ")
		case models.EventKindObservation:
			b.WriteString(e.Observation.Content)
			b.WriteString(" ")
		}
	}
	text := strings.TrimSpace(b.String())
	if len(text) > s.maxChars {
		text = text[:s.maxChars] + "…"
	}
	if text == "" {
		text = "No prior history."
	}
	return text, nil
}

func newCondenseCommand() *cobra.Command {
	var keepRecent, maxContextTokens int
	cmd := &cobra.Command{
		Use:   "condense <log.jsonl>",
		Short: "Append a Condensation event that forgets the oldest events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := readEventLog(args[0])
			if err != nil {
				return err
			}
			cfg := condenser.Config{
				MaxContextTokens: maxContextTokens,
				KeepRecentEvents: keepRecent,
				ChunkTokens:      maxContextTokens / 4,
			}
			c := condenser.New(cfg, truncatingSummarizer{maxChars: 400}, nil)
			if !c.NeedsCondensing(events) {
				fmt.Fprintln(os.Stderr, "viewctl: log is within budget, nothing to condense")
				return nil
			}
			cond, err := c.Condense(context.Background(), events, nil)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(os.Stdout)
			if err := writeEventLog(w, events); err != nil {
				return err
			}
			return writeEventLog(w, []models.Event{cond})
		},
	}
	cmd.Flags().IntVar(&keepRecent, "keep-recent", 20, "number of most recent events never to forget")
	cmd.Flags().IntVar(&maxContextTokens, "max-context-tokens", 100_000, "token budget that triggers condensation")
	return cmd
}
