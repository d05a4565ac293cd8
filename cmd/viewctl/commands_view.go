package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-agentic/viewengine/internal/view"
)

func newViewCommand() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "view <log.jsonl>",
		Short: "Print the validated view projected from an event log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := readEventLog(args[0])
			if err != nil {
				return err
			}
			result, err := view.BuildView(events, strict)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(os.Stdout)
			if err := writeEventLog(w, result.Validated); err != nil {
				return err
			}
			if result.UnhandledCondensationRequest {
				fmt.Fprintln(os.Stderr, "viewctl: unhandled condensation request pending")
			}
			if result.HasMostRecentSummary {
				fmt.Fprintf(os.Stderr, "viewctl: most recent summary: %s\n", result.MostRecentSummary)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unmatched tool calls instead of dropping them")
	return cmd
}
