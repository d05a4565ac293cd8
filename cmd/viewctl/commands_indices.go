package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-agentic/viewengine/internal/view"
)

func newIndicesCommand() *cobra.Command {
	var strict bool
	var threshold int
	var next bool
	cmd := &cobra.Command{
		Use:   "indices <log.jsonl>",
		Short: "Print the safe manipulation indices for an event log",
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
			if next {
				idx, ok := result.NextManipulationIndex(threshold, strict)
				if !ok {
					fmt.Println("none")
					return nil
				}
				fmt.Println(idx)
				return nil
			}
			for _, idx := range result.ManipulationIndices() {
				fmt.Println(idx)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unmatched tool calls instead of dropping them")
	cmd.Flags().BoolVar(&next, "next", false, "print only the next safe index at or after --threshold")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "lower bound for --next")
	return cmd
}
