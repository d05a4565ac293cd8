// Command viewctl is a thin demonstration binary over the view engine:
// it reads a JSONL event log and prints the validated view, its
// manipulation indices, or a condensed log. It is not a server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewctl",
		Short: "Inspect and condense an append-only agent event log",
	}
	cmd.AddCommand(newViewCommand())
	cmd.AddCommand(newIndicesCommand())
	cmd.AddCommand(newCondenseCommand())
	return cmd
}
