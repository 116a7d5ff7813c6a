package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"grip/internal/trace"
)

var replayCmd = &cobra.Command{
	Use:   "replay [flags] <trace-file>",
	Short: "Inspect a recorded ownership trace",
	Long:  `Decode a msgpack ownership trace, validate every object's lifecycle (adopted first, disposed exactly once), and print the event stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	events, err := trace.ReadFile(args[0])
	if err != nil {
		return err
	}

	if !quiet {
		for _, ev := range events {
			fmt.Printf("%6d  %-16s %-10s obj=%#x sharers=%d\n",
				ev.Seq, ev.Scenario, ev.Op, ev.Object, ev.Sharers)
		}
	}

	if err := trace.Validate(events); err != nil {
		return fmt.Errorf("trace validation failed: %w", err)
	}
	fmt.Printf("%d events, lifecycle ok\n", len(events))
	return nil
}
