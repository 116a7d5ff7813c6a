package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grip/internal/observ"
	"grip/internal/report"
	"grip/internal/scenario"
	"grip/internal/trace"
)

var stressCmd = &cobra.Command{
	Use:   "stress [flags]",
	Short: "Run the ownership stress scenarios",
	Long:  `Run the built-in ownership workloads (exclusive churn, deep-copy fanout, copy-on-write sharing, slot resize) and report object and timing totals`,
	Args:  cobra.NoArgs,
	RunE:  runStress,
}

func init() {
	stressCmd.Flags().Int("iterations", 0, "iterations per scenario (0 uses grip.toml or 1000)")
	stressCmd.Flags().StringArray("scenario", nil, "scenario to run (repeatable; default all)")
	stressCmd.Flags().Bool("parallel", false, "run scenarios on separate goroutines")
	stressCmd.Flags().String("trace-out", "", "record ownership events to a msgpack trace file")
	stressCmd.Flags().Bool("timings", false, "show phase timing information")
}

func runStress(cmd *cobra.Command, _ []string) error {
	iterations, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		return fmt.Errorf("failed to get iterations flag: %w", err)
	}
	names, err := cmd.Flags().GetStringArray("scenario")
	if err != nil {
		return fmt.Errorf("failed to get scenario flag: %w", err)
	}
	parallel, err := cmd.Flags().GetBool("parallel")
	if err != nil {
		return fmt.Errorf("failed to get parallel flag: %w", err)
	}
	traceOut, err := cmd.Flags().GetString("trace-out")
	if err != nil {
		return fmt.Errorf("failed to get trace-out flag: %w", err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	if iterations <= 0 {
		iterations = cfg.Stress.Iterations
	}
	if iterations <= 0 {
		iterations = 1000
	}
	if len(names) == 0 {
		names = cfg.Stress.Scenarios
	}
	if !cmd.Flags().Changed("parallel") {
		parallel = cfg.Stress.Parallel
	}

	var rec *trace.Recorder
	if traceOut != "" {
		rec, err = trace.Create(traceOut)
		if err != nil {
			return err
		}
	}

	timer := observ.NewTimer()
	phase := timer.Begin("stress")
	results, runErr := scenario.RunAll(cmd.Context(), scenario.Options{
		Iterations: iterations,
		Names:      names,
		Recorder:   rec,
		Parallel:   parallel,
	})
	timer.End(phase, fmt.Sprintf("%d scenarios", len(results)))

	if closeErr := rec.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return runErr
	}

	if !quiet {
		styled := useColor(cmd, os.Stdout)
		fmt.Print(report.Render(results, styled))
	}
	if showTimings {
		fmt.Print(timer.Summary())
	}
	return nil
}
