package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"grip/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "grip",
	Short: "Ownership wrapper stress and trace tooling",
	Long:  `grip exercises the ownership wrappers under churn, sharing and resize workloads, and inspects recorded ownership traces`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the output
// destination and updates the global color toggle to match.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	var on bool
	switch mode {
	case "on":
		on = true
	case "off":
		on = false
	default:
		on = isTerminal(f)
	}
	color.NoColor = !on
	return on
}
