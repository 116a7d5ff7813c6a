package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grip/internal/version"
)

var versionShowBuild bool

func init() {
	versionCmd.Flags().BoolVar(&versionShowBuild, "build", false, "include commit hash and build date")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show grip build information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(out, "grip %s\n", v)
		if versionShowBuild {
			fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
			fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
		}
	},
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
