// Package report renders stress results for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"grip/internal/scenario"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

// Render returns the stress results as an aligned table. With styled set,
// headers and scenario names are colored for terminal output.
func Render(results []scenario.Result, styled bool) string {
	var b strings.Builder

	header := fmt.Sprintf("%-18s %12s %10s %10s %10s", "scenario", "iterations", "created", "disposed", "time")
	if styled {
		header = headerStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n")

	var created, disposed int
	var total time.Duration
	for _, r := range results {
		name := fmt.Sprintf("%-18s", r.Name)
		if styled {
			name = nameStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s %12d %10d %10d %9.1fms\n",
			name, r.Iterations, r.Created, r.Disposed, toMillis(r.Duration))
		created += r.Created
		disposed += r.Disposed
		total += r.Duration
	}

	footer := fmt.Sprintf("%-18s %12s %10d %10d %9.1fms", "total", "", created, disposed, toMillis(total))
	if styled {
		footer = totalStyle.Render(footer)
	}
	b.WriteString(footer)
	b.WriteString("\n")
	return b.String()
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
