package report_test

import (
	"strings"
	"testing"
	"time"

	"grip/internal/report"
	"grip/internal/scenario"
)

func TestRenderPlain(t *testing.T) {
	results := []scenario.Result{
		{Name: "cow-sharing", Iterations: 100, Created: 200, Disposed: 200, Duration: 3 * time.Millisecond},
		{Name: "slot-resize", Iterations: 100, Created: 300, Disposed: 300, Duration: 2 * time.Millisecond},
	}

	out := report.Render(results, false)
	for _, want := range []string{"scenario", "cow-sharing", "slot-resize", "total", "500"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("expected 4 lines (header, 2 rows, total), got %d", lines)
	}
}
