package scenario_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"grip/internal/scenario"
	"grip/internal/trace"
)

func TestRunAllScenariosStayBalanced(t *testing.T) {
	results, err := scenario.RunAll(context.Background(), scenario.Options{Iterations: 25})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != len(scenario.All()) {
		t.Fatalf("expected %d results, got %d", len(scenario.All()), len(results))
	}
	for _, r := range results {
		if r.Created == 0 {
			t.Errorf("scenario %s created nothing", r.Name)
		}
		if r.Created != r.Disposed {
			t.Errorf("scenario %s unbalanced: created %d, disposed %d", r.Name, r.Created, r.Disposed)
		}
	}
}

func TestRunAllParallelIsConfined(t *testing.T) {
	// Each scenario owns its ledger and payloads; running them on
	// separate goroutines must not disturb the bookkeeping.
	results, err := scenario.RunAll(context.Background(), scenario.Options{Iterations: 25, Parallel: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, r := range results {
		if r.Created != r.Disposed {
			t.Errorf("scenario %s unbalanced under parallel run", r.Name)
		}
	}
}

func TestRunAllRecordsValidTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.trace")
	rec, err := trace.Create(path)
	if err != nil {
		t.Fatalf("create trace: %v", err)
	}
	if _, err := scenario.RunAll(context.Background(), scenario.Options{Iterations: 10, Recorder: rec}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close trace: %v", err)
	}

	events, err := trace.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if len(events) == 0 {
		t.Fatalf("no events recorded")
	}
	if err := trace.Validate(events); err != nil {
		t.Errorf("recorded trace invalid: %v", err)
	}
}

func TestSelectUnknownScenario(t *testing.T) {
	_, err := scenario.Select([]string{"no-such-workload"})
	if err == nil || !strings.Contains(err.Error(), "unknown scenario") {
		t.Errorf("expected unknown-scenario error, got %v", err)
	}
}

func TestSelectSubsetKeepsOrder(t *testing.T) {
	scens, err := scenario.Select([]string{"slot-resize", "exclusive-churn"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(scens) != 2 || scens[0].Name != "slot-resize" || scens[1].Name != "exclusive-churn" {
		t.Errorf("selection order not preserved: %v", []string{scens[0].Name, scens[1].Name})
	}
}
