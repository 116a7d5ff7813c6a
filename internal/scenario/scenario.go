// Package scenario holds the built-in ownership stress workloads. Every
// scenario confines its wrappers and payloads to the goroutine running it;
// only the trace recorder is shared between scenarios, behind its lock.
package scenario

import (
	"context"
	"fmt"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"grip/internal/audit"
	"grip/internal/trace"
)

// Result summarizes one scenario run.
type Result struct {
	Name       string
	Iterations int
	Created    int
	Disposed   int
	Duration   time.Duration
}

// Scenario is one self-contained ownership workload.
type Scenario struct {
	Name string
	Run  func(s *Session) error
}

// Session carries the per-run state handed to a scenario: the iteration
// budget, a private ledger, and the shared trace recorder.
type Session struct {
	Iterations int
	Ledger     *audit.Ledger

	name   string
	rec    *trace.Recorder
	base   uint64
	nextID uint64
}

// object returns a stream-unique id for a freshly created payload. The
// high half carries the scenario's namespace so parallel scenarios never
// collide.
func (s *Session) object() uint64 {
	s.nextID++
	return s.base | s.nextID
}

func (s *Session) record(op trace.Op, object uint64, sharers int) {
	s.rec.Record(s.name, op, object, sharers)
}

// All returns the built-in scenarios in a stable order.
func All() []Scenario {
	return []Scenario{
		{Name: "exclusive-churn", Run: runExclusiveChurn},
		{Name: "deepcopy-fanout", Run: runDeepCopyFanout},
		{Name: "cow-sharing", Run: runCOWSharing},
		{Name: "slot-resize", Run: runSlotResize},
	}
}

// Select resolves names against the built-in set; an empty list selects
// everything.
func Select(names []string) ([]Scenario, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Scenario, len(all))
	for _, sc := range all {
		byName[sc.Name] = sc
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		sc, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
		out = append(out, sc)
	}
	return out, nil
}

// Options configure a stress run.
type Options struct {
	Iterations int
	Names      []string
	Recorder   *trace.Recorder
	Parallel   bool
}

// RunAll executes the selected scenarios and returns their results in
// selection order. With Parallel set, scenarios run on separate
// goroutines; each remains single-owner-threaded internally.
func RunAll(ctx context.Context, opts Options) ([]Result, error) {
	scens, err := Select(opts.Names)
	if err != nil {
		return nil, err
	}
	iters := opts.Iterations
	if iters <= 0 {
		iters = 1
	}

	results := make([]Result, len(scens))
	g, ctx := errgroup.WithContext(ctx)
	if !opts.Parallel {
		g.SetLimit(1)
	}
	for i, sc := range scens {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ns, err := safecast.Conv[uint64](i + 1)
			if err != nil {
				return fmt.Errorf("scenario index out of range: %w", err)
			}
			sess := &Session{
				Iterations: iters,
				Ledger:     &audit.Ledger{},
				name:       sc.Name,
				rec:        opts.Recorder,
				base:       ns << 32,
			}
			start := time.Now()
			if err := sc.Run(sess); err != nil {
				return fmt.Errorf("scenario %s: %w", sc.Name, err)
			}
			results[i] = Result{
				Name:       sc.Name,
				Iterations: iters,
				Created:    sess.Ledger.Created(),
				Disposed:   sess.Ledger.Disposed(),
				Duration:   time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
