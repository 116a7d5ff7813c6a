package scenario

import (
	"fmt"

	"grip/internal/audit"
	"grip/internal/trace"
	"grip/own"
)

// runExclusiveChurn cycles objects through the exclusive wrapper: plain
// drops, release with manual disposal, and reset-replacement, including a
// second teardown pass that must stay silent.
func runExclusiveChurn(s *Session) error {
	for i := 0; i < s.Iterations; i++ {
		id := s.object()
		m := own.AdoptMember(s.Ledger.NewProbe(i))
		s.record(trace.OpAdopt, id, 1)

		switch i % 3 {
		case 0:
			m.Drop()
			s.record(trace.OpDispose, id, 0)
			m.Drop() // double teardown path
		case 1:
			p := m.Release()
			s.record(trace.OpRelease, id, 1)
			m.Drop()
			if p.Disposed() {
				return fmt.Errorf("released object was freed by the wrapper")
			}
			p.Dispose()
			s.record(trace.OpDispose, id, 0)
		default:
			next := s.object()
			m.Reset(s.Ledger.NewProbe(-i))
			s.record(trace.OpAdopt, next, 1)
			s.record(trace.OpDispose, id, 0)
			m.Drop()
			s.record(trace.OpDispose, next, 0)
		}
	}
	if s.Ledger.DoubleDisposals() > 0 {
		return fmt.Errorf("%d objects freed twice", s.Ledger.DoubleDisposals())
	}
	return s.Ledger.LeakCheck()
}

// runDeepCopyFanout clones and reassigns deep-copy wrappers and checks
// that the copies stay value-equal until mutated, never aliased.
func runDeepCopyFanout(s *Session) error {
	for i := 0; i < s.Iterations; i++ {
		blob := s.Ledger.NewBlob("seed")
		id := s.object()
		a := own.AdoptValue(&blob)
		s.record(trace.OpAdopt, id, 1)

		b := a.Clone()
		cloneID := s.object()
		s.record(trace.OpAdopt, cloneID, 1)
		if !a.Equal(b) {
			return fmt.Errorf("clone not value-equal to original")
		}
		if a.Get() == b.Get() {
			return fmt.Errorf("clone aliases the original")
		}
		b.Get().Data[0] = 'Z'
		if a.Equal(b) {
			return fmt.Errorf("mutating the clone changed the original")
		}

		assignID := s.object()
		a.Assign(b)
		s.record(trace.OpAdopt, assignID, 1)
		s.record(trace.OpDispose, id, 0)

		a.Drop()
		s.record(trace.OpDispose, assignID, 0)
		b.Drop()
		s.record(trace.OpDispose, cloneID, 0)
	}
	return s.Ledger.LeakCheck()
}

// runCOWSharing fans one counted object out to several sharers, detaches
// a private copy through mutable access, and checks count bookkeeping and
// mutation isolation.
func runCOWSharing(s *Session) error {
	for i := 0; i < s.Iterations; i++ {
		p := s.Ledger.NewProbe(i)
		id := s.object()
		a := own.AdoptCounted(p)
		s.record(trace.OpAdopt, id, 1)

		b := a.Share()
		s.record(trace.OpShare, id, 2)
		c := b.Share()
		s.record(trace.OpShare, id, 3)

		mut := a.Get()
		if mut == p {
			return fmt.Errorf("copy-on-write did not detach a shared object")
		}
		cloneID := s.object()
		s.record(trace.OpAdopt, cloneID, 1)
		s.record(trace.OpCOWClone, id, 2)

		mut.Body = -i
		if p.Body != i {
			return fmt.Errorf("mutation leaked through to the shared original")
		}
		if b.Peek() != p || c.Peek() != p {
			return fmt.Errorf("sharers lost the original object")
		}
		if a.Count() != 1 || b.Count() != 2 {
			return fmt.Errorf("counts after detach: a=%d b=%d", a.Count(), b.Count())
		}

		a.Drop()
		s.record(trace.OpDispose, cloneID, 0)
		b.Drop()
		c.Drop()
		s.record(trace.OpDispose, id, 0)
	}
	if s.Ledger.DoubleDisposals() > 0 {
		return fmt.Errorf("%d objects freed twice", s.Ledger.DoubleDisposals())
	}
	return s.Ledger.LeakCheck()
}

// runSlotResize grows and shrinks a slot array and checks that surviving
// slots keep the same object identity while truncated slots free theirs
// exactly once.
func runSlotResize(s *Session) error {
	for i := 0; i < s.Iterations; i++ {
		slots := own.NewSlots[audit.Probe](3)
		var ids [3]uint64
		var held [3]*audit.Probe
		for j := 0; j < 3; j++ {
			ids[j] = s.object()
			held[j] = s.Ledger.NewProbe(j)
			slots.At(j).Reset(held[j])
			s.record(trace.OpAdopt, ids[j], 1)
		}

		slots.Resize(5)
		s.record(trace.OpResize, 0, 5)
		for j := 0; j < 3; j++ {
			if slots.At(j).Get() != held[j] {
				return fmt.Errorf("slot %d lost identity across grow", j)
			}
		}
		if slots.At(3).Get() != nil || slots.At(4).Get() != nil {
			return fmt.Errorf("grown slots not empty")
		}

		slots.Resize(1)
		s.record(trace.OpResize, 0, 1)
		if slots.At(0).Get() != held[0] {
			return fmt.Errorf("slot 0 lost identity across shrink")
		}
		if !held[1].Disposed() || !held[2].Disposed() {
			return fmt.Errorf("truncated slots not freed")
		}
		s.record(trace.OpDispose, ids[1], 0)
		s.record(trace.OpDispose, ids[2], 0)

		slots.Drop()
		s.record(trace.OpDispose, ids[0], 0)
	}
	if s.Ledger.DoubleDisposals() > 0 {
		return fmt.Errorf("%d objects freed twice", s.Ledger.DoubleDisposals())
	}
	return s.Ledger.LeakCheck()
}
