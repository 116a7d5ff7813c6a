package own_test

import (
	"testing"

	"grip/internal/audit"
	"grip/own"
)

func expectFault(t *testing.T, code own.FaultCode, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected fault %s, got none", code)
		}
		f, ok := r.(*own.Fault)
		if !ok {
			t.Fatalf("expected *own.Fault, got %T: %v", r, r)
		}
		if f.Code != code {
			t.Errorf("expected fault %s, got %s (%s)", code, f.Code, f.Message)
		}
	}()
	fn()
}

func fillSlots(ledger *audit.Ledger, s *own.Slots[audit.Probe]) []*audit.Probe {
	held := make([]*audit.Probe, s.Len())
	for i := 0; i < s.Len(); i++ {
		held[i] = ledger.NewProbe(i)
		s.At(i).Reset(held[i])
	}
	return held
}

func TestSlotsGrowPreservesOwnership(t *testing.T) {
	ledger := &audit.Ledger{}
	s := own.NewSlots[audit.Probe](3)
	held := fillSlots(ledger, s)

	s.Resize(5)
	if s.Len() != 5 {
		t.Fatalf("expected length 5, got %d", s.Len())
	}
	for i, p := range held {
		// Identity, not just value equality: the object moved slots
		// without being duplicated.
		if s.At(i).Get() != p {
			t.Errorf("slot %d lost its object: got %p, want %p", i, s.At(i).Get(), p)
		}
	}
	for i := 3; i < 5; i++ {
		if s.At(i).Get() != nil {
			t.Errorf("grown slot %d not empty", i)
		}
	}
	if ledger.Disposed() != 0 {
		t.Errorf("grow disposed %d objects", ledger.Disposed())
	}

	s.Drop()
	if err := ledger.LeakCheck(); err != nil {
		t.Errorf("leak check: %v", err)
	}
}

func TestSlotsShrinkDisposesTruncated(t *testing.T) {
	ledger := &audit.Ledger{}
	s := own.NewSlots[audit.Probe](3)
	held := fillSlots(ledger, s)

	s.Resize(1)
	if s.At(0).Get() != held[0] {
		t.Errorf("surviving slot lost its object")
	}
	if !held[1].Disposed() || !held[2].Disposed() {
		t.Errorf("truncated slots not disposed")
	}
	if ledger.Disposed() != 2 {
		t.Errorf("expected exactly 2 disposals, got %d", ledger.Disposed())
	}
	if ledger.DoubleDisposals() != 0 {
		t.Errorf("truncated object freed twice")
	}

	s.Drop()
	if err := ledger.LeakCheck(); err != nil {
		t.Errorf("leak check: %v", err)
	}
}

func TestSlotsResizeToZeroAndBack(t *testing.T) {
	ledger := &audit.Ledger{}
	s := own.NewSlots[audit.Probe](2)
	fillSlots(ledger, s)

	s.Resize(0)
	if s.Len() != 0 {
		t.Fatalf("expected empty container, got length %d", s.Len())
	}
	if err := ledger.LeakCheck(); err != nil {
		t.Errorf("leak check after resize(0): %v", err)
	}

	s.Resize(2)
	if s.At(0).Get() != nil || s.At(1).Get() != nil {
		t.Errorf("regrown slots must start empty")
	}
}

func TestSlotsIndexFaults(t *testing.T) {
	s := own.NewSlots[audit.Probe](2)
	expectFault(t, own.FaultOutOfBounds, func() { s.At(2) })
	expectFault(t, own.FaultOutOfBounds, func() { s.At(-1) })
	expectFault(t, own.FaultNegativeSize, func() { s.Resize(-1) })
	expectFault(t, own.FaultNegativeSize, func() { own.NewSlots[audit.Probe](-3) })
}
