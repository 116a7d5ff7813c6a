package own_test

import (
	"testing"

	"grip/internal/audit"
	"grip/own"
)

func TestMemberReleaseTransfersOwnership(t *testing.T) {
	ledger := &audit.Ledger{}
	p := ledger.NewProbe(3)
	m := own.AdoptMember(p)

	got := m.Release()
	if got != p {
		t.Fatalf("release returned %p, want original %p", got, p)
	}
	if m.Get() != nil {
		t.Fatalf("expected empty wrapper after release")
	}

	// The wrapper gave up ownership: dropping it must not free the
	// released object.
	m.Drop()
	if got.Disposed() {
		t.Errorf("released object was freed by the wrapper")
	}
	if ledger.Disposed() != 0 {
		t.Errorf("expected 0 disposals, got %d", ledger.Disposed())
	}
	got.Dispose()
}

func TestMemberResetDisposesOldAdoptsNew(t *testing.T) {
	ledger := &audit.Ledger{}
	first := ledger.NewProbe(1)
	second := ledger.NewProbe(2)
	m := own.AdoptMember(first)

	m.Reset(second)
	if !first.Disposed() {
		t.Errorf("old object not disposed on reset")
	}
	if m.Get() != second {
		t.Errorf("wrapper does not hold the new object")
	}

	m.Reset(nil)
	if !second.Disposed() {
		t.Errorf("reset(nil) did not free the held object")
	}
	if m.Get() != nil {
		t.Errorf("expected empty wrapper after reset(nil)")
	}
	if err := ledger.LeakCheck(); err != nil {
		t.Errorf("leak check: %v", err)
	}
}

func TestMemberResetToHeldPointer(t *testing.T) {
	ledger := &audit.Ledger{}
	p := ledger.NewProbe(9)
	m := own.AdoptMember(p)

	m.Reset(p)
	if p.Disposed() {
		t.Fatalf("resetting to the held pointer disposed it")
	}
	m.Drop()
	if err := ledger.LeakCheck(); err != nil {
		t.Errorf("leak check: %v", err)
	}
}
